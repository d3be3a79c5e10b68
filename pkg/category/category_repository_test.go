package category

import (
	"context"
	"testing"

	"recipe-service/entities"
	"recipe-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResolveIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCategoryRepository(db, testutil.Logger(t))
	ctx := context.Background()

	first, err := repo.Resolve(ctx, nil, "side")
	require.NoError(t, err)
	second, err := repo.Resolve(ctx, nil, "  side ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "side", second.Name)
	assert.EqualValues(t, 1, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestResolveRejectsBlankName(t *testing.T) {
	repo := NewCategoryRepository(testutil.DB(t), testutil.Logger(t))

	_, err := repo.Resolve(context.Background(), nil, "  ")
	assert.ErrorIs(t, err, ErrEmptyCategoryName)
}

func TestResolveAllInsideTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCategoryRepository(db, testutil.Logger(t))
	ctx := context.Background()

	var ids []string
	err := db.Transaction(func(tx *gorm.DB) error {
		got, err := repo.ResolveAll(ctx, tx, []string{"main", "soup", "main", ""})
		if err != nil {
			return err
		}
		for _, c := range got {
			ids = append(ids, c.ID.String())
		}
		again, err := repo.Resolve(ctx, tx, "soup")
		if err != nil {
			return err
		}
		assert.Equal(t, got[1].ID, again.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.EqualValues(t, 2, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestResolveRolledBackWithTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCategoryRepository(db, testutil.Logger(t))

	_ = db.Transaction(func(tx *gorm.DB) error {
		_, err := repo.Resolve(context.Background(), tx, "dessert")
		require.NoError(t, err)
		return assert.AnError
	})
	assert.EqualValues(t, 0, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, UniqueNames([]string{" a", "b", "", "a ", "b"}))
	assert.Empty(t, UniqueNames(nil))
}
