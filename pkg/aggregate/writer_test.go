package aggregate

import (
	"context"
	"errors"
	"testing"

	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/testutil"
	"recipe-service/internal/utils/dbctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterCommits(t *testing.T) {
	db := testutil.DB(t)
	w := NewWriter(db, testutil.Logger(t))

	err := w.Execute(context.Background(), "category.create", func(dbc dbctx.Context) error {
		return dbc.DB(db).Create(&entities.Category{Name: "soup"}).Error
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestWriterRollsBackAndClassifies(t *testing.T) {
	db := testutil.DB(t)
	w := NewWriter(db, testutil.Logger(t))

	err := w.Execute(context.Background(), "category.create", func(dbc dbctx.Context) error {
		if err := dbc.DB(db).Create(&entities.Category{Name: "soup"}).Error; err != nil {
			return err
		}
		return errors.New("later step failed")
	})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeStorage))
	assert.EqualValues(t, 0, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestWriterReportsConstraintViolationAsConflict(t *testing.T) {
	db := testutil.DB(t)
	w := NewWriter(db, testutil.Logger(t))

	require.NoError(t, db.Create(&entities.Category{Name: "main"}).Error)

	err := w.Execute(context.Background(), "category.create", func(dbc dbctx.Context) error {
		return dbc.DB(db).Create(&entities.Category{Name: "main"}).Error
	})
	assert.True(t, domain.IsCode(err, domain.CodeConflict))
	assert.EqualValues(t, 1, testutil.Count(t, db, &entities.Category{}, ""))
}

func TestWriterWithTx(t *testing.T) {
	called := false
	w := NewWriterWithTx(func(ctx context.Context, fn func(dbc dbctx.Context) error) error {
		return domain.ErrRecipeNotFound
	}, nil)

	err := w.Execute(context.Background(), "", func(dbc dbctx.Context) error {
		called = true
		return nil
	})
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	assert.False(t, called)
}

func TestGormTxWithoutDB(t *testing.T) {
	err := NewWriter(nil, nil).Execute(context.Background(), "recipe.create", func(dbc dbctx.Context) error { return nil })
	assert.True(t, domain.IsCode(err, domain.CodeStorage))
}
