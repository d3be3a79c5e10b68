package recipe

import (
	"strings"

	"recipe-service/domain"

	"gorm.io/gorm/clause"
)

const defaultSortColumn = "id"

// sortColumns maps the field names clients may pass to storage columns.
// Anything else falls back to id.
var sortColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"calories":     "calories",
	"cookingTime":  "cooking_time",
	"cooking_time": "cooking_time",
}

type Sort struct {
	Column string
	Desc   bool
}

// NewSort validates a requested field and direction. Only "asc" sorts
// ascending; every other direction, including none, sorts descending.
func NewSort(field, direction string) Sort {
	column, ok := sortColumns[strings.TrimSpace(field)]
	if !ok {
		column = defaultSortColumn
	}
	return Sort{
		Column: column,
		Desc:   direction != domain.SortDirectionAsc,
	}
}

// OrderBy adds id as a tie breaker in the same direction so equal keys come
// back in a stable order.
func (s Sort) OrderBy() clause.OrderBy {
	columns := []clause.OrderByColumn{
		{Column: clause.Column{Name: s.Column}, Desc: s.Desc},
	}
	if s.Column != defaultSortColumn {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: defaultSortColumn}, Desc: s.Desc})
	}
	return clause.OrderBy{Columns: columns}
}

func (s Sort) Direction() string {
	if s.Desc {
		return domain.SortDirectionDesc
	}
	return domain.SortDirectionAsc
}
