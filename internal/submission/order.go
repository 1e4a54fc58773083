package submission

import (
	"fmt"
	"slices"
	"strings"

	"go.einride.tech/aip/ordering"
	"golang.org/x/text/cases"
)

// Order is a parsed AIP-132 order_by clause. The zero Order keeps records
// in backend order.
type Order struct {
	fields []ordering.Field
}

type orderByRequest string

func (r orderByRequest) GetOrderBy() string {
	return string(r)
}

// ParseOrder parses clauses such as "created_at desc, full_name".
func ParseOrder(source string) (Order, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Order{}, nil
	}
	orderBy, err := ordering.ParseOrderBy(orderByRequest(source))
	if err != nil {
		return Order{}, fmt.Errorf("%w: order_by: %v", ErrInvalidQuery, err)
	}
	if err := orderBy.ValidateForPaths(FieldNames()...); err != nil {
		return Order{}, fmt.Errorf("%w: order_by: %v", ErrInvalidQuery, err)
	}
	return Order{fields: orderBy.Fields}, nil
}

// IsZero reports whether the order keeps backend order.
func (o Order) IsZero() bool {
	return len(o.fields) == 0
}

// Sort stably sorts records in place.
func (o Order) Sort(records []Submission) {
	if o.IsZero() || len(records) < 2 {
		return
	}
	fold := cases.Fold()
	slices.SortStableFunc(records, func(a, b Submission) int {
		for _, field := range o.fields {
			column := columnByField[field.Path]
			var cmp int
			if column.Key == KeyCreatedAt {
				cmp = a.CreatedAt.Compare(b.CreatedAt)
			} else {
				cmp = strings.Compare(fold.String(column.value(a)), fold.String(column.value(b)))
			}
			if cmp == 0 {
				continue
			}
			if field.Desc {
				return -cmp
			}
			return cmp
		}
		return 0
	})
}
