package repo

import "gorm.io/gorm/clause"

// OrderKey is one sort column of a listing.
type OrderKey struct {
	Column string
	Desc   bool
}

// Order is the sort rule of a collection, most significant key first.
type Order []OrderKey

func Asc(column string) OrderKey  { return OrderKey{Column: column} }
func Desc(column string) OrderKey { return OrderKey{Column: column, Desc: true} }

func (o Order) Clause() clause.OrderBy {
	cols := make([]clause.OrderByColumn, 0, len(o))
	for _, k := range o {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: k.Column}, Desc: k.Desc})
	}
	return clause.OrderBy{Columns: cols}
}

var (
	ByDisplayOrder           = Order{Asc("display_order")}
	ByDisplayOrderThenEvent  = Order{Asc("display_order"), Desc("event_date")}
	ByDisplayOrderThenNewest = Order{Asc("display_order"), Desc("created_at")}
	ByNewest                 = Order{Desc("created_at")}
)
