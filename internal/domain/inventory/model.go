package inventory

import "time"

type Item struct {
	ID     string
	UserID string

	PropertyID *string

	Name         string
	Category     string // feed, seed, tools, medicine...
	CurrentStock float64
	Unit         string
	ReorderPoint float64
	Supplier     string
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock: al llegar al punto de pedido ya hay que reponer.
func (i Item) LowStock() bool {
	return i.CurrentStock <= i.ReorderPoint
}
