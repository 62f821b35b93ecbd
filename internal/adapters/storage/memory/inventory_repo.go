package memory

import (
	"context"

	"homestead-architect/internal/domain/inventory"
)

type inventoryRepo struct {
	t *table[inventory.Item]
}

func NewInventoryRepo() inventory.Repository {
	return &inventoryRepo{
		t: newTable(
			func(it inventory.Item) string { return it.ID },
			func(it inventory.Item) string { return it.UserID },
			inventory.ErrNotFound,
		),
	}
}

func (r *inventoryRepo) Create(_ context.Context, it inventory.Item) error {
	return r.t.insert(it)
}

func (r *inventoryRepo) Update(_ context.Context, it inventory.Item) error {
	return r.t.update(it)
}

func (r *inventoryRepo) GetByID(_ context.Context, userID, id string) (inventory.Item, error) {
	return r.t.get(userID, id)
}

func (r *inventoryRepo) ListByUser(_ context.Context, userID string, f inventory.ListFilter) ([]inventory.Item, error) {
	keep := func(it inventory.Item) bool {
		if f.LowStock && !it.LowStock() {
			return false
		}
		if f.PropertyID != "" && (it.PropertyID == nil || *it.PropertyID != f.PropertyID) {
			return false
		}
		return f.Category == "" || it.Category == f.Category
	}
	return r.t.list(userID, keep, func(a, b inventory.Item) bool { return a.Name < b.Name }), nil
}

func (r *inventoryRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
