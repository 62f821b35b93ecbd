package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `
	id, user_id, property_id,
	name, category, current_stock, unit, reorder_point,
	supplier, notes,
	created_at, updated_at`

func (r *InventoryRepo) Create(ctx context.Context, it inventory.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (`+inventoryColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		it.ID,
		it.UserID,
		toNullString(it.PropertyID),
		it.Name,
		it.Category,
		it.CurrentStock,
		it.Unit,
		it.ReorderPoint,
		it.Supplier,
		it.Notes,
		it.CreatedAt,
		it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Update(ctx context.Context, it inventory.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET
			property_id = $3,
			name = $4,
			category = $5,
			current_stock = $6,
			unit = $7,
			reorder_point = $8,
			supplier = $9,
			notes = $10,
			updated_at = $11
		WHERE id = $1 AND user_id = $2
	`,
		it.ID,
		it.UserID,
		toNullString(it.PropertyID),
		it.Name,
		it.Category,
		it.CurrentStock,
		it.Unit,
		it.ReorderPoint,
		it.Supplier,
		it.Notes,
		it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return affected(res, inventory.ErrNotFound)
}

func (r *InventoryRepo) GetByID(ctx context.Context, userID, id string) (inventory.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory_items
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	it, err := scanInventoryItem(row)
	if err != nil {
		return inventory.Item{}, noRows(err, inventory.ErrNotFound)
	}
	return it, nil
}

func (r *InventoryRepo) ListByUser(ctx context.Context, userID string, filter inventory.ListFilter) ([]inventory.Item, error) {
	q := newQuery(`SELECT `+inventoryColumns+` FROM inventory_items WHERE user_id = $1`, userID)
	if filter.Category != "" {
		q.and("category = ?", filter.Category)
	}
	if filter.PropertyID != "" {
		q.and("property_id = ?", filter.PropertyID)
	}
	if filter.LowStock {
		q.and("current_stock <= reorder_point")
	}
	q.orderBy("name ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	out := make([]inventory.Item, 0)
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return affected(res, inventory.ErrNotFound)
}

func scanInventoryItem(s scanner) (inventory.Item, error) {
	var (
		it       inventory.Item
		property sql.NullString
	)
	if err := s.Scan(
		&it.ID,
		&it.UserID,
		&property,
		&it.Name,
		&it.Category,
		&it.CurrentStock,
		&it.Unit,
		&it.ReorderPoint,
		&it.Supplier,
		&it.Notes,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return inventory.Item{}, err
	}
	it.PropertyID = fromNullString(property)
	return it, nil
}
