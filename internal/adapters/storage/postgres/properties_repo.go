package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/properties"
)

type PropertiesRepo struct {
	db *sql.DB
}

func NewPropertiesRepo(db *sql.DB) *PropertiesRepo {
	return &PropertiesRepo{db: db}
}

const propertyColumns = `
	id, user_id,
	name, location, size_acres,
	climate_zone, soil_type, notes,
	created_at, updated_at`

func (r *PropertiesRepo) Create(ctx context.Context, p properties.Property) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.UserID,
		p.Name,
		p.Location,
		p.SizeAcres,
		p.ClimateZone,
		p.SoilType,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertiesRepo) Update(ctx context.Context, p properties.Property) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE properties
		SET
			name = $3,
			location = $4,
			size_acres = $5,
			climate_zone = $6,
			soil_type = $7,
			notes = $8,
			updated_at = $9
		WHERE id = $1 AND user_id = $2
	`,
		p.ID,
		p.UserID,
		p.Name,
		p.Location,
		p.SizeAcres,
		p.ClimateZone,
		p.SoilType,
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return affected(res, properties.ErrNotFound)
}

func (r *PropertiesRepo) GetByID(ctx context.Context, userID, id string) (properties.Property, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	p, err := scanProperty(row)
	if err != nil {
		return properties.Property{}, noRows(err, properties.ErrNotFound)
	}
	return p, nil
}

func (r *PropertiesRepo) ListByUser(ctx context.Context, userID string) ([]properties.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := make([]properties.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertiesRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return affected(res, properties.ErrNotFound)
}

func scanProperty(s scanner) (properties.Property, error) {
	var p properties.Property
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Location,
		&p.SizeAcres,
		&p.ClimateZone,
		&p.SoilType,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
