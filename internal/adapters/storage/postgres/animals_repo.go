package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, user_id, property_id,
	name, species, breed, sex,
	birth_date, notes,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.UserID,
		toNullString(a.PropertyID),
		a.Name,
		a.Species,
		a.Breed,
		string(a.Sex),
		toNullDate(a.BirthDate),
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			property_id = $3,
			name = $4,
			species = $5,
			breed = $6,
			sex = $7,
			birth_date = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1 AND user_id = $2
	`,
		a.ID,
		a.UserID,
		toNullString(a.PropertyID),
		a.Name,
		a.Species,
		a.Breed,
		string(a.Sex),
		toNullDate(a.BirthDate),
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	return affected(res, animals.ErrNotFound)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, userID, id string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, noRows(err, animals.ErrNotFound)
	}
	return a, nil
}

func (r *AnimalsRepo) ListByUser(ctx context.Context, userID string, filter animals.ListFilter) ([]animals.Animal, error) {
	q := newQuery(`SELECT `+animalColumns+` FROM animals WHERE user_id = $1`, userID)
	if filter.PropertyID != "" {
		q.and("property_id = ?", filter.PropertyID)
	}
	if filter.Species != "" {
		q.and("species = ?", filter.Species)
	}
	q.orderBy("name ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	return affected(res, animals.ErrNotFound)
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a        animals.Animal
		property sql.NullString
		sex      string
		bd       sql.NullTime
	)
	if err := s.Scan(
		&a.ID,
		&a.UserID,
		&property,
		&a.Name,
		&a.Species,
		&a.Breed,
		&sex,
		&bd,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	a.PropertyID = fromNullString(property)
	a.Sex = animals.Sex(sex)
	a.BirthDate = fromNullDate(bd)
	return a, nil
}
