package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/breeding"
)

type BreedingRepo struct {
	db *sql.DB
}

func NewBreedingRepo(db *sql.DB) *BreedingRepo {
	return &BreedingRepo{db: db}
}

const breedingColumns = `
	id, user_id, animal_id,
	event_type, event_date,
	partner_animal_id, partner_name,
	expected_due_date, actual_birth_date, offspring_count,
	notes, property_id,
	created_at, updated_at`

func (r *BreedingRepo) Create(ctx context.Context, e breeding.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeding_events (`+breedingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		e.ID,
		e.UserID,
		e.AnimalID,
		string(e.Type),
		e.Date,
		toNullString(e.PartnerAnimalID),
		e.PartnerName,
		toNullDate(e.ExpectedDueDate),
		toNullDate(e.ActualBirthDate),
		toNullInt(e.OffspringCount),
		e.Notes,
		toNullString(e.PropertyID),
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert breeding event: %w", err)
	}
	return nil
}

func (r *BreedingRepo) Update(ctx context.Context, e breeding.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeding_events
		SET
			animal_id = $3,
			event_type = $4,
			event_date = $5,
			partner_animal_id = $6,
			partner_name = $7,
			expected_due_date = $8,
			actual_birth_date = $9,
			offspring_count = $10,
			notes = $11,
			property_id = $12,
			updated_at = $13
		WHERE id = $1 AND user_id = $2
	`,
		e.ID,
		e.UserID,
		e.AnimalID,
		string(e.Type),
		e.Date,
		toNullString(e.PartnerAnimalID),
		e.PartnerName,
		toNullDate(e.ExpectedDueDate),
		toNullDate(e.ActualBirthDate),
		toNullInt(e.OffspringCount),
		e.Notes,
		toNullString(e.PropertyID),
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update breeding event: %w", err)
	}
	return affected(res, breeding.ErrNotFound)
}

func (r *BreedingRepo) GetByID(ctx context.Context, userID, id string) (breeding.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_events
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	e, err := scanBreedingEvent(row)
	if err != nil {
		return breeding.Event{}, noRows(err, breeding.ErrNotFound)
	}
	return e, nil
}

// ListByUser no pagina: el dashboard de cría consume el set completo.
func (r *BreedingRepo) ListByUser(ctx context.Context, userID string, filter breeding.ListFilter) ([]breeding.Event, error) {
	q := newQuery(`SELECT `+breedingColumns+` FROM breeding_events WHERE user_id = $1`, userID)
	if filter.AnimalID != "" {
		q.and("animal_id = ?", filter.AnimalID)
	}
	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		q.in("event_type", types)
	}
	if filter.From != nil {
		q.and("event_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q.and("event_date <= ?", *filter.To)
	}
	q.orderBy("event_date DESC, created_at DESC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list breeding events: %w", err)
	}
	defer rows.Close()

	out := make([]breeding.Event, 0)
	for rows.Next() {
		e, err := scanBreedingEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *BreedingRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeding_events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete breeding event: %w", err)
	}
	return affected(res, breeding.ErrNotFound)
}

func scanBreedingEvent(s scanner) (breeding.Event, error) {
	var (
		e                 breeding.Event
		typ               string
		partner, property sql.NullString
		due, born         sql.NullTime
		offspring         sql.NullInt64
	)
	if err := s.Scan(
		&e.ID,
		&e.UserID,
		&e.AnimalID,
		&typ,
		&e.Date,
		&partner,
		&e.PartnerName,
		&due,
		&born,
		&offspring,
		&e.Notes,
		&property,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return breeding.Event{}, err
	}

	e.Type = breeding.EventType(typ)
	e.Date = e.Date.UTC()
	e.PartnerAnimalID = fromNullString(partner)
	e.PropertyID = fromNullString(property)
	e.ExpectedDueDate = fromNullDate(due)
	e.ActualBirthDate = fromNullDate(born)
	if offspring.Valid {
		n := int(offspring.Int64)
		e.OffspringCount = &n
	}
	return e, nil
}

func toNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
