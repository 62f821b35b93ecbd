package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Get(ctx context.Context, userID string) (profiles.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID)

	p, err := scanProfile(row)
	if err != nil {
		return profiles.Profile{}, noRows(err, profiles.ErrNotFound)
	}
	return p, nil
}

// Upsert: en conflicto conserva created_at y devuelve la fila resultante.
func (r *ProfilesRepo) Upsert(ctx context.Context, p profiles.Profile) (profiles.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, first_name, last_name, created_at, updated_at
	`, p.UserID, p.FirstName, p.LastName, p.CreatedAt, p.UpdatedAt)

	out, err := scanProfile(row)
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return out, nil
}

func scanProfile(s scanner) (profiles.Profile, error) {
	var p profiles.Profile
	err := s.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
