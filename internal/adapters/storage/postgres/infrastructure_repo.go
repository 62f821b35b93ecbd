package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/infrastructure"
)

type InfrastructureRepo struct {
	db *sql.DB
}

func NewInfrastructureRepo(db *sql.DB) *InfrastructureRepo {
	return &InfrastructureRepo{db: db}
}

const projectColumns = `
	id, user_id, property_id,
	name, type, status, budget,
	start_date, target_date, description,
	created_at, updated_at`

func (r *InfrastructureRepo) Create(ctx context.Context, p infrastructure.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO infrastructure_projects (`+projectColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.UserID,
		toNullString(p.PropertyID),
		p.Name,
		string(p.Type),
		string(p.Status),
		p.Budget,
		toNullDate(p.StartDate),
		toNullDate(p.TargetDate),
		p.Description,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert infrastructure project: %w", err)
	}
	return nil
}

func (r *InfrastructureRepo) Update(ctx context.Context, p infrastructure.Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE infrastructure_projects
		SET
			property_id = $3,
			name = $4,
			type = $5,
			status = $6,
			budget = $7,
			start_date = $8,
			target_date = $9,
			description = $10,
			updated_at = $11
		WHERE id = $1 AND user_id = $2
	`,
		p.ID,
		p.UserID,
		toNullString(p.PropertyID),
		p.Name,
		string(p.Type),
		string(p.Status),
		p.Budget,
		toNullDate(p.StartDate),
		toNullDate(p.TargetDate),
		p.Description,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update infrastructure project: %w", err)
	}
	return affected(res, infrastructure.ErrNotFound)
}

func (r *InfrastructureRepo) GetByID(ctx context.Context, userID, id string) (infrastructure.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+`
		FROM infrastructure_projects
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	p, err := scanProject(row)
	if err != nil {
		return infrastructure.Project{}, noRows(err, infrastructure.ErrNotFound)
	}
	return p, nil
}

func (r *InfrastructureRepo) ListByUser(ctx context.Context, userID string, filter infrastructure.ListFilter) ([]infrastructure.Project, error) {
	q := newQuery(`SELECT `+projectColumns+` FROM infrastructure_projects WHERE user_id = $1`, userID)
	if filter.Status != "" {
		q.and("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		q.and("type = ?", string(filter.Type))
	}
	if filter.PropertyID != "" {
		q.and("property_id = ?", filter.PropertyID)
	}
	// q: búsqueda simple en name + description
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q.and("(name ILIKE ? OR description ILIKE ?)", like, like)
	}
	q.orderBy("created_at DESC, id ASC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list infrastructure projects: %w", err)
	}
	defer rows.Close()

	out := make([]infrastructure.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *InfrastructureRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM infrastructure_projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete infrastructure project: %w", err)
	}
	return affected(res, infrastructure.ErrNotFound)
}

func scanProject(s scanner) (infrastructure.Project, error) {
	var (
		p             infrastructure.Project
		property      sql.NullString
		typ, status   string
		start, target sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.UserID,
		&property,
		&p.Name,
		&typ,
		&status,
		&p.Budget,
		&start,
		&target,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return infrastructure.Project{}, err
	}
	p.PropertyID = fromNullString(property)
	p.Type = infrastructure.ProjectType(typ)
	p.Status = infrastructure.Status(status)
	p.StartDate = fromNullDate(start)
	p.TargetDate = fromNullDate(target)
	return p, nil
}
