package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/tasks"
)

type TasksRepo struct {
	db *sql.DB
}

func NewTasksRepo(db *sql.DB) *TasksRepo {
	return &TasksRepo{db: db}
}

const taskColumns = `
	id, user_id, property_id,
	title, description, status, due_date,
	created_at, updated_at`

func (r *TasksRepo) Create(ctx context.Context, t tasks.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		t.ID,
		t.UserID,
		toNullString(t.PropertyID),
		t.Title,
		t.Description,
		string(t.Status),
		toNullDate(t.DueDate),
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TasksRepo) Update(ctx context.Context, t tasks.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET
			property_id = $3,
			title = $4,
			description = $5,
			status = $6,
			due_date = $7,
			updated_at = $8
		WHERE id = $1 AND user_id = $2
	`,
		t.ID,
		t.UserID,
		toNullString(t.PropertyID),
		t.Title,
		t.Description,
		string(t.Status),
		toNullDate(t.DueDate),
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return affected(res, tasks.ErrNotFound)
}

func (r *TasksRepo) GetByID(ctx context.Context, userID, id string) (tasks.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	t, err := scanTask(row)
	if err != nil {
		return tasks.Task{}, noRows(err, tasks.ErrNotFound)
	}
	return t, nil
}

func (r *TasksRepo) ListByUser(ctx context.Context, userID string, filter tasks.ListFilter) ([]tasks.Task, error) {
	q := newQuery(`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1`, userID)
	if filter.Status != "" {
		q.and("status = ?", string(filter.Status))
	}
	if filter.Incomplete {
		q.and("status <> ?", string(tasks.StatusCompleted))
	}
	if filter.PropertyID != "" {
		q.and("property_id = ?", filter.PropertyID)
	}
	q.orderBy("due_date ASC NULLS LAST, created_at ASC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TasksRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return affected(res, tasks.ErrNotFound)
}

func scanTask(s scanner) (tasks.Task, error) {
	var (
		t        tasks.Task
		property sql.NullString
		status   string
		due      sql.NullTime
	)
	if err := s.Scan(
		&t.ID,
		&t.UserID,
		&property,
		&t.Title,
		&t.Description,
		&status,
		&due,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return tasks.Task{}, err
	}
	t.PropertyID = fromNullString(property)
	t.Status = tasks.Status(status)
	t.DueDate = fromNullDate(due)
	return t, nil
}
