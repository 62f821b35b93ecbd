package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"homestead-architect/internal/domain/finance"
)

type FinancialCategoriesRepo struct {
	db *sql.DB
}

func NewFinancialCategoriesRepo(db *sql.DB) *FinancialCategoriesRepo {
	return &FinancialCategoriesRepo{db: db}
}

func (r *FinancialCategoriesRepo) Create(ctx context.Context, c finance.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO financial_categories (id, user_id, name, kind, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, c.ID, c.UserID, c.Name, string(c.Kind), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert financial category: %w", err)
	}
	return nil
}

func (r *FinancialCategoriesRepo) Update(ctx context.Context, c finance.Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE financial_categories
		SET name = $3, kind = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
	`, c.ID, c.UserID, c.Name, string(c.Kind), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update financial category: %w", err)
	}
	return affected(res, finance.ErrCategoryNotFound)
}

func (r *FinancialCategoriesRepo) GetByID(ctx context.Context, userID, id string) (finance.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, kind, created_at, updated_at
		FROM financial_categories
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	c, err := scanCategory(row)
	if err != nil {
		return finance.Category{}, noRows(err, finance.ErrCategoryNotFound)
	}
	return c, nil
}

func (r *FinancialCategoriesRepo) ListByUser(ctx context.Context, userID string, kind finance.Kind) ([]finance.Category, error) {
	q := newQuery(`SELECT id, user_id, name, kind, created_at, updated_at FROM financial_categories WHERE user_id = $1`, userID)
	if kind != "" {
		q.and("kind = ?", string(kind))
	}
	q.orderBy("name ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list financial categories: %w", err)
	}
	defer rows.Close()

	out := make([]finance.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *FinancialCategoriesRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM financial_categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete financial category: %w", err)
	}
	return affected(res, finance.ErrCategoryNotFound)
}

func scanCategory(s scanner) (finance.Category, error) {
	var (
		c    finance.Category
		kind string
	)
	if err := s.Scan(&c.ID, &c.UserID, &c.Name, &kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return finance.Category{}, err
	}
	c.Kind = finance.Kind(kind)
	return c, nil
}

type TransactionsRepo struct {
	db *sql.DB
}

func NewTransactionsRepo(db *sql.DB) *TransactionsRepo {
	return &TransactionsRepo{db: db}
}

const transactionColumns = `
	id, user_id,
	tx_date, kind, amount,
	description, notes,
	category_id, property_id,
	created_at, updated_at`

func (r *TransactionsRepo) Create(ctx context.Context, tx finance.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		tx.ID,
		tx.UserID,
		tx.Date,
		string(tx.Kind),
		tx.Amount,
		tx.Description,
		tx.Notes,
		toNullString(tx.CategoryID),
		toNullString(tx.PropertyID),
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionsRepo) Update(ctx context.Context, tx finance.Transaction) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET
			tx_date = $3,
			kind = $4,
			amount = $5,
			description = $6,
			notes = $7,
			category_id = $8,
			property_id = $9,
			updated_at = $10
		WHERE id = $1 AND user_id = $2
	`,
		tx.ID,
		tx.UserID,
		tx.Date,
		string(tx.Kind),
		tx.Amount,
		tx.Description,
		tx.Notes,
		toNullString(tx.CategoryID),
		toNullString(tx.PropertyID),
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return affected(res, finance.ErrTransactionNotFound)
}

func (r *TransactionsRepo) GetByID(ctx context.Context, userID, id string) (finance.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	tx, err := scanTransaction(row)
	if err != nil {
		return finance.Transaction{}, noRows(err, finance.ErrTransactionNotFound)
	}
	return tx, nil
}

func (r *TransactionsRepo) ListByUser(ctx context.Context, userID string, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	q := newQuery(`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1`, userID)
	if filter.Kind != "" {
		q.and("kind = ?", string(filter.Kind))
	}
	if filter.CategoryID != "" {
		q.and("category_id = ?", filter.CategoryID)
	}
	if filter.PropertyID != "" {
		q.and("property_id = ?", filter.PropertyID)
	}
	if filter.StartDate != nil {
		q.and("tx_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q.and("tx_date <= ?", *filter.EndDate)
	}
	q.orderBy("tx_date DESC, created_at DESC")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]finance.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *TransactionsRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return affected(res, finance.ErrTransactionNotFound)
}

func scanTransaction(s scanner) (finance.Transaction, error) {
	var (
		tx                 finance.Transaction
		kind               string
		category, property sql.NullString
	)
	if err := s.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Date,
		&kind,
		&tx.Amount,
		&tx.Description,
		&tx.Notes,
		&category,
		&property,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	); err != nil {
		return finance.Transaction{}, err
	}
	tx.Date = tx.Date.UTC()
	tx.Kind = finance.Kind(kind)
	tx.CategoryID = fromNullString(category)
	tx.PropertyID = fromNullString(property)
	return tx, nil
}
