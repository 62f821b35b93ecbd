package memory

import (
	"context"

	"homestead-architect/internal/domain/finance"
)

type financialCategoryRepo struct {
	t *table[finance.Category]
}

func NewFinancialCategoryRepo() finance.CategoryRepository {
	return &financialCategoryRepo{
		t: newTable(
			func(c finance.Category) string { return c.ID },
			func(c finance.Category) string { return c.UserID },
			finance.ErrCategoryNotFound,
		),
	}
}

func (r *financialCategoryRepo) Create(_ context.Context, c finance.Category) error {
	return r.t.insert(c)
}

func (r *financialCategoryRepo) Update(_ context.Context, c finance.Category) error {
	return r.t.update(c)
}

func (r *financialCategoryRepo) GetByID(_ context.Context, userID, id string) (finance.Category, error) {
	return r.t.get(userID, id)
}

func (r *financialCategoryRepo) ListByUser(_ context.Context, userID string, kind finance.Kind) ([]finance.Category, error) {
	keep := func(c finance.Category) bool { return kind == "" || c.Kind == kind }
	return r.t.list(userID, keep, func(a, b finance.Category) bool { return a.Name < b.Name }), nil
}

func (r *financialCategoryRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}

type transactionRepo struct {
	t *table[finance.Transaction]
}

func NewTransactionRepo() finance.TransactionRepository {
	return &transactionRepo{
		t: newTable(
			func(tx finance.Transaction) string { return tx.ID },
			func(tx finance.Transaction) string { return tx.UserID },
			finance.ErrTransactionNotFound,
		),
	}
}

func (r *transactionRepo) Create(_ context.Context, tx finance.Transaction) error {
	return r.t.insert(tx)
}

func (r *transactionRepo) Update(_ context.Context, tx finance.Transaction) error {
	return r.t.update(tx)
}

func (r *transactionRepo) GetByID(_ context.Context, userID, id string) (finance.Transaction, error) {
	return r.t.get(userID, id)
}

func (r *transactionRepo) ListByUser(_ context.Context, userID string, f finance.TransactionFilter) ([]finance.Transaction, error) {
	keep := func(tx finance.Transaction) bool {
		if f.Kind != "" && tx.Kind != f.Kind {
			return false
		}
		if f.CategoryID != "" && (tx.CategoryID == nil || *tx.CategoryID != f.CategoryID) {
			return false
		}
		if f.PropertyID != "" && (tx.PropertyID == nil || *tx.PropertyID != f.PropertyID) {
			return false
		}
		if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
			return false
		}
		return f.EndDate == nil || !tx.Date.After(*f.EndDate)
	}
	less := func(a, b finance.Transaction) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.CreatedAt.After(b.CreatedAt)
	}
	return r.t.list(userID, keep, less), nil
}

func (r *transactionRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
