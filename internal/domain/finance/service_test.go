package finance

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testCategories struct {
	byID map[string]Category
}

func (r *testCategories) Create(_ context.Context, c Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testCategories) Update(_ context.Context, c Category) error {
	if cur, ok := r.byID[c.ID]; !ok || cur.UserID != c.UserID {
		return ErrCategoryNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testCategories) GetByID(_ context.Context, userID, id string) (Category, error) {
	c, ok := r.byID[id]
	if !ok || c.UserID != userID {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (r *testCategories) ListByUser(_ context.Context, userID string, kind Kind) ([]Category, error) {
	out := make([]Category, 0)
	for _, c := range r.byID {
		if c.UserID == userID && (kind == "" || c.Kind == kind) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testCategories) Delete(_ context.Context, userID, id string) error {
	if c, ok := r.byID[id]; !ok || c.UserID != userID {
		return ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

type testTransactions struct {
	byID map[string]Transaction
}

func (r *testTransactions) Create(_ context.Context, tx Transaction) error {
	r.byID[tx.ID] = tx
	return nil
}

func (r *testTransactions) Update(_ context.Context, tx Transaction) error {
	if cur, ok := r.byID[tx.ID]; !ok || cur.UserID != tx.UserID {
		return ErrTransactionNotFound
	}
	r.byID[tx.ID] = tx
	return nil
}

func (r *testTransactions) GetByID(_ context.Context, userID, id string) (Transaction, error) {
	tx, ok := r.byID[id]
	if !ok || tx.UserID != userID {
		return Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (r *testTransactions) ListByUser(_ context.Context, userID string, f TransactionFilter) ([]Transaction, error) {
	out := make([]Transaction, 0)
	for _, tx := range r.byID {
		if tx.UserID != userID {
			continue
		}
		if f.Kind != "" && tx.Kind != f.Kind {
			continue
		}
		if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && tx.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *testTransactions) Delete(_ context.Context, userID, id string) error {
	if tx, ok := r.byID[id]; !ok || tx.UserID != userID {
		return ErrTransactionNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService() *Service {
	return NewService(
		&testCategories{byID: map[string]Category{}},
		&testTransactions{byID: map[string]Transaction{}},
		nil,
	)
}

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	got := Summarize([]Transaction{
		{Kind: KindIncome, Amount: 120.5},
		{Kind: KindExpense, Amount: 40},
		{Kind: KindExpense, Amount: 10.5},
	})
	want := Summary{Income: 120.5, Expense: 50.5, Balance: 70, Count: 3}
	if got != want {
		t.Fatalf("Summarize = %#v, want %#v", got, want)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatalf("empty set should be zero")
	}
}

func TestService_CreateTransaction_Validates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := map[string]TransactionInput{
		"no date":          {Kind: KindIncome, Amount: 10, Description: "eggs"},
		"bad type":         {Date: date(5, 1), Kind: "gift", Amount: 10, Description: "eggs"},
		"zero amount":      {Date: date(5, 1), Kind: KindIncome, Amount: 0, Description: "eggs"},
		"negative amount":  {Date: date(5, 1), Kind: KindIncome, Amount: -3, Description: "eggs"},
		"no description":   {Date: date(5, 1), Kind: KindIncome, Amount: 10},
		"unknown category": {Date: date(5, 1), Kind: KindIncome, Amount: 10, Description: "eggs", CategoryID: strPtr("nope")},
	}
	for name, in := range cases {
		if _, err := svc.CreateTransaction(ctx, "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_CategoryMustBeOwned(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, "user-1", CategoryInput{Name: "Egg sales", Kind: KindIncome})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if _, err := svc.CreateTransaction(ctx, "user-2", TransactionInput{
		Date: date(5, 1), Kind: KindIncome, Amount: 10, Description: "eggs", CategoryID: &c.ID,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign category, got %v", err)
	}

	tx, err := svc.CreateTransaction(ctx, "user-1", TransactionInput{
		Date: date(5, 1), Kind: KindIncome, Amount: 10, Description: "eggs", CategoryID: &c.ID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if tx.CategoryID == nil || *tx.CategoryID != c.ID {
		t.Fatalf("category not kept: %#v", tx)
	}
}

func TestService_Summary_UsesFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, in := range []TransactionInput{
		{Date: date(4, 30), Kind: KindIncome, Amount: 1000, Description: "april"},
		{Date: date(5, 1), Kind: KindIncome, Amount: 200, Description: "eggs"},
		{Date: date(5, 15), Kind: KindExpense, Amount: 75, Description: "feed"},
		{Date: date(5, 31), Kind: KindExpense, Amount: 25, Description: "vet"},
	} {
		if _, err := svc.CreateTransaction(ctx, "user-1", in); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}
	if _, err := svc.CreateTransaction(ctx, "user-2", TransactionInput{Date: date(5, 2), Kind: KindIncome, Amount: 999, Description: "other"}); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	start, end := date(5, 1), date(5, 31)
	got, err := svc.Summary(ctx, "user-1", TransactionFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := Summary{Income: 200, Expense: 100, Balance: 100, Count: 3}
	if got != want {
		t.Fatalf("Summary = %#v, want %#v", got, want)
	}

	if _, err := svc.Summary(ctx, "user-1", TransactionFilter{StartDate: &end, EndDate: &start}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}

func TestService_OtherUserGetsNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tx, err := svc.CreateTransaction(ctx, "owner", TransactionInput{Date: date(5, 1), Kind: KindExpense, Amount: 5, Description: "nails"})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if _, err := svc.GetTransaction(ctx, "intruder", tx.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
	amount := 1.0
	if _, err := svc.UpdateTransaction(ctx, "intruder", tx.ID, TransactionPatch{Amount: &amount}); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound on update, got %v", err)
	}
	if err := svc.DeleteTransaction(ctx, "intruder", tx.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound on delete, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
