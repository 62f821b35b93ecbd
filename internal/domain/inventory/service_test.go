package inventory

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID map[string]Item
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Item{}}
}

func (r *testRepo) Create(_ context.Context, it Item) error {
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) Update(_ context.Context, it Item) error {
	if cur, ok := r.byID[it.ID]; !ok || cur.UserID != it.UserID {
		return ErrNotFound
	}
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) GetByID(_ context.Context, userID, id string) (Item, error) {
	it, ok := r.byID[id]
	if !ok || it.UserID != userID {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string, f ListFilter) ([]Item, error) {
	out := make([]Item, 0)
	for _, it := range r.byID {
		if it.UserID != userID {
			continue
		}
		if f.LowStock && !it.LowStock() {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, userID, id string) error {
	if it, ok := r.byID[id]; !ok || it.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_Validates(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	cases := map[string]CreateInput{
		"blank name":     {Category: "feed", Unit: "kg"},
		"no category":    {Name: "Layer pellets", Unit: "kg"},
		"no unit":        {Name: "Layer pellets", Category: "feed"},
		"negative stock": {Name: "Layer pellets", Category: "feed", Unit: "kg", CurrentStock: -1},
		"negative point": {Name: "Layer pellets", Category: "feed", Unit: "kg", ReorderPoint: -0.5},
	}
	for name, in := range cases {
		if _, err := svc.Create(ctx, "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_LowStock(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	mk := func(userID, name string, stock, point float64) Item {
		it, err := svc.Create(ctx, userID, CreateInput{Name: name, Category: "Feed", Unit: "kg", CurrentStock: stock, ReorderPoint: point})
		if err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		return it
	}
	mk("user-1", "Hay", 10, 20)
	mk("user-1", "Oats", 20, 20)
	plenty := mk("user-1", "Corn", 50, 20)
	mk("user-2", "Other", 0, 5)

	low, err := svc.LowStock(ctx, "user-1")
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low stock items, got %d", len(low))
	}
	for _, it := range low {
		if it.ID == plenty.ID || it.UserID != "user-1" {
			t.Fatalf("unexpected item in low stock: %#v", it)
		}
	}

	used := 5.0
	if _, err := svc.Update(ctx, "user-1", plenty.ID, UpdateInput{CurrentStock: &used}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	low, _ = svc.LowStock(ctx, "user-1")
	if len(low) != 3 {
		t.Fatalf("expected 3 low stock items after consumption, got %d", len(low))
	}
}

func TestService_OtherUserGetsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	it, err := svc.Create(ctx, "owner", CreateInput{Name: "Hay", Category: "feed", Unit: "bale"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.Category != "feed" {
		t.Fatalf("category not normalized: %q", it.Category)
	}

	if _, err := svc.Get(ctx, "intruder", it.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", it.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
