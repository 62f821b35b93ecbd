package infrastructure

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Project
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Project{}}
}

func (r *testRepo) Create(_ context.Context, p Project) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Project) error {
	if cur, ok := r.byID[p.ID]; !ok || cur.UserID != p.UserID {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, userID, id string) (Project, error) {
	p, ok := r.byID[id]
	if !ok || p.UserID != userID {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string, f ListFilter) ([]Project, error) {
	out := make([]Project, 0)
	for _, p := range r.byID {
		if p.UserID != userID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, userID, id string) error {
	if p, ok := r.byID[id]; !ok || p.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_DefaultsToPlanned(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	p, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "Hoop house", Type: TypeGreenhouse, Budget: 1500})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != StatusPlanned {
		t.Fatalf("expected planned, got %q", p.Status)
	}
}

func TestService_Create_Validates(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	cases := map[string]CreateInput{
		"blank name":      {Type: TypeBarn},
		"bad type":        {Name: "Silo", Type: "silo"},
		"bad status":      {Name: "Barn", Type: TypeBarn, Status: "abandoned"},
		"negative budget": {Name: "Barn", Type: TypeBarn, Budget: -10},
		"target < start":  {Name: "Barn", Type: TypeBarn, StartDate: &start, TargetDate: &before},
	}
	for name, in := range cases {
		if _, err := svc.Create(ctx, "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Overview(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	for _, in := range []CreateInput{
		{Name: "Hoop house", Type: TypeGreenhouse, Budget: 1500},
		{Name: "Goat barn", Type: TypeBarn, Status: StatusInProgress, Budget: 8000},
		{Name: "Rain tank", Type: TypeWaterSystem, Status: StatusInProgress, Budget: 600},
		{Name: "Paddock fence", Type: TypeFence, Status: StatusCompleted, Budget: 900},
	} {
		if _, err := svc.Create(ctx, "user-1", in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, "user-2", CreateInput{Name: "Other", Type: TypeOther, Budget: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	o, err := svc.Overview(ctx, "user-1")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	want := Overview{
		Planned:     StatusTotals{Count: 1, Budget: 1500},
		InProgress:  StatusTotals{Count: 2, Budget: 8600},
		Completed:   StatusTotals{Count: 1, Budget: 900},
		Total:       4,
		TotalBudget: 11000,
	}
	if o != want {
		t.Fatalf("Overview = %#v, want %#v", o, want)
	}
}

func TestService_List_RejectsUnknownFilter(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.List(context.Background(), "user-1", ListFilter{Status: "done"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_ClearsDates(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	p, err := svc.Create(ctx, "user-1", CreateInput{Name: "Barn", Type: TypeBarn, StartDate: &start})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	done := StatusCompleted
	updated, err := svc.Update(ctx, "user-1", p.ID, UpdateInput{Status: &done, ClearStartDate: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != StatusCompleted || updated.StartDate != nil {
		t.Fatalf("unexpected patch result %#v", updated)
	}

	if err := svc.Delete(ctx, "user-2", p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}
