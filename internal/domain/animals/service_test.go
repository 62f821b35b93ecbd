package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead-architect/internal/platform/apperr"
)

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(_ context.Context, a Animal) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(_ context.Context, a Animal) error {
	if cur, ok := r.byID[a.ID]; !ok || cur.UserID != a.UserID {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(_ context.Context, userID, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok || a.UserID != userID {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string, f ListFilter) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.UserID != userID || (f.Species != "" && a.Species != f.Species) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, userID, id string) error {
	if a, ok := r.byID[id]; !ok || a.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type propertyLookup map[string]string

func (p propertyLookup) CheckOwned(_ context.Context, userID, id string) error {
	if p[id] != userID {
		return apperr.NotFound("property")
	}
	return nil
}

func strPtr(s string) *string { return &s }

func newTestService() *Service {
	svc := NewService(newTestRepo(), propertyLookup{"farm-1": "user-1", "farm-2": "user-2"})
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Create_DefaultsAndNormalizes(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(context.Background(), "user-1", CreateInput{
		PropertyID: strPtr("farm-1"),
		Name:       " Daisy ",
		Species:    "Goat",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Sex != SexUnknown {
		t.Fatalf("expected sex unknown by default, got %q", a.Sex)
	}
	if a.Name != "Daisy" || a.Species != "goat" {
		t.Fatalf("unexpected normalization %#v", a)
	}
}

func TestService_Create_Validates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	future := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]CreateInput{
		"blank name":       {Species: "goat"},
		"blank species":    {Name: "Daisy"},
		"bad sex":          {Name: "Daisy", Species: "goat", Sex: "hermaphrodite"},
		"future birth":     {Name: "Daisy", Species: "goat", BirthDate: &future},
		"foreign property": {Name: "Daisy", Species: "goat", PropertyID: strPtr("farm-2")},
	}
	for name, in := range cases {
		if _, err := svc.Create(ctx, "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Update_ClearsBirthDateAndProperty(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	born := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	a, err := svc.Create(ctx, "user-1", CreateInput{
		PropertyID: strPtr("farm-1"),
		Name:       "Daisy",
		Species:    "goat",
		Sex:        SexFemale,
		BirthDate:  &born,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, "user-1", a.ID, UpdateInput{PropertyID: strPtr(""), ClearBirthDate: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PropertyID != nil || updated.BirthDate != nil {
		t.Fatalf("expected property and birth date cleared, got %#v", updated)
	}
	if updated.Sex != SexFemale {
		t.Fatalf("untouched sex changed to %q", updated.Sex)
	}
}

func TestService_CheckOwned(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, "user-1", CreateInput{Name: "Daisy", Species: "goat"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.CheckOwned(ctx, "user-1", a.ID); err != nil {
		t.Fatalf("owner CheckOwned: %v", err)
	}
	if err := svc.CheckOwned(ctx, "user-2", a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-2", a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on Get, got %v", err)
	}
}
