package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type testRepo struct {
	byUser map[string]Profile
}

func (r *testRepo) Get(_ context.Context, userID string) (Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Upsert(_ context.Context, p Profile) (Profile, error) {
	if cur, ok := r.byUser[p.UserID]; ok {
		p.CreatedAt = cur.CreatedAt
	}
	r.byUser[p.UserID] = p
	return p, nil
}

func TestService_Upsert_ValidatesNames(t *testing.T) {
	svc := NewService(&testRepo{byUser: map[string]Profile{}})
	ctx := context.Background()

	cases := map[string]UpsertInput{
		"blank first": {FirstName: "  ", LastName: "Doe"},
		"blank last":  {FirstName: "Jane"},
		"long first":  {FirstName: strings.Repeat("a", 51), LastName: "Doe"},
	}
	for name, in := range cases {
		if _, err := svc.Upsert(ctx, "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}

	if _, err := svc.Upsert(ctx, "user-1", UpsertInput{FirstName: strings.Repeat("ñ", 50), LastName: "Doe"}); err != nil {
		t.Fatalf("50 runes should be accepted: %v", err)
	}
}

func TestService_Upsert_KeepsCreatedAt(t *testing.T) {
	svc := NewService(&testRepo{byUser: map[string]Profile{}})
	ctx := context.Background()

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	if _, err := svc.Get(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first upsert, got %v", err)
	}

	svc.now = func() time.Time { return t1 }
	if _, err := svc.Upsert(ctx, "user-1", UpsertInput{FirstName: "Jane", LastName: "Doe"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	svc.now = func() time.Time { return t2 }
	p, err := svc.Upsert(ctx, "user-1", UpsertInput{FirstName: "Janet", LastName: " Doe "})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if p.FirstName != "Janet" || p.LastName != "Doe" || !p.CreatedAt.Equal(t1) || !p.UpdatedAt.Equal(t2) {
		t.Fatalf("unexpected profile %#v", p)
	}
}
