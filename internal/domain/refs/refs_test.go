package refs

import (
	"context"
	"errors"
	"testing"

	"homestead-architect/internal/platform/apperr"
)

type lookupFunc func(ctx context.Context, userID, id string) error

func (f lookupFunc) CheckOwned(ctx context.Context, userID, id string) error {
	return f(ctx, userID, id)
}

func TestCheck(t *testing.T) {
	errBoom := errors.New("connection reset")
	owned := lookupFunc(func(_ context.Context, userID, id string) error {
		if userID == "user-1" && id == "farm-1" {
			return nil
		}
		return apperr.NotFound("property")
	})
	failing := lookupFunc(func(context.Context, string, string) error { return errBoom })
	str := func(s string) *string { return &s }

	cases := []struct {
		name    string
		lookup  OwnedLookup
		id      *string
		wantErr error
	}{
		{name: "nil id", lookup: owned, id: nil},
		{name: "nil lookup", lookup: nil, id: str("anything")},
		{name: "owned", lookup: owned, id: str(" farm-1 ")},
		{name: "empty id", lookup: owned, id: str("  "), wantErr: apperr.ErrInvalidInput},
		{name: "not owned", lookup: owned, id: str("farm-2"), wantErr: apperr.ErrInvalidInput},
		{name: "store error", lookup: failing, id: str("farm-1"), wantErr: errBoom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(context.Background(), tc.lookup, "user-1", "property_id", tc.id)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if errors.Is(err, apperr.ErrNotFound) {
				t.Fatalf("not-found must not leak to the caller: %v", err)
			}
		})
	}
}

func TestClean(t *testing.T) {
	if Clean(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
	blank := "   "
	if Clean(&blank) != nil {
		t.Fatalf("blank id should become nil")
	}
	raw := " farm-1 "
	got := Clean(&raw)
	if got == nil || *got != "farm-1" {
		t.Fatalf("expected trimmed id, got %v", got)
	}
	if got == &raw {
		t.Fatalf("Clean should return a copy")
	}
}
