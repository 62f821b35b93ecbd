package tasks

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID map[string]Task
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Task{}}
}

func (r *testRepo) Create(_ context.Context, t Task) error {
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Update(_ context.Context, t Task) error {
	if cur, ok := r.byID[t.ID]; !ok || cur.UserID != t.UserID {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(_ context.Context, userID, id string) (Task, error) {
	t, ok := r.byID[id]
	if !ok || t.UserID != userID {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string, f ListFilter) ([]Task, error) {
	out := make([]Task, 0)
	for _, t := range r.byID {
		if t.UserID != userID {
			continue
		}
		if f.Incomplete && t.Status == StatusCompleted {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, userID, id string) error {
	if t, ok := r.byID[id]; !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_DefaultsToPending(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	task, err := svc.Create(context.Background(), "user-1", CreateInput{Title: " Mend fence "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Status != StatusPending || task.Title != "Mend fence" {
		t.Fatalf("unexpected task %#v", task)
	}

	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "x", Status: "blocked"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
}

func TestService_List_Incomplete(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	for _, in := range []CreateInput{
		{Title: "Plant garlic"},
		{Title: "Clean coop", Status: StatusInProgress},
		{Title: "Order seeds", Status: StatusCompleted},
	} {
		if _, err := svc.Create(ctx, "user-1", in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	open, err := svc.List(ctx, "user-1", ListFilter{Incomplete: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("expected 2 incomplete tasks, got %d", len(open))
	}
}

func TestService_OtherUserGetsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner", CreateInput{Title: "Plant garlic"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := StatusCompleted
	if _, err := svc.Update(ctx, "intruder", task.ID, UpdateInput{Status: &done}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.Delete(ctx, "intruder", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
