package tasks

import (
	"context"
	"strings"
	"time"

	"homestead-architect/internal/domain/refs"
	"homestead-architect/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.NotFound("task")
)

type Service struct {
	repo       Repository
	properties refs.OwnedLookup
	now        func() time.Time
}

func NewService(repo Repository, properties refs.OwnedLookup) *Service {
	return &Service{repo: repo, properties: properties, now: time.Now}
}

type CreateInput struct {
	PropertyID  *string
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
}

type UpdateInput struct {
	PropertyID  *string
	Title       *string
	Description *string
	Status      *Status
	DueDate     *time.Time

	ClearDueDate bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Task, error) {
	if strings.TrimSpace(userID) == "" {
		return Task{}, ErrInvalidInput
	}

	propertyID := refs.Clean(in.PropertyID)
	if err := refs.Check(ctx, s.properties, userID, "property_id", propertyID); err != nil {
		return Task{}, err
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}

	now := s.now()
	t := Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		PropertyID:  propertyID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(t); err != nil {
		return Task{}, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Task, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Task, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperr.Invalid("unknown status %q", filter.Status)
	}
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Task, error) {
	t, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Task{}, err
	}

	if in.PropertyID != nil {
		t.PropertyID = refs.Clean(in.PropertyID)
		if err := refs.Check(ctx, s.properties, userID, "property_id", t.PropertyID); err != nil {
			return Task{}, err
		}
	}
	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.ClearDueDate {
		t.DueDate = nil
	}
	if err := validate(t); err != nil {
		return Task{}, err
	}

	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func validate(t Task) error {
	if t.Title == "" {
		return apperr.Invalid("title is required")
	}
	if !t.Status.Valid() {
		return apperr.Invalid("status must be one of pending, in_progress, completed")
	}
	return nil
}
