package infrastructure

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
	ErrNotFound     = apperr.NotFound("infrastructure project")
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
	Name        string
	Type        ProjectType
	Status      Status
	Budget      float64
	StartDate   *time.Time
	TargetDate  *time.Time
	Description string
}

// UpdateInput: nil = no tocar; Clear* borran las fechas.
type UpdateInput struct {
	PropertyID  *string
	Name        *string
	Type        *ProjectType
	Status      *Status
	Budget      *float64
	StartDate   *time.Time
	TargetDate  *time.Time
	Description *string

	ClearStartDate  bool
	ClearTargetDate bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Project, error) {
	if strings.TrimSpace(userID) == "" {
		return Project{}, ErrInvalidInput
	}

	propertyID := refs.Clean(in.PropertyID)
	if err := refs.Check(ctx, s.properties, userID, "property_id", propertyID); err != nil {
		return Project{}, err
	}

	status := in.Status
	if status == "" {
		status = StatusPlanned
	}

	now := s.now()
	p := Project{
		ID:          uuid.NewString(),
		UserID:      userID,
		PropertyID:  propertyID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Status:      status,
		Budget:      in.Budget,
		StartDate:   in.StartDate,
		TargetDate:  in.TargetDate,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(p); err != nil {
		return Project{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Project, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Project, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperr.Invalid("unknown status %q", filter.Status)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, apperr.Invalid("unknown type %q", filter.Type)
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	projects, err := s.List(ctx, userID, ListFilter{})
	if err != nil {
		return Overview{}, err
	}
	return Summarize(projects), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Project, error) {
	p, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Project{}, err
	}

	if in.PropertyID != nil {
		p.PropertyID = refs.Clean(in.PropertyID)
		if err := refs.Check(ctx, s.properties, userID, "property_id", p.PropertyID); err != nil {
			return Project{}, err
		}
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Budget != nil {
		p.Budget = *in.Budget
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.ClearStartDate {
		p.StartDate = nil
	}
	if in.TargetDate != nil {
		p.TargetDate = in.TargetDate
	}
	if in.ClearTargetDate {
		p.TargetDate = nil
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if err := validate(p); err != nil {
		return Project{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func validate(p Project) error {
	if p.Name == "" {
		return apperr.Invalid("name is required")
	}
	if !p.Type.Valid() {
		return apperr.Invalid("type must be one of greenhouse, barn, fence, water_system, other")
	}
	if !p.Status.Valid() {
		return apperr.Invalid("status must be one of planned, in_progress, completed")
	}
	if p.Budget < 0 {
		return apperr.Invalid("budget cannot be negative")
	}
	if p.StartDate != nil && p.TargetDate != nil && p.TargetDate.Before(*p.StartDate) {
		return apperr.Invalid("target_date must not be before start_date")
	}
	return nil
}
