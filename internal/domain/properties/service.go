package properties

import (
	"context"
	"strings"
	"time"

	"homestead-architect/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.NotFound("property")
)

const maxNameLen = 200

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Location    string
	SizeAcres   float64
	ClimateZone string
	SoilType    string
	Notes       string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name        *string
	Location    *string
	SizeAcres   *float64
	ClimateZone *string
	SoilType    *string
	Notes       *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Property, error) {
	if strings.TrimSpace(userID) == "" {
		return Property{}, ErrInvalidInput
	}

	now := s.now()
	p := Property{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		SizeAcres:   in.SizeAcres,
		ClimateZone: strings.TrimSpace(in.ClimateZone),
		SoilType:    strings.TrimSpace(in.SoilType),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(p); err != nil {
		return Property{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Property{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Property, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string) ([]Property, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Property, error) {
	p, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Property{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Location != nil {
		p.Location = strings.TrimSpace(*in.Location)
	}
	if in.SizeAcres != nil {
		p.SizeAcres = *in.SizeAcres
	}
	if in.ClimateZone != nil {
		p.ClimateZone = strings.TrimSpace(*in.ClimateZone)
	}
	if in.SoilType != nil {
		p.SoilType = strings.TrimSpace(*in.SoilType)
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}
	if err := validate(p); err != nil {
		return Property{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Property{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func validate(p Property) error {
	if p.Name == "" {
		return apperr.Invalid("name is required")
	}
	if len(p.Name) > maxNameLen {
		return apperr.Invalid("name must be at most %d characters", maxNameLen)
	}
	if p.SizeAcres < 0 {
		return apperr.Invalid("size_acres cannot be negative")
	}
	return nil
}
