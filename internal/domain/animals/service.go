package animals

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
	ErrNotFound     = apperr.NotFound("animal")
)

type Service struct {
	repo       Repository
	properties refs.OwnedLookup
	now        func() time.Time
}

// NewService: properties puede ser nil (no valida property_id).
func NewService(repo Repository, properties refs.OwnedLookup) *Service {
	return &Service{
		repo:       repo,
		properties: properties,
		now:        time.Now,
	}
}

type CreateInput struct {
	PropertyID *string
	Name       string
	Species    string
	Breed      string
	Sex        Sex
	BirthDate  *time.Time
	Notes      string
}

// UpdateInput: nil = no tocar. PropertyID "" la desasocia.
type UpdateInput struct {
	PropertyID *string
	Name       *string
	Species    *string
	Breed      *string
	Sex        *Sex
	BirthDate  *time.Time
	Notes      *string

	// ClearBirthDate borra la fecha (PATCH con birth_date "").
	ClearBirthDate bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(userID) == "" {
		return Animal{}, ErrInvalidInput
	}

	propertyID := refs.Clean(in.PropertyID)
	if err := refs.Check(ctx, s.properties, userID, "property_id", propertyID); err != nil {
		return Animal{}, err
	}

	sex := in.Sex
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	a := Animal{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		Name:       strings.TrimSpace(in.Name),
		Species:    strings.ToLower(strings.TrimSpace(in.Species)),
		Breed:      strings.TrimSpace(in.Breed),
		Sex:        sex,
		BirthDate:  in.BirthDate,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.validate(a); err != nil {
		return Animal{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Animal, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Animal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	filter.Species = strings.ToLower(strings.TrimSpace(filter.Species))
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Animal{}, err
	}

	if in.PropertyID != nil {
		a.PropertyID = refs.Clean(in.PropertyID)
		if err := refs.Check(ctx, s.properties, userID, "property_id", a.PropertyID); err != nil {
			return Animal{}, err
		}
	}
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		a.Species = strings.ToLower(strings.TrimSpace(*in.Species))
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		a.Sex = *in.Sex
	}
	if in.BirthDate != nil {
		a.BirthDate = in.BirthDate
	}
	if in.ClearBirthDate {
		a.BirthDate = nil
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	if err := s.validate(a); err != nil {
		return Animal{}, err
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) validate(a Animal) error {
	if a.Name == "" {
		return apperr.Invalid("name is required")
	}
	if a.Species == "" {
		return apperr.Invalid("species is required")
	}
	if !a.Sex.Valid() {
		return apperr.Invalid("sex must be one of male, female, unknown")
	}
	if a.BirthDate != nil && a.BirthDate.After(s.now()) {
		return apperr.Invalid("birth_date cannot be in the future")
	}
	return nil
}
