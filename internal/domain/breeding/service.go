package breeding

import (
	"context"
	"strings"
	"time"

	"homestead-architect/internal/domain/refs"
	"homestead-architect/internal/platform/apperr"
	"homestead-architect/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.NotFound("breeding event")
)

type Service struct {
	repo       Repository
	animals    refs.OwnedLookup
	properties refs.OwnedLookup
	log        logger.Logger
	now        func() time.Time
}

// NewService: animals/properties pueden ser nil (no validan referencias).
func NewService(repo Repository, animals, properties refs.OwnedLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:       repo,
		animals:    animals,
		properties: properties,
		log:        log,
		now:        time.Now,
	}
}

type CreateInput struct {
	AnimalID        string
	Type            EventType
	Date            time.Time
	PartnerAnimalID *string
	PartnerName     string
	ExpectedDueDate *time.Time
	ActualBirthDate *time.Time
	OffspringCount  *int
	Notes           string
	PropertyID      *string
}

// UpdateInput: nil = no tocar. PartnerAnimalID/PropertyID "" desasocian;
// los Clear* borran fechas opcionales.
type UpdateInput struct {
	AnimalID        *string
	Type            *EventType
	Date            *time.Time
	PartnerAnimalID *string
	PartnerName     *string
	ExpectedDueDate *time.Time
	ActualBirthDate *time.Time
	OffspringCount  *int
	Notes           *string
	PropertyID      *string

	ClearExpectedDueDate bool
	ClearActualBirthDate bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Event, error) {
	if strings.TrimSpace(userID) == "" {
		return Event{}, ErrInvalidInput
	}

	now := s.now()
	e := Event{
		ID:              uuid.NewString(),
		UserID:          userID,
		AnimalID:        strings.TrimSpace(in.AnimalID),
		Type:            in.Type,
		Date:            civilDate(in.Date),
		PartnerAnimalID: refs.Clean(in.PartnerAnimalID),
		PartnerName:     strings.TrimSpace(in.PartnerName),
		ExpectedDueDate: civilPtr(in.ExpectedDueDate),
		ActualBirthDate: civilPtr(in.ActualBirthDate),
		OffspringCount:  in.OffspringCount,
		Notes:           strings.TrimSpace(in.Notes),
		PropertyID:      refs.Clean(in.PropertyID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Date.IsZero() {
		return Event{}, apperr.Invalid("date is required")
	}
	if err := s.validate(ctx, e, true, true, true); err != nil {
		return Event{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Event, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Event, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, apperr.Invalid("unknown event_type %q", t)
		}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperr.Invalid("from must not be after to")
	}
	return s.repo.ListByUser(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Event, error) {
	e, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Event{}, err
	}

	if in.AnimalID != nil {
		e.AnimalID = strings.TrimSpace(*in.AnimalID)
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Date != nil {
		e.Date = civilDate(*in.Date)
	}
	if in.PartnerAnimalID != nil {
		e.PartnerAnimalID = refs.Clean(in.PartnerAnimalID)
	}
	if in.PartnerName != nil {
		e.PartnerName = strings.TrimSpace(*in.PartnerName)
	}
	if in.ExpectedDueDate != nil {
		e.ExpectedDueDate = civilPtr(in.ExpectedDueDate)
	}
	if in.ClearExpectedDueDate {
		e.ExpectedDueDate = nil
	}
	if in.ActualBirthDate != nil {
		e.ActualBirthDate = civilPtr(in.ActualBirthDate)
	}
	if in.ClearActualBirthDate {
		e.ActualBirthDate = nil
	}
	if in.OffspringCount != nil {
		e.OffspringCount = in.OffspringCount
	}
	if in.Notes != nil {
		e.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.PropertyID != nil {
		e.PropertyID = refs.Clean(in.PropertyID)
	}

	// solo revalidamos contra el store las referencias que cambiaron
	if err := s.validate(ctx, e, in.AnimalID != nil, in.PartnerAnimalID != nil, in.PropertyID != nil); err != nil {
		return Event{}, err
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) validate(ctx context.Context, e Event, checkAnimal, checkPartner, checkProperty bool) error {
	if e.AnimalID == "" {
		return apperr.Invalid("animal_id is required")
	}
	if !e.Type.Valid() {
		return apperr.Invalid("event_type must be one of heat_cycle, breeding, pregnancy_confirmation, birth")
	}
	if e.OffspringCount != nil && *e.OffspringCount < 0 {
		return apperr.Invalid("offspring_count cannot be negative")
	}
	if e.PartnerAnimalID != nil && *e.PartnerAnimalID == e.AnimalID {
		return apperr.Invalid("partner_animal_id cannot be the same animal")
	}

	if checkAnimal {
		id := e.AnimalID
		if err := refs.Check(ctx, s.animals, e.UserID, "animal_id", &id); err != nil {
			return err
		}
	}
	if checkPartner {
		if err := refs.Check(ctx, s.animals, e.UserID, "partner_animal_id", e.PartnerAnimalID); err != nil {
			return err
		}
	}
	if checkProperty {
		if err := refs.Check(ctx, s.properties, e.UserID, "property_id", e.PropertyID); err != nil {
			return err
		}
	}
	return nil
}

func civilPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := civilDate(*t)
	return &d
}
