package inventory

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"homestead-architect/internal/domain/refs"
	"homestead-architect/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.NotFound("inventory item")
)

const (
	maxNameLen     = 200
	maxSupplierLen = 200
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
	PropertyID   *string
	Name         string
	Category     string
	CurrentStock float64
	Unit         string
	ReorderPoint float64
	Supplier     string
	Notes        string
}

type UpdateInput struct {
	PropertyID   *string
	Name         *string
	Category     *string
	CurrentStock *float64
	Unit         *string
	ReorderPoint *float64
	Supplier     *string
	Notes        *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Item, error) {
	if strings.TrimSpace(userID) == "" {
		return Item{}, ErrInvalidInput
	}

	propertyID := refs.Clean(in.PropertyID)
	if err := refs.Check(ctx, s.properties, userID, "property_id", propertyID); err != nil {
		return Item{}, err
	}

	now := s.now()
	it := Item{
		ID:           uuid.NewString(),
		UserID:       userID,
		PropertyID:   propertyID,
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.ToLower(strings.TrimSpace(in.Category)),
		CurrentStock: in.CurrentStock,
		Unit:         strings.TrimSpace(in.Unit),
		ReorderPoint: in.ReorderPoint,
		Supplier:     strings.TrimSpace(in.Supplier),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validate(it); err != nil {
		return Item{}, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Item, error) {
	return s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Item, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	return s.repo.ListByUser(ctx, userID, filter)
}

// LowStock devuelve los ítems con stock en o por debajo del punto de pedido.
func (s *Service) LowStock(ctx context.Context, userID string) ([]Item, error) {
	return s.List(ctx, userID, ListFilter{LowStock: true})
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Item, error) {
	it, err := s.repo.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Item{}, err
	}

	if in.PropertyID != nil {
		it.PropertyID = refs.Clean(in.PropertyID)
		if err := refs.Check(ctx, s.properties, userID, "property_id", it.PropertyID); err != nil {
			return Item{}, err
		}
	}
	if in.Name != nil {
		it.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		it.Category = strings.ToLower(strings.TrimSpace(*in.Category))
	}
	if in.CurrentStock != nil {
		it.CurrentStock = *in.CurrentStock
	}
	if in.Unit != nil {
		it.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.ReorderPoint != nil {
		it.ReorderPoint = *in.ReorderPoint
	}
	if in.Supplier != nil {
		it.Supplier = strings.TrimSpace(*in.Supplier)
	}
	if in.Notes != nil {
		it.Notes = strings.TrimSpace(*in.Notes)
	}
	if err := validate(it); err != nil {
		return Item{}, err
	}

	it.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, strings.TrimSpace(id))
}

func validate(it Item) error {
	if it.Name == "" || utf8.RuneCountInString(it.Name) > maxNameLen {
		return apperr.Invalid("name must be 1..%d chars", maxNameLen)
	}
	if it.Category == "" {
		return apperr.Invalid("category is required")
	}
	if it.Unit == "" {
		return apperr.Invalid("unit is required")
	}
	if it.CurrentStock < 0 {
		return apperr.Invalid("current_stock cannot be negative")
	}
	if it.ReorderPoint < 0 {
		return apperr.Invalid("reorder_point cannot be negative")
	}
	if utf8.RuneCountInString(it.Supplier) > maxSupplierLen {
		return apperr.Invalid("supplier must be at most %d chars", maxSupplierLen)
	}
	return nil
}
