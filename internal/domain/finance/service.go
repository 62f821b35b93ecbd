package finance

import (
	"context"
	"strings"
	"time"

	"homestead-architect/internal/domain/refs"
	"homestead-architect/internal/platform/apperr"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = apperr.ErrInvalidInput
	ErrCategoryNotFound    = apperr.NotFound("financial category")
	ErrTransactionNotFound = apperr.NotFound("transaction")
)

type Service struct {
	categories   CategoryRepository
	transactions TransactionRepository
	properties   refs.OwnedLookup
	now          func() time.Time
}

func NewService(categories CategoryRepository, transactions TransactionRepository, properties refs.OwnedLookup) *Service {
	return &Service{
		categories:   categories,
		transactions: transactions,
		properties:   properties,
		now:          time.Now,
	}
}

// --- categorías ---

type CategoryInput struct {
	Name string
	Kind Kind
}

type CategoryPatch struct {
	Name *string
	Kind *Kind
}

func (s *Service) CreateCategory(ctx context.Context, userID string, in CategoryInput) (Category, error) {
	if strings.TrimSpace(userID) == "" {
		return Category{}, ErrInvalidInput
	}

	now := s.now()
	c := Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Kind:      in.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validateCategory(c); err != nil {
		return Category{}, err
	}

	if err := s.categories.Create(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, userID string, kind Kind) ([]Category, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if kind != "" && !kind.Valid() {
		return nil, apperr.Invalid("type must be income or expense")
	}
	return s.categories.ListByUser(ctx, userID, kind)
}

func (s *Service) UpdateCategory(ctx context.Context, userID, id string, in CategoryPatch) (Category, error) {
	c, err := s.categories.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Category{}, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		c.Kind = *in.Kind
	}
	if err := validateCategory(c); err != nil {
		return Category{}, err
	}

	c.UpdatedAt = s.now()
	if err := s.categories.Update(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// DeleteCategory: las transacciones que la usaban quedan sin categoría.
func (s *Service) DeleteCategory(ctx context.Context, userID, id string) error {
	return s.categories.Delete(ctx, userID, strings.TrimSpace(id))
}

func validateCategory(c Category) error {
	if c.Name == "" {
		return apperr.Invalid("name is required")
	}
	if !c.Kind.Valid() {
		return apperr.Invalid("type must be income or expense")
	}
	return nil
}

// --- transacciones ---

type TransactionInput struct {
	Date        time.Time
	Kind        Kind
	Amount      float64
	Description string
	Notes       string
	CategoryID  *string
	PropertyID  *string
}

type TransactionPatch struct {
	Date        *time.Time
	Kind        *Kind
	Amount      *float64
	Description *string
	Notes       *string
	CategoryID  *string // "" desasocia
	PropertyID  *string // "" desasocia
}

func (s *Service) CreateTransaction(ctx context.Context, userID string, in TransactionInput) (Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return Transaction{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Transaction{}, apperr.Invalid("date is required")
	}

	now := s.now()
	tx := Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        civilDate(in.Date),
		Kind:        in.Kind,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Notes:       strings.TrimSpace(in.Notes),
		CategoryID:  refs.Clean(in.CategoryID),
		PropertyID:  refs.Clean(in.PropertyID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateTransaction(tx); err != nil {
		return Transaction{}, err
	}
	if err := s.checkRefs(ctx, tx, true, true); err != nil {
		return Transaction{}, err
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (s *Service) GetTransaction(ctx context.Context, userID, id string) (Transaction, error) {
	return s.transactions.GetByID(ctx, userID, strings.TrimSpace(id))
}

func (s *Service) ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, apperr.Invalid("type must be income or expense")
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, apperr.Invalid("start_date must not be after end_date")
	}
	return s.transactions.ListByUser(ctx, userID, filter)
}

func (s *Service) UpdateTransaction(ctx context.Context, userID, id string, in TransactionPatch) (Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, userID, strings.TrimSpace(id))
	if err != nil {
		return Transaction{}, err
	}

	if in.Date != nil {
		tx.Date = civilDate(*in.Date)
	}
	if in.Kind != nil {
		tx.Kind = *in.Kind
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Description != nil {
		tx.Description = strings.TrimSpace(*in.Description)
	}
	if in.Notes != nil {
		tx.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.CategoryID != nil {
		tx.CategoryID = refs.Clean(in.CategoryID)
	}
	if in.PropertyID != nil {
		tx.PropertyID = refs.Clean(in.PropertyID)
	}
	if err := validateTransaction(tx); err != nil {
		return Transaction{}, err
	}
	if err := s.checkRefs(ctx, tx, in.CategoryID != nil, in.PropertyID != nil); err != nil {
		return Transaction{}, err
	}

	tx.UpdatedAt = s.now()
	if err := s.transactions.Update(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.transactions.Delete(ctx, userID, strings.TrimSpace(id))
}

// Summary es el balance sobre las transacciones que cumplen filter.
func (s *Service) Summary(ctx context.Context, userID string, filter TransactionFilter) (Summary, error) {
	txs, err := s.ListTransactions(ctx, userID, filter)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(txs), nil
}

func (s *Service) checkRefs(ctx context.Context, tx Transaction, category, property bool) error {
	if category {
		if err := refs.Check(ctx, s, tx.UserID, "category_id", tx.CategoryID); err != nil {
			return err
		}
	}
	if property {
		if err := refs.Check(ctx, s.properties, tx.UserID, "property_id", tx.PropertyID); err != nil {
			return err
		}
	}
	return nil
}

func validateTransaction(tx Transaction) error {
	if !tx.Kind.Valid() {
		return apperr.Invalid("type must be income or expense")
	}
	if tx.Amount <= 0 {
		return apperr.Invalid("amount must be greater than zero")
	}
	if tx.Description == "" {
		return apperr.Invalid("description is required")
	}
	return nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
