package finance

import (
	"context"
	"errors"
	"strings"
)

// CheckOwned valida category_id de una transacción.
func (s *Service) CheckOwned(ctx context.Context, userID, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return ErrCategoryNotFound
	}
	_, err := s.categories.GetByID(ctx, userID, categoryID)
	if errors.Is(err, ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
