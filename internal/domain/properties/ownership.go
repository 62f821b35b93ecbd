package properties

import (
	"context"
	"errors"
	"strings"
)

// CheckOwned confirma que propertyID existe y es de userID.
// Lo usan animals/inventory/finance/... sin importar este paquete (ver PropertyLookup en cada uno).
func (s *Service) CheckOwned(ctx context.Context, userID, propertyID string) error {
	if strings.TrimSpace(propertyID) == "" {
		return ErrNotFound
	}
	_, err := s.repo.GetByID(ctx, userID, propertyID)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return err
}
