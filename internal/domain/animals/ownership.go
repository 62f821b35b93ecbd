package animals

import (
	"context"
	"errors"
	"strings"
)

// CheckOwned lo consume breeding para validar animal_id / partner_animal_id.
func (s *Service) CheckOwned(ctx context.Context, userID, animalID string) error {
	if strings.TrimSpace(animalID) == "" {
		return ErrNotFound
	}
	_, err := s.repo.GetByID(ctx, userID, animalID)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return err
}
