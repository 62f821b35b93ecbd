// Package refs valida referencias entre módulos (property_id, animal_id)
// sin que los paquetes de dominio se importen entre sí.
package refs

import (
	"context"
	"errors"
	"strings"

	"homestead-architect/internal/platform/apperr"
)

// OwnedLookup lo implementan properties.Service y animals.Service.
type OwnedLookup interface {
	CheckOwned(ctx context.Context, userID, id string) error
}

// Check devuelve ErrInvalidInput si id no es del usuario.
// id nil (o lookup nil) no se valida.
func Check(ctx context.Context, lookup OwnedLookup, userID, field string, id *string) error {
	if id == nil || lookup == nil {
		return nil
	}
	if strings.TrimSpace(*id) == "" {
		return apperr.Invalid("%s cannot be empty", field)
	}
	err := lookup.CheckOwned(ctx, userID, strings.TrimSpace(*id))
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Invalid("%s does not reference one of your records", field)
	}
	return err
}

// Clean normaliza un id opcional: "" => nil.
func Clean(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}
