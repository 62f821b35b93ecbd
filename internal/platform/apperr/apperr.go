// Package apperr define los errores de dominio que entienden los handlers.
// Cada módulo los re-exporta (ErrInvalidInput, ErrNotFound) y los envuelve
// con detalle: fmt.Errorf("%w: name is required", ErrInvalidInput).
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound también cubre filas de otro usuario: nunca revelamos que existen.
	ErrNotFound = errors.New("not found")
)

// Invalid arma un ErrInvalidInput con mensaje.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound arma un ErrNotFound nombrando la entidad ("animal not found").
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
