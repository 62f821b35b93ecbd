package profiles

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (Profile, error)
	// Upsert crea o reemplaza el perfil; CreatedAt se conserva si ya existía.
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
