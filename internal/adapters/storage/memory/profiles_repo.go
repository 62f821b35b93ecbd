package memory

import (
	"context"

	"homestead-architect/internal/domain/profiles"
)

type profileRepo struct {
	t *table[profiles.Profile]
}

func NewProfileRepo() profiles.Repository {
	owner := func(p profiles.Profile) string { return p.UserID }
	return &profileRepo{t: newTable(owner, owner, profiles.ErrNotFound)}
}

func (r *profileRepo) Get(_ context.Context, userID string) (profiles.Profile, error) {
	return r.t.get(userID, userID)
}

func (r *profileRepo) Upsert(_ context.Context, p profiles.Profile) (profiles.Profile, error) {
	if cur, err := r.t.get(p.UserID, p.UserID); err == nil {
		p.CreatedAt = cur.CreatedAt
	}
	r.t.upsert(p)
	return p, nil
}
