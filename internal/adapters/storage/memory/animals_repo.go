package memory

import (
	"context"

	"homestead-architect/internal/domain/animals"
)

type animalRepo struct {
	t *table[animals.Animal]
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		t: newTable(
			func(a animals.Animal) string { return a.ID },
			func(a animals.Animal) string { return a.UserID },
			animals.ErrNotFound,
		),
	}
}

func (r *animalRepo) Create(_ context.Context, a animals.Animal) error {
	return r.t.insert(a)
}

func (r *animalRepo) Update(_ context.Context, a animals.Animal) error {
	return r.t.update(a)
}

func (r *animalRepo) GetByID(_ context.Context, userID, id string) (animals.Animal, error) {
	return r.t.get(userID, id)
}

func (r *animalRepo) ListByUser(_ context.Context, userID string, f animals.ListFilter) ([]animals.Animal, error) {
	keep := func(a animals.Animal) bool {
		if f.PropertyID != "" && (a.PropertyID == nil || *a.PropertyID != f.PropertyID) {
			return false
		}
		return f.Species == "" || a.Species == f.Species
	}
	return r.t.list(userID, keep, func(a, b animals.Animal) bool { return a.Name < b.Name }), nil
}

func (r *animalRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
