package memory

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var errIDRequired = errors.New("id required")

// table guarda filas por id y respeta el dueño (user_id) en cada acceso,
// igual que los WHERE user_id = $n del adapter postgres.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[string]T

	id    func(T) string
	owner func(T) string

	notFound error
}

func newTable[T any](id, owner func(T) string, notFound error) *table[T] {
	return &table[T]{
		rows:     make(map[string]T),
		id:       id,
		owner:    owner,
		notFound: notFound,
	}
}

func (t *table[T]) insert(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(v)
	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}
	if _, exists := t.rows[id]; exists {
		return errors.New("already exists")
	}
	t.rows[id] = v
	return nil
}

// update reemplaza la fila solo si existe y pertenece al mismo dueño.
func (t *table[T]) update(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.rows[t.id(v)]
	if !ok || t.owner(cur) != t.owner(v) {
		return t.notFound
	}
	t.rows[t.id(v)] = v
	return nil
}

func (t *table[T]) get(userID, id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	if !ok || t.owner(v) != userID {
		var zero T
		return zero, t.notFound
	}
	return v, nil
}

func (t *table[T]) delete(userID, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.rows[id]
	if !ok || t.owner(v) != userID {
		return t.notFound
	}
	delete(t.rows, id)
	return nil
}

// list filtra por dueño + keep (opcional) y ordena con less (opcional).
func (t *table[T]) list(userID string, keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, v := range t.rows {
		if t.owner(v) != userID {
			continue
		}
		if keep != nil && !keep(v) {
			continue
		}
		out = append(out, v)
	}

	// el map no tiene orden: desempatamos por id para que el listado sea estable
	sort.Slice(out, func(i, j int) bool {
		if less != nil {
			if less(out[i], out[j]) {
				return true
			}
			if less(out[j], out[i]) {
				return false
			}
		}
		return t.id(out[i]) < t.id(out[j])
	})
	return out
}

// upsert es para tablas con clave natural (profiles: id = user_id).
func (t *table[T]) upsert(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[t.id(v)] = v
}
