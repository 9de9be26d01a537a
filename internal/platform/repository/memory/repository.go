package memory

import (
	"context"
	"slices"
	"sync"
)

type Entity interface {
	GetID() string
}

// Repository keeps entities in insertion order and refuses two entities
// with the same ID.
type Repository[T Entity] struct {
	data []T
	mu   sync.RWMutex
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{
		data: make([]T, 0),
	}
}

func (r *Repository[T]) indexOf(id string) int {
	return slices.IndexFunc(r.data, func(e T) bool { return e.GetID() == id })
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(entity.GetID()) != -1 {
		return ErrAlreadyExists
	}

	r.data = append(r.data, entity)
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	i := r.indexOf(id)
	if i == -1 {
		return zero, ErrNotFound
	}

	return r.data[i], nil
}

// Replace swaps the first entity with the given id for entity, keeping its
// position. entity may carry a different id as long as no other entity
// already uses it.
func (r *Repository[T]) Replace(ctx context.Context, id string, entity T) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}

	if j := r.indexOf(entity.GetID()); j != -1 && j != i {
		return ErrAlreadyExists
	}

	r.data[i] = entity
	return nil
}

// Delete removes every entity with the given id.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.data)
	r.data = slices.DeleteFunc(r.data, func(e T) bool { return e.GetID() == id })
	if len(r.data) == before {
		return ErrNotFound
	}

	return nil
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.data), nil
}

func (r *Repository[T]) Filter(ctx context.Context, match func(T) bool) ([]T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0)
	for _, entity := range r.data {
		if match(entity) {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}

// Sort reorders the stored entities in place with a stable sort and returns
// a copy of the new order.
func (r *Repository[T]) Sort(ctx context.Context, cmp func(a, b T) int) ([]T, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	slices.SortStableFunc(r.data, cmp)
	return slices.Clone(r.data), nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}
