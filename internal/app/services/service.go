package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adarsh/schoolsite/internal/pkg/apperrors"
)

// Store is the persistence contract every entity repository satisfies.
// There is deliberately no update operation; records are created once and
// only ever deleted.
type Store[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record *T) (*T, error)
	DeleteByID(ctx context.Context, id int64) error
}

// EntityService exposes the operations shared by all three record kinds.
// News, faculty and gallery behave identically at this layer; only the HTTP
// envelopes above differ, so the whole layer is one generic implementation.
type EntityService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type entityService[T any] struct {
	store Store[T]
}

// NewEntityService creates a service over the given store
func NewEntityService[T any](store Store[T]) EntityService[T] {
	return &entityService[T]{store: store}
}

// List returns every record. An empty store yields an empty slice, not an
// error.
func (s *entityService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return records, nil
}

// Create persists the record and returns it with generated fields set
func (s *entityService[T]) Create(ctx context.Context, record *T) (*T, error) {
	created, err := s.store.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating record: %w", err)
	}
	return created, nil
}

// Exists probes for a record without fetching it into the response path.
// Controllers use it to decide between the deleted and already-absent
// response bodies before issuing the actual delete.
func (s *entityService[T]) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error probing record: %w", err)
	}
	return true, nil
}

// Delete removes the record by id
func (s *entityService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}
	return nil
}
