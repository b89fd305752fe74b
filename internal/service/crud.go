package service

import (
	"context"

	"github.com/google/uuid"
)

// CRUDRepository is the storage surface shared by every entity.
type CRUDRepository[E any, C any, U any] interface {
	Get(ctx context.Context, id uuid.UUID) (*E, error)
	GetAll(ctx context.Context) ([]E, error)
	Create(ctx context.Context, payload C) (*E, error)
	Update(ctx context.Context, id uuid.UUID, payload U) (*E, error)
	Remove(ctx context.Context, id uuid.UUID) (*E, error)
}

// CRUDService forwards the shared operations to its repository. A nil
// entity with a nil error means absent.
type CRUDService[E any, C any, U any] struct {
	repo CRUDRepository[E, C, U]
}

func NewCRUDService[E any, C any, U any](repo CRUDRepository[E, C, U]) *CRUDService[E, C, U] {
	return &CRUDService[E, C, U]{repo: repo}
}

func (s *CRUDService[E, C, U]) Get(ctx context.Context, id uuid.UUID) (*E, error) {
	return s.repo.Get(ctx, id)
}

func (s *CRUDService[E, C, U]) GetAll(ctx context.Context) ([]E, error) {
	return s.repo.GetAll(ctx)
}

func (s *CRUDService[E, C, U]) Create(ctx context.Context, payload C) (*E, error) {
	return s.repo.Create(ctx, payload)
}

func (s *CRUDService[E, C, U]) Update(ctx context.Context, id uuid.UUID, payload U) (*E, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *CRUDService[E, C, U]) Remove(ctx context.Context, id uuid.UUID) (*E, error) {
	return s.repo.Remove(ctx, id)
}
