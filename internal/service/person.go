package service

import (
	"context"

	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/google/uuid"
)

// PersonRepository is what PersonService needs from storage.
type PersonRepository interface {
	CRUDRepository[model.Person, *model.PersonCreate, *model.PersonUpdate]
	GetByDocumentNumber(ctx context.Context, document uuid.UUID) (*model.Person, error)
	GetByNameAll(ctx context.Context, name string) ([]model.Person, error)
	GetBySurnameAll(ctx context.Context, surname string) ([]model.Person, error)
}

type PersonService struct {
	*CRUDService[model.Person, *model.PersonCreate, *model.PersonUpdate]
	repo PersonRepository
}

func NewPersonService(repo PersonRepository) *PersonService {
	return &PersonService{
		CRUDService: NewCRUDService[model.Person, *model.PersonCreate, *model.PersonUpdate](repo),
		repo:        repo,
	}
}

func (s *PersonService) GetByDocumentNumber(ctx context.Context, document uuid.UUID) (*model.Person, error) {
	return s.repo.GetByDocumentNumber(ctx, document)
}

func (s *PersonService) GetByNameAll(ctx context.Context, name string) ([]model.Person, error) {
	return s.repo.GetByNameAll(ctx, name)
}

func (s *PersonService) GetBySurnameAll(ctx context.Context, surname string) ([]model.Person, error) {
	return s.repo.GetBySurnameAll(ctx, surname)
}
