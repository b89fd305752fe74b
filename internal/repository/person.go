package repository

import (
	"context"

	"github.com/deppfellow/legendary-swords/internal/database"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/google/uuid"
)

var personsTable = Table{
	Name:     "persons",
	Columns:  model.PersonColumns,
	IDColumn: "uuid",
	OrderBy:  []string{"created_at", "uuid"},
}

// PersonRepository stores persons.
type PersonRepository struct {
	*CRUDBase[model.Person, *model.PersonCreate, *model.PersonUpdate]
}

func NewPersonRepository(db database.Querier) *PersonRepository {
	return &PersonRepository{
		CRUDBase: NewCRUDBase[model.Person, *model.PersonCreate, *model.PersonUpdate](db, personsTable),
	}
}

func (r *PersonRepository) GetByDocumentNumber(ctx context.Context, document uuid.UUID) (*model.Person, error) {
	return r.GetBy(ctx, "document_number", document)
}

func (r *PersonRepository) GetByNameAll(ctx context.Context, name string) ([]model.Person, error) {
	return r.GetAllBy(ctx, "name", name)
}

func (r *PersonRepository) GetBySurnameAll(ctx context.Context, surname string) ([]model.Person, error) {
	return r.GetAllBy(ctx, "surname", surname)
}
