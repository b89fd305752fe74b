package handler

import (
	"context"

	"github.com/deppfellow/legendary-swords/internal/errs"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/deppfellow/legendary-swords/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const entityPerson = "Person"

// PersonService is the part of the service layer the person endpoints use.
type PersonService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Person, error)
	GetAll(ctx context.Context) ([]model.Person, error)
	Create(ctx context.Context, payload *model.PersonCreate) (*model.Person, error)
	Update(ctx context.Context, id uuid.UUID, payload *model.PersonUpdate) (*model.Person, error)
	Remove(ctx context.Context, id uuid.UUID) (*model.Person, error)
	GetByDocumentNumber(ctx context.Context, document uuid.UUID) (*model.Person, error)
	GetByNameAll(ctx context.Context, name string) ([]model.Person, error)
	GetBySurnameAll(ctx context.Context, surname string) ([]model.Person, error)
}

type PersonHandler struct {
	Handler
	persons PersonService
}

func NewPersonHandler(h Handler, persons PersonService) *PersonHandler {
	return &PersonHandler{Handler: h, persons: persons}
}

type PersonIDRequest struct {
	UUID uuid.UUID `param:"uuid"`
}

func (r *PersonIDRequest) Validate() error { return nil }

type PersonDocumentRequest struct {
	DocumentNumber uuid.UUID `param:"document_number"`
}

func (r *PersonDocumentRequest) Validate() error { return nil }

type UpdatePersonRequest struct {
	UUID uuid.UUID `param:"uuid" json:"-"`
	model.PersonUpdate
}

// ListPersonsRequest selects at most one of the name filters.
type ListPersonsRequest struct {
	Name    string `query:"name"`
	Surname string `query:"surname"`
}

func (r *ListPersonsRequest) Validate() error {
	if countSet(r.Name, r.Surname) > 1 {
		return validation.CustomValidationErrors{{
			Field:   "query",
			Message: "at most one of name, surname may be given",
		}}
	}
	return nil
}

func (h *PersonHandler) CreatePerson(c echo.Context, req *model.PersonCreate) (*model.Person, error) {
	person, err := h.persons.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, errs.NewBadRequestError("Could not create person.", nil, nil)
	}
	return person, nil
}

func (h *PersonHandler) ListPersons(c echo.Context, req *ListPersonsRequest) ([]model.Person, error) {
	ctx := c.Request().Context()

	switch {
	case req.Name != "":
		return h.persons.GetByNameAll(ctx, req.Name)
	case req.Surname != "":
		return h.persons.GetBySurnameAll(ctx, req.Surname)
	default:
		return h.persons.GetAll(ctx)
	}
}

func (h *PersonHandler) GetPerson(c echo.Context, req *PersonIDRequest) (*model.Person, error) {
	person, err := h.persons.Get(c.Request().Context(), req.UUID)
	return orNotFound(person, err, entityPerson, req.UUID)
}

func (h *PersonHandler) GetPersonByDocument(c echo.Context, req *PersonDocumentRequest) (*model.Person, error) {
	person, err := h.persons.GetByDocumentNumber(c.Request().Context(), req.DocumentNumber)
	return orNotFound(person, err, entityPerson, req.DocumentNumber)
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *UpdatePersonRequest) (*model.Person, error) {
	person, err := h.persons.Update(c.Request().Context(), req.UUID, &req.PersonUpdate)
	return orNotFound(person, err, entityPerson, req.UUID)
}

func (h *PersonHandler) DeletePerson(c echo.Context, req *PersonIDRequest) (*model.Person, error) {
	person, err := h.persons.Remove(c.Request().Context(), req.UUID)
	return orNotFound(person, err, entityPerson, req.UUID)
}
