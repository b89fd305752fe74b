package model

import (
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/deppfellow/legendary-swords/internal/validation"
	"github.com/google/uuid"
)

// Person is a row of the persons table.
type Person struct {
	UUID           uuid.UUID `db:"uuid" json:"uuid"`
	DocumentNumber uuid.UUID `db:"document_number" json:"document_number"`
	Name           string    `db:"name" json:"name"`
	Surname        string    `db:"surname" json:"surname"`
}

var PersonColumns = []string{"uuid", "document_number", "name", "surname"}

// PersonCreate is the payload for registering a person. A document number
// is issued when none is supplied.
type PersonCreate struct {
	DocumentNumber *uuid.UUID `json:"document_number"`
	Name           string     `json:"name" validate:"required,notblank"`
	Surname        string     `json:"surname" validate:"required,notblank"`
}

func (c *PersonCreate) Validate() error {
	return validate.Struct(c)
}

// InsertMap returns the column values of a new person row.
func (c *PersonCreate) InsertMap() map[string]any {
	document := uuid.New()
	if c.DocumentNumber != nil {
		document = *c.DocumentNumber
	}

	return map[string]any{
		"uuid":            uuid.New(),
		"document_number": document,
		"name":            c.Name,
		"surname":         c.Surname,
	}
}

// PersonUpdate renames a person. Identifiers are immutable.
type PersonUpdate struct {
	Name    graphql.Omittable[*string] `json:"name"`
	Surname graphql.Omittable[*string] `json:"surname"`
}

func (u *PersonUpdate) Validate() error {
	var errs validation.CustomValidationErrors

	for _, f := range []struct {
		name  string
		field graphql.Omittable[*string]
	}{
		{"name", u.Name},
		{"surname", u.Surname},
	} {
		v, ok := f.field.ValueOK()
		if !ok {
			continue
		}
		switch {
		case v == nil:
			errs = append(errs, notNull(f.name))
		case strings.TrimSpace(*v) == "":
			errs = append(errs, validation.CustomValidationError{Field: f.name, Message: "must not be blank"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateMap returns only the columns present in the payload.
func (u *PersonUpdate) UpdateMap() map[string]any {
	set := map[string]any{}
	if v, ok := u.Name.ValueOK(); ok && v != nil {
		set["name"] = *v
	}
	if v, ok := u.Surname.ValueOK(); ok && v != nil {
		set["surname"] = *v
	}
	return set
}
