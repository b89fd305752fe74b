package model

import (
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/deppfellow/legendary-swords/internal/validation"
	"github.com/google/uuid"
)

// SwordCondition describes the state a sword is in.
type SwordCondition string

const (
	SwordConditionFallingApart SwordCondition = "falling_apart"
	SwordConditionShabby       SwordCondition = "shabby"
	SwordConditionNotBad       SwordCondition = "not_bad"
	SwordConditionGood         SwordCondition = "good"
	SwordConditionVeryWornOut  SwordCondition = "very_worn_out"
	SwordConditionExcellent    SwordCondition = "excellent"
)

// SwordConditions lists every accepted condition in declaration order.
var SwordConditions = []SwordCondition{
	SwordConditionFallingApart,
	SwordConditionShabby,
	SwordConditionNotBad,
	SwordConditionGood,
	SwordConditionVeryWornOut,
	SwordConditionExcellent,
}

func (c SwordCondition) Valid() bool {
	for _, known := range SwordConditions {
		if c == known {
			return true
		}
	}
	return false
}

// SwordValue is the letter grade of a sword, A being the highest.
type SwordValue string

const (
	SwordValueA SwordValue = "A"
	SwordValueB SwordValue = "B"
	SwordValueC SwordValue = "C"
	SwordValueD SwordValue = "D"
	SwordValueE SwordValue = "E"
)

var SwordValues = []SwordValue{SwordValueA, SwordValueB, SwordValueC, SwordValueD, SwordValueE}

func (v SwordValue) Valid() bool {
	for _, known := range SwordValues {
		if v == known {
			return true
		}
	}
	return false
}

// Sword is a row of the swords table.
type Sword struct {
	UUID          uuid.UUID      `db:"uuid" json:"uuid"`
	UUIDInsurance uuid.UUID      `db:"uuid_insurance" json:"uuid_insurance"`
	Type          string         `db:"sword_type" json:"type"`
	Condition     SwordCondition `db:"sword_condition" json:"condition"`
	Value         SwordValue     `db:"sword_value" json:"value"`
	Price         int            `db:"price" json:"price"`
	Rented        bool           `db:"rented" json:"rented"`
	OnSale        bool           `db:"on_sale" json:"on_sale"`
	Weight        *int           `db:"weight" json:"weight"`
	Length        *int           `db:"length" json:"length"`
}

// SwordColumns are selected and returned by every sword query, in the order
// the fields of Sword are declared.
var SwordColumns = []string{
	"uuid",
	"uuid_insurance",
	"sword_type",
	"sword_condition",
	"sword_value",
	"price",
	"rented",
	"on_sale",
	"weight",
	"length",
}

// SwordCreate is the payload for registering a new sword.
//
// Identifiers are generated by the service. An insurance UUID may be
// supplied, otherwise a fresh one is issued.
type SwordCreate struct {
	UUIDInsurance *uuid.UUID     `json:"uuid_insurance"`
	Type          string         `json:"type" validate:"required,notblank"`
	Condition     SwordCondition `json:"condition" validate:"required,oneof=falling_apart shabby not_bad good very_worn_out excellent"`
	Value         SwordValue     `json:"value" validate:"required,oneof=A B C D E"`
	Price         *int           `json:"price" validate:"omitempty,min=0,max=2147483647"`
	Weight        *int           `json:"weight" validate:"omitempty,min=0,max=2147483647"`
	Length        *int           `json:"length" validate:"omitempty,min=0,max=2147483647"`
}

func (c *SwordCreate) Validate() error {
	return validate.Struct(c)
}

// InsertMap returns the column values of a new sword row.
func (c *SwordCreate) InsertMap() map[string]any {
	insurance := uuid.New()
	if c.UUIDInsurance != nil {
		insurance = *c.UUIDInsurance
	}

	price := 0
	if c.Price != nil {
		price = *c.Price
	}

	return map[string]any{
		"uuid":            uuid.New(),
		"uuid_insurance":  insurance,
		"sword_type":      c.Type,
		"sword_condition": string(c.Condition),
		"sword_value":     string(c.Value),
		"price":           price,
		"rented":          false,
		"on_sale":         false,
		"weight":          c.Weight,
		"length":          c.Length,
	}
}

// SwordUpdate is a partial update of a sword.
//
// Omitted fields keep their stored value. An explicit null clears weight and
// length; every other field rejects null.
type SwordUpdate struct {
	Type      graphql.Omittable[*string]         `json:"type"`
	Condition graphql.Omittable[*SwordCondition] `json:"condition"`
	Value     graphql.Omittable[*SwordValue]     `json:"value"`
	Price     graphql.Omittable[*int]            `json:"price"`
	Rented    graphql.Omittable[*bool]           `json:"rented"`
	OnSale    graphql.Omittable[*bool]           `json:"on_sale"`
	Weight    graphql.Omittable[*int]            `json:"weight"`
	Length    graphql.Omittable[*int]            `json:"length"`
}

func (u *SwordUpdate) Validate() error {
	var errs validation.CustomValidationErrors

	if v, ok := u.Type.ValueOK(); ok {
		switch {
		case v == nil:
			errs = append(errs, notNull("type"))
		case strings.TrimSpace(*v) == "":
			errs = append(errs, validation.CustomValidationError{Field: "type", Message: "must not be blank"})
		}
	}
	if v, ok := u.Condition.ValueOK(); ok {
		switch {
		case v == nil:
			errs = append(errs, notNull("condition"))
		case !v.Valid():
			errs = append(errs, validation.CustomValidationError{
				Field:   "condition",
				Message: "must be one of: falling_apart shabby not_bad good very_worn_out excellent",
			})
		}
	}
	if v, ok := u.Value.ValueOK(); ok {
		switch {
		case v == nil:
			errs = append(errs, notNull("value"))
		case !v.Valid():
			errs = append(errs, validation.CustomValidationError{Field: "value", Message: "must be one of: A B C D E"})
		}
	}
	if v, ok := u.Price.ValueOK(); ok {
		switch {
		case v == nil:
			errs = append(errs, notNull("price"))
		case *v < 0:
			errs = append(errs, nonNegative("price"))
		case *v > MaxInt:
			errs = append(errs, tooLarge("price"))
		}
	}
	if v, ok := u.Rented.ValueOK(); ok && v == nil {
		errs = append(errs, notNull("rented"))
	}
	if v, ok := u.OnSale.ValueOK(); ok && v == nil {
		errs = append(errs, notNull("on_sale"))
	}
	if v, ok := u.Weight.ValueOK(); ok && v != nil {
		switch {
		case *v < 0:
			errs = append(errs, nonNegative("weight"))
		case *v > MaxInt:
			errs = append(errs, tooLarge("weight"))
		}
	}
	if v, ok := u.Length.ValueOK(); ok && v != nil {
		switch {
		case *v < 0:
			errs = append(errs, nonNegative("length"))
		case *v > MaxInt:
			errs = append(errs, tooLarge("length"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateMap returns only the columns present in the payload.
func (u *SwordUpdate) UpdateMap() map[string]any {
	set := map[string]any{}

	if v, ok := u.Type.ValueOK(); ok && v != nil {
		set["sword_type"] = *v
	}
	if v, ok := u.Condition.ValueOK(); ok && v != nil {
		set["sword_condition"] = string(*v)
	}
	if v, ok := u.Value.ValueOK(); ok && v != nil {
		set["sword_value"] = string(*v)
	}
	if v, ok := u.Price.ValueOK(); ok && v != nil {
		set["price"] = *v
	}
	if v, ok := u.Rented.ValueOK(); ok && v != nil {
		set["rented"] = *v
	}
	if v, ok := u.OnSale.ValueOK(); ok && v != nil {
		set["on_sale"] = *v
	}
	if v, ok := u.Weight.ValueOK(); ok {
		set["weight"] = v
	}
	if v, ok := u.Length.ValueOK(); ok {
		set["length"] = v
	}

	return set
}

func notNull(field string) validation.CustomValidationError {
	return validation.CustomValidationError{Field: field, Message: "must not be null"}
}

func nonNegative(field string) validation.CustomValidationError {
	return validation.CustomValidationError{Field: field, Message: "must be at least 0"}
}

func tooLarge(field string) validation.CustomValidationError {
	return validation.CustomValidationError{Field: field, Message: "must not exceed 2147483647"}
}
