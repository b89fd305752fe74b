// Package model holds the entities stored by the service and the payloads
// accepted for creating and updating them.
//
// Entities carry `db` tags matching the table columns and `json` tags for
// the wire format. Payloads validate themselves and know which columns they
// write, so the generic repository never has to inspect them.
package model

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxInt is the largest value an integer column (int4) holds.
const MaxInt = math.MaxInt32

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}
