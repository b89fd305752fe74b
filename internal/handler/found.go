package handler

import (
	"github.com/deppfellow/legendary-swords/internal/errs"
)

// orNotFound maps an absent lookup result to a 404 for entity name.
func orNotFound[E any](entity *E, err error, name string, id any) (*E, error) {
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errs.NewEntityNotFoundError(name, id)
	}
	return entity, nil
}
