// Package service sits between handlers and repositories.
//
// The services hold no state and add no rules: each call is forwarded to
// the matching repository method inside the caller's session.
package service

import (
	"github.com/deppfellow/legendary-swords/internal/repository"
)

type Services struct {
	Swords  *SwordService
	Persons *PersonService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Swords:  NewSwordService(repos.Swords),
		Persons: NewPersonService(repos.Persons),
	}
}
