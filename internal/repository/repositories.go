// Package repository holds the SQL behind every entity.
//
// Each repository embeds CRUDBase for the shared get/list/create/update/
// remove operations and adds its own exact-match filters. Queries run on the
// session transaction found in the context, or directly on the pool.
package repository

import (
	"github.com/deppfellow/legendary-swords/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Swords  *SwordRepository
	Persons *PersonRepository
}

// NewRepositories builds the repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Swords:  NewSwordRepository(s.DB.Pool),
		Persons: NewPersonRepository(s.DB.Pool),
	}
}
