package directory

import (
	"context"
	"strings"

	"shelter-care/internal/ports/owners"
)

// DevOwner es el responsable precargado en modo dev.
var DevOwner = owners.Owner{
	ID:    "owner-dev",
	Email: "test@example.com",
	Name:  "Test Owner",
}

// Static es un directorio en memoria (sin red). Emails case-insensitive.
type Static struct {
	byEmail map[string]owners.Owner
}

func NewStatic(seed ...owners.Owner) *Static {
	s := &Static{byEmail: make(map[string]owners.Owner, len(seed))}
	for _, o := range seed {
		s.byEmail[normalizeEmail(o.Email)] = o
	}
	return s
}

func (s *Static) LookupByEmail(_ context.Context, email string) (owners.Owner, error) {
	o, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return owners.Owner{}, owners.ErrOwnerNotFound
	}
	return o, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }
