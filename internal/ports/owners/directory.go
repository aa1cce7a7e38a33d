package owners

import (
	"context"
	"errors"
)

var ErrOwnerNotFound = errors.New("owner not found")

// Owner es la identidad mínima que necesitamos del servicio de usuarios.
type Owner struct {
	ID    string
	Email string
	Name  string
}

// Directory resuelve owners por email (colaborador externo).
type Directory interface {
	LookupByEmail(ctx context.Context, email string) (Owner, error)
}
