package animals

import (
	"context"
	"time"
)

// Repository no expone Delete: un animal solo se borra vía cascade.Coordinator.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, filter ListFilter) ([]Animal, error)

	// Modify lee el animal, aplica fn y guarda el resultado sin que otro escritor
	// intercale. Si fn devuelve error no se escribe nada. No toca confined.
	Modify(ctx context.Context, id string, fn func(a *Animal) error) (Animal, error)
	// SetConfined cambia solo confined y updated_at.
	SetConfined(ctx context.Context, id string, confined bool, at time.Time) (Animal, error)
}
