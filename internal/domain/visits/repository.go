package visits

import "context"

type Repository interface {
	// Create asigna Seq y devuelve la visita tal como quedó guardada.
	Create(ctx context.Context, v Visit) (Visit, error)
	GetByID(ctx context.Context, id string) (Visit, error)
	// ListByAnimal ordena por visit_date desc y luego por recencia de creación.
	ListByAnimal(ctx context.Context, animalID string) ([]Visit, error)
	// Latest es la consulta explícita "visita más reciente por creación".
	// Devuelve errs.ErrNotFound si el animal no tiene visitas.
	Latest(ctx context.Context, animalID string) (Visit, error)
}
