package health

import "context"

type Repository interface {
	Create(ctx context.Context, o Observation) error
	// ListByAnimal ordena por recorded_at desc (empate: la última insertada primero).
	ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]Observation, error)
}
