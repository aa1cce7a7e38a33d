package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/errs"
)

type animalRepo struct {
	s *Store
}

func NewAnimalRepo(s *Store) animals.Repository {
	return &animalRepo{s: s}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.animals[a.ID]; exists {
			return errors.New("animal already exists")
		}
		st.animals[a.ID] = a
		st.track(a.ID)
		return nil
	})
}

// Modify lee y escribe bajo el mismo lock; fn trabaja sobre una copia del registro.
func (r *animalRepo) Modify(ctx context.Context, id string, fn func(a *animals.Animal) error) (animals.Animal, error) {
	var out animals.Animal
	err := r.s.write(ctx, func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return errs.NotFound("animal", id)
		}
		confined := a.Confined
		if err := fn(&a); err != nil {
			return err
		}
		a.ID, a.Confined = id, confined
		st.animals[id] = a
		out = a
		return nil
	})
	return out, err
}

func (r *animalRepo) SetConfined(ctx context.Context, id string, confined bool, at time.Time) (animals.Animal, error) {
	var out animals.Animal
	err := r.s.write(ctx, func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return errs.NotFound("animal", id)
		}
		a.Confined = confined
		a.UpdatedAt = at
		st.animals[id] = a
		out = a
		return nil
	})
	return out, err
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	var out animals.Animal
	err := r.s.view(ctx, func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return errs.NotFound("animal", id)
		}
		out = a
		return nil
	})
	return out, err
}

func (r *animalRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, a := range st.animals {
			if filter.Confined != nil && a.Confined != *filter.Confined {
				continue
			}
			out = append(out, a)
		}
		// created_at asc, empate por orden de inserción
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return st.order[out[i].ID] < st.order[out[j].ID]
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
