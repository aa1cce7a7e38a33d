package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/health"
)

type healthRepo struct {
	s *Store
}

func NewHealthRepo(s *Store) health.Repository {
	return &healthRepo{s: s}
}

func (r *healthRepo) Create(ctx context.Context, o health.Observation) error {
	if strings.TrimSpace(o.ID) == "" {
		return errors.New("observation id required")
	}
	return r.s.write(ctx, func(st *state) error {
		// el animal puede haberse borrado entre la validación y el insert
		if _, ok := st.animals[o.AnimalID]; !ok {
			return errs.NotFound("animal", o.AnimalID)
		}
		st.observations[o.ID] = o
		st.track(o.ID)
		return nil
	})
}

func (r *healthRepo) ListByAnimal(ctx context.Context, animalID string, filter health.ListFilter) ([]health.Observation, error) {
	out := make([]health.Observation, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, o := range st.observations {
			if o.AnimalID != animalID {
				continue
			}
			if filter.From != nil && o.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && o.Date.After(*filter.To) {
				continue
			}
			out = append(out, o)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
				return out[i].RecordedAt.After(out[j].RecordedAt)
			}
			return st.order[out[i].ID] > st.order[out[j].ID]
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
