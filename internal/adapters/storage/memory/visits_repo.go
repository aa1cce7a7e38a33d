package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/visits"
)

type visitRepo struct {
	s *Store
}

func NewVisitRepo(s *Store) visits.Repository {
	return &visitRepo{s: s}
}

func (r *visitRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	if strings.TrimSpace(v.ID) == "" {
		return visits.Visit{}, errors.New("visit id required")
	}
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.animals[v.AnimalID]; !ok {
			return errs.NotFound("animal", v.AnimalID)
		}
		v.Seq = st.track(v.ID)
		st.visits[v.ID] = v
		return nil
	})
	if err != nil {
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *visitRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	var out visits.Visit
	err := r.s.view(ctx, func(st *state) error {
		v, ok := st.visits[id]
		if !ok {
			return errs.NotFound("visit", id)
		}
		out = v
		return nil
	})
	return out, err
}

func (r *visitRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	out := make([]visits.Visit, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range st.visits {
			if v.AnimalID == animalID {
				out = append(out, v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VisitDate != out[j].VisitDate {
			return out[i].VisitDate.After(out[j].VisitDate)
		}
		return out[i].NewerThan(out[j])
	})
	return out, nil
}

func (r *visitRepo) Latest(ctx context.Context, animalID string) (visits.Visit, error) {
	var (
		latest visits.Visit
		found  bool
	)
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range st.visits {
			if v.AnimalID != animalID {
				continue
			}
			if !found || v.NewerThan(latest) {
				latest, found = v, true
			}
		}
		return nil
	})
	if err != nil {
		return visits.Visit{}, err
	}
	if !found {
		return visits.Visit{}, errs.ErrNotFound
	}
	return latest, nil
}
