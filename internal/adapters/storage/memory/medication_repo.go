package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/platform/clock"
)

type medicationRepo struct {
	s *Store
}

func NewMedicationRepo(s *Store) medication.Repository {
	return &medicationRepo{s: s}
}

func (r *medicationRepo) CreateDose(ctx context.Context, d medication.Dose) error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dose id required")
	}
	if d.Owner.IsZero() {
		return errors.New("dose owner required")
	}
	return r.s.write(ctx, func(st *state) error {
		if !st.ownerExists(d.Owner) {
			return errs.NotFound(string(d.Owner.Kind()), d.Owner.ID())
		}
		st.doses[d.ID] = d
		st.track(d.ID)
		return nil
	})
}

func (r *medicationRepo) ListDoses(ctx context.Context, owner medication.DoseOwner) ([]medication.Dose, error) {
	out := make([]medication.Dose, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, d := range st.doses {
			if d.Owner == owner {
				out = append(out, d)
			}
		}
		sortDoses(out, st.order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *medicationRepo) DosesForAnimalOn(ctx context.Context, animalID string, day clock.Date) ([]medication.Dose, error) {
	var out []medication.Dose
	err := r.s.view(ctx, func(st *state) error {
		out = st.dosesOn(animalID, day)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DayRecord lee todo bajo un solo RLock: un cascade no puede intercalarse.
func (r *medicationRepo) DayRecord(ctx context.Context, animalID string, day clock.Date) (medication.DayRecord, error) {
	var rec medication.DayRecord
	err := r.s.view(ctx, func(st *state) error {
		if _, ok := st.animals[animalID]; !ok {
			return errs.NotFound("animal", animalID)
		}
		for _, sc := range st.schedules {
			if sc.AnimalID == animalID {
				rec.HasSchedules = true
				break
			}
		}
		rec.Doses = st.dosesOn(animalID, day)
		return nil
	})
	if err != nil {
		return medication.DayRecord{}, err
	}
	return rec, nil
}

func (st *state) dosesOn(animalID string, day clock.Date) []medication.Dose {
	out := make([]medication.Dose, 0)
	for _, d := range st.doses {
		if d.Date != day {
			continue
		}
		if owner, ok := st.doseAnimal(d); ok && owner == animalID {
			out = append(out, d)
		}
	}
	sortDoses(out, st.order)
	return out
}

// date desc, recorded_at desc, inserción desc
func sortDoses(ds []medication.Dose, order map[string]int64) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].Date != ds[j].Date {
			return ds[i].Date.After(ds[j].Date)
		}
		if !ds[i].RecordedAt.Equal(ds[j].RecordedAt) {
			return ds[i].RecordedAt.After(ds[j].RecordedAt)
		}
		return order[ds[i].ID] > order[ds[j].ID]
	})
}

func (r *medicationRepo) CreateSchedule(ctx context.Context, sc medication.Schedule) error {
	if strings.TrimSpace(sc.ID) == "" {
		return errors.New("schedule id required")
	}
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.animals[sc.AnimalID]; !ok {
			return errs.NotFound("animal", sc.AnimalID)
		}
		st.schedules[sc.ID] = sc
		st.track(sc.ID)
		return nil
	})
}

func (r *medicationRepo) GetSchedule(ctx context.Context, id string) (medication.Schedule, error) {
	var out medication.Schedule
	err := r.s.view(ctx, func(st *state) error {
		sc, ok := st.schedules[id]
		if !ok {
			return errs.NotFound("schedule", id)
		}
		out = sc
		return nil
	})
	return out, err
}

func (r *medicationRepo) ListSchedules(ctx context.Context, filter medication.ScheduleFilter) ([]medication.Schedule, error) {
	out := make([]medication.Schedule, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, sc := range st.schedules {
			if filter.AnimalID != "" && sc.AnimalID != filter.AnimalID {
				continue
			}
			out = append(out, sc)
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return st.order[out[i].ID] > st.order[out[j].ID]
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *medicationRepo) DeleteSchedule(ctx context.Context, id string) (int, error) {
	removed := 0
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.schedules[id]; !ok {
			return errs.NotFound("schedule", id)
		}
		owner := medication.ScheduleOwned(id)
		removed = st.deleteDosesWhere(func(d medication.Dose) bool { return d.Owner == owner })
		delete(st.schedules, id)
		st.forget(id)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
