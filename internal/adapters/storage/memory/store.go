package memory

import (
	"context"
	"sync"

	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/health"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/domain/visits"
)

// state es todo el contenido del store. Solo las unidades de trabajo (Within)
// lo clonan: un rollback es descartar la copia.
type state struct {
	animals      map[string]animals.Animal
	observations map[string]health.Observation
	visits       map[string]visits.Visit
	doses        map[string]medication.Dose
	schedules    map[string]medication.Schedule

	// order guarda el orden de inserción de cualquier registro (ids únicos).
	order map[string]int64
	seq   int64
}

func newState() *state {
	return &state{
		animals:      make(map[string]animals.Animal),
		observations: make(map[string]health.Observation),
		visits:       make(map[string]visits.Visit),
		doses:        make(map[string]medication.Dose),
		schedules:    make(map[string]medication.Schedule),
		order:        make(map[string]int64),
	}
}

func (st *state) clone() *state {
	c := &state{
		animals:      make(map[string]animals.Animal, len(st.animals)),
		observations: make(map[string]health.Observation, len(st.observations)),
		visits:       make(map[string]visits.Visit, len(st.visits)),
		doses:        make(map[string]medication.Dose, len(st.doses)),
		schedules:    make(map[string]medication.Schedule, len(st.schedules)),
		order:        make(map[string]int64, len(st.order)),
		seq:          st.seq,
	}
	for k, v := range st.animals {
		c.animals[k] = v
	}
	for k, v := range st.observations {
		c.observations[k] = v
	}
	for k, v := range st.visits {
		c.visits[k] = v
	}
	for k, v := range st.doses {
		c.doses[k] = v
	}
	for k, v := range st.schedules {
		c.schedules[k] = v
	}
	for k, v := range st.order {
		c.order[k] = v
	}
	return c
}

func (st *state) track(id string) int64 {
	st.seq++
	st.order[id] = st.seq
	return st.seq
}

func (st *state) forget(id string) { delete(st.order, id) }

// doseAnimal resuelve el animal de una dosis a través de su dueño.
func (st *state) doseAnimal(d medication.Dose) (string, bool) {
	if id, ok := d.Owner.VisitID(); ok {
		v, found := st.visits[id]
		return v.AnimalID, found
	}
	if id, ok := d.Owner.ScheduleID(); ok {
		s, found := st.schedules[id]
		return s.AnimalID, found
	}
	return "", false
}

func (st *state) ownerExists(o medication.DoseOwner) bool {
	if id, ok := o.VisitID(); ok {
		_, found := st.visits[id]
		return found
	}
	if id, ok := o.ScheduleID(); ok {
		_, found := st.schedules[id]
		return found
	}
	return false
}

func (st *state) deleteDosesWhere(match func(medication.Dose) bool) int {
	n := 0
	for id, d := range st.doses {
		if match(d) {
			delete(st.doses, id)
			st.forget(id)
			n++
		}
	}
	return n
}

// Store es el backend en memoria (dev / tests). Un solo RWMutex protege todo el estado:
// lecturas concurrentes con RLock, escrituras serializadas con Lock.
type Store struct {
	mu sync.RWMutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

// view ejecuta fn con el estado actual bajo lock de lectura.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.st)
}

// write ejecuta fn sobre el estado vigente bajo lock de escritura.
// fn debe validar antes de mutar: si devuelve error no puede haber escrito nada.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.st)
}

// update ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
// Los lectores ven el estado anterior o el nuevo, nunca uno intermedio.
func (s *Store) update(ctx context.Context, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.st.clone()
	if err := fn(draft); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = draft
	return nil
}

// Within implementa cascade.UnitOfWork.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx cascade.Tx) error) error {
	return s.update(ctx, func(st *state) error {
		return fn(ctx, &cascadeTx{st: st})
	})
}
