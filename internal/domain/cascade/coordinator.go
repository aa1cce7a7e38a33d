// Package cascade borra un animal junto con todos sus registros en una sola unidad de trabajo.
package cascade

import (
	"context"
	"errors"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/logger"
)

// Tx son las operaciones disponibles dentro de la unidad de trabajo.
// Ninguna es visible para otros lectores hasta el commit.
type Tx interface {
	AnimalExists(ctx context.Context, animalID string) (bool, error)
	// DeleteDosesForAnimal borra dosis de visitas y de agendas del animal.
	DeleteDosesForAnimal(ctx context.Context, animalID string) (int, error)
	DeleteVisitsForAnimal(ctx context.Context, animalID string) (int, error)
	DeleteObservationsForAnimal(ctx context.Context, animalID string) (int, error)
	DeleteSchedulesForAnimal(ctx context.Context, animalID string) (int, error)
	DeleteAnimal(ctx context.Context, animalID string) error
}

// UnitOfWork ejecuta fn atómicamente: si fn devuelve error nada se aplica.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Removed struct {
	Doses        int
	Visits       int
	Observations int
	Schedules    int
}

// Confirmation se devuelve solo después del commit.
type Confirmation struct {
	AnimalID    string
	Removed     Removed
	CompletedAt time.Time
}

type Coordinator struct {
	uow UnitOfWork
	log logger.Logger
	now func() time.Time
}

func NewCoordinator(uow UnitOfWork, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator{uow: uow, log: log, now: time.Now}
}

// step es un paso de borrado con nombre (para reportar dónde falló).
type step struct {
	name string
	run  func(ctx context.Context, tx Tx, animalID string, r *Removed) error
}

// steps respeta hijo-antes-que-padre: dosis -> visitas -> observaciones/agendas -> animal.
var steps = []step{
	{"doses", func(ctx context.Context, tx Tx, id string, r *Removed) (err error) {
		r.Doses, err = tx.DeleteDosesForAnimal(ctx, id)
		return err
	}},
	{"visits", func(ctx context.Context, tx Tx, id string, r *Removed) (err error) {
		r.Visits, err = tx.DeleteVisitsForAnimal(ctx, id)
		return err
	}},
	{"observations", func(ctx context.Context, tx Tx, id string, r *Removed) (err error) {
		r.Observations, err = tx.DeleteObservationsForAnimal(ctx, id)
		return err
	}},
	{"schedules", func(ctx context.Context, tx Tx, id string, r *Removed) (err error) {
		r.Schedules, err = tx.DeleteSchedulesForAnimal(ctx, id)
		return err
	}},
	{"animal", func(ctx context.Context, tx Tx, id string, _ *Removed) error {
		return tx.DeleteAnimal(ctx, id)
	}},
}

// DeleteAnimal borra el animal y todos sus hijos. Si el animal no existe devuelve
// errs.ErrNotFound sin escribir nada. Cualquier otra falla hace rollback completo
// y se reporta como errs.ErrTransactionFailed.
func (c *Coordinator) DeleteAnimal(ctx context.Context, animalID string) (Confirmation, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Confirmation{}, errs.NotFound("animal", animalID)
	}

	var (
		removed Removed
		failed  string
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		removed = Removed{}
		ok, err := tx.AnimalExists(ctx, animalID)
		if err != nil {
			failed = "lookup"
			return err
		}
		if !ok {
			return errs.NotFound("animal", animalID)
		}
		for _, s := range steps {
			if err := s.run(ctx, tx, animalID, &removed); err != nil {
				failed = s.name
				return err
			}
		}
		return nil
	})

	log := logger.FromContext(ctx, c.log).With(logger.Fields{"animal_id": animalID})
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return Confirmation{}, err
		}
		// fallas de commit ya llegan como TxError con su propio paso
		var txErr *errs.TxError
		if failed != "" || !errors.As(err, &txErr) {
			txErr = &errs.TxError{Op: "delete animal", Step: failed, Err: err}
		}
		log.Error("cascade delete rolled back", logger.Fields{
			"step":  txErr.Step,
			"error": err,
		})
		return Confirmation{}, txErr
	}

	conf := Confirmation{
		AnimalID:    animalID,
		Removed:     removed,
		CompletedAt: c.now(),
	}
	log.Info("animal deleted", logger.Fields{
		"removed_doses":        removed.Doses,
		"removed_visits":       removed.Visits,
		"removed_observations": removed.Observations,
		"removed_schedules":    removed.Schedules,
	})
	return conf, nil
}
