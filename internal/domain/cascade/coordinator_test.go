package cascade_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mem "shelter-care/internal/adapters/storage/memory"
	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/health"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/platform/logger"
)

var today = clock.Date{Year: 2024, Month: 5, Day: 10}

type fixture struct {
	store   *mem.Store
	animals animals.Repository
	health  health.Repository
	visits  visits.Repository
	meds    medication.Repository
}

func newFixture() fixture {
	s := mem.NewStore()
	return fixture{
		store:   s,
		animals: mem.NewAnimalRepo(s),
		health:  mem.NewHealthRepo(s),
		visits:  mem.NewVisitRepo(s),
		meds:    mem.NewMedicationRepo(s),
	}
}

// seed crea un animal con 2 visitas, 3 dosis (2 de visita, 1 de agenda),
// 1 observación y 1 agenda.
func (f fixture) seed(t *testing.T, animalID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed %s: %v", animalID, err)
		}
	}

	must(f.animals.Create(ctx, animals.Animal{ID: animalID, OwnerID: "o1", Name: "Luna", CreatedAt: now, UpdatedAt: now}))
	for _, id := range []string{animalID + "-v1", animalID + "-v2"} {
		_, err := f.visits.Create(ctx, visits.Visit{ID: id, AnimalID: animalID, Title: "Control", VisitDate: today, CreatedAt: now})
		must(err)
	}
	must(f.health.Create(ctx, health.Observation{ID: animalID + "-o1", AnimalID: animalID, Date: today, TimeSlot: "morning", RecordedAt: now}))
	must(f.meds.CreateSchedule(ctx, medication.Schedule{ID: animalID + "-s1", AnimalID: animalID, StartDate: today, EndDate: today, CreatedAt: now}))

	doses := []medication.Dose{
		{ID: animalID + "-d1", Owner: medication.VisitOwned(animalID + "-v1"), Date: today, Slots: medication.Slots{Morning: true}},
		{ID: animalID + "-d2", Owner: medication.VisitOwned(animalID + "-v2"), Date: today, Slots: medication.Slots{Evening: true}},
		{ID: animalID + "-d3", Owner: medication.ScheduleOwned(animalID + "-s1"), Date: today, Slots: medication.Slots{Night: true}},
	}
	for _, d := range doses {
		d.RecordedAt = now
		must(f.meds.CreateDose(ctx, d))
	}
}

func (f fixture) counts(t *testing.T, animalID string) (obs, vis, doses, scheds int) {
	t.Helper()
	ctx := context.Background()
	o, _ := f.health.ListByAnimal(ctx, animalID, health.ListFilter{Limit: 100})
	v, _ := f.visits.ListByAnimal(ctx, animalID)
	d, _ := f.meds.DosesForAnimalOn(ctx, animalID, today)
	s, _ := f.meds.ListSchedules(ctx, medication.ScheduleFilter{AnimalID: animalID})
	return len(o), len(v), len(d), len(s)
}

func TestDeleteAnimal_RemovesEverything(t *testing.T) {
	f := newFixture()
	f.seed(t, "a1")
	f.seed(t, "a2")

	c := cascade.NewCoordinator(f.store, logger.Nop())
	conf, err := c.DeleteAnimal(context.Background(), "a1")
	if err != nil {
		t.Fatalf("DeleteAnimal: %v", err)
	}

	want := cascade.Removed{Doses: 3, Visits: 2, Observations: 1, Schedules: 1}
	if conf.Removed != want || conf.AnimalID != "a1" || conf.CompletedAt.IsZero() {
		t.Fatalf("unexpected confirmation %+v", conf)
	}

	if _, err := f.animals.GetByID(context.Background(), "a1"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("animal should be gone, got %v", err)
	}
	if o, v, d, s := f.counts(t, "a1"); o+v+d+s != 0 {
		t.Fatalf("orphans left: obs=%d visits=%d doses=%d schedules=%d", o, v, d, s)
	}

	// El otro animal no se toca
	if o, v, d, s := f.counts(t, "a2"); o != 1 || v != 2 || d != 3 || s != 1 {
		t.Fatalf("a2 modified: obs=%d visits=%d doses=%d schedules=%d", o, v, d, s)
	}
}

func TestDeleteAnimal_NotFound(t *testing.T) {
	f := newFixture()
	f.seed(t, "a1")

	c := cascade.NewCoordinator(f.store, logger.Nop())
	for _, id := range []string{"ghost", "  "} {
		_, err := c.DeleteAnimal(context.Background(), id)
		if errs.KindOf(err) != errs.KindNotFound {
			t.Fatalf("DeleteAnimal(%q): expected NotFound, got %v", id, err)
		}
	}
	if o, v, d, s := f.counts(t, "a1"); o != 1 || v != 2 || d != 3 || s != 1 {
		t.Fatalf("unexpected writes: obs=%d visits=%d doses=%d schedules=%d", o, v, d, s)
	}
}

// failingUoW envuelve el store real e inyecta una falla en un paso.
type failingUoW struct {
	inner  cascade.UnitOfWork
	failAt string
}

func (u failingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx cascade.Tx) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, tx cascade.Tx) error {
		return fn(ctx, &failingTx{Tx: tx, failAt: u.failAt})
	})
}

var errInjected = errors.New("injected failure")

type failingTx struct {
	cascade.Tx
	failAt string
}

// Cada paso ejecuta el borrado real antes de fallar, así el rollback es observable.
func (tx *failingTx) fail(step string, n int, err error) (int, error) {
	if err == nil && tx.failAt == step {
		return 0, errInjected
	}
	return n, err
}

func (tx *failingTx) DeleteDosesForAnimal(ctx context.Context, id string) (int, error) {
	n, err := tx.Tx.DeleteDosesForAnimal(ctx, id)
	return tx.fail("doses", n, err)
}

func (tx *failingTx) DeleteVisitsForAnimal(ctx context.Context, id string) (int, error) {
	n, err := tx.Tx.DeleteVisitsForAnimal(ctx, id)
	return tx.fail("visits", n, err)
}

func (tx *failingTx) DeleteObservationsForAnimal(ctx context.Context, id string) (int, error) {
	n, err := tx.Tx.DeleteObservationsForAnimal(ctx, id)
	return tx.fail("observations", n, err)
}

func (tx *failingTx) DeleteSchedulesForAnimal(ctx context.Context, id string) (int, error) {
	n, err := tx.Tx.DeleteSchedulesForAnimal(ctx, id)
	return tx.fail("schedules", n, err)
}

func (tx *failingTx) DeleteAnimal(ctx context.Context, id string) error {
	if err := tx.Tx.DeleteAnimal(ctx, id); err != nil {
		return err
	}
	if tx.failAt == "animal" {
		return errInjected
	}
	return nil
}

func TestDeleteAnimal_RollsBackOnStepFailure(t *testing.T) {
	for _, step := range []string{"doses", "visits", "observations", "schedules", "animal"} {
		t.Run(step, func(t *testing.T) {
			f := newFixture()
			f.seed(t, "a1")

			var buf bytes.Buffer
			log := logger.New(logger.Options{Level: logger.Debug, Output: &buf})
			c := cascade.NewCoordinator(failingUoW{inner: f.store, failAt: step}, log)

			_, err := c.DeleteAnimal(context.Background(), "a1")
			if !errors.Is(err, errs.ErrTransactionFailed) {
				t.Fatalf("expected TransactionFailed, got %v", err)
			}
			if !errors.Is(err, errInjected) {
				t.Fatalf("cause lost: %v", err)
			}
			var txErr *errs.TxError
			if !errors.As(err, &txErr) || txErr.Step != step {
				t.Fatalf("expected step %q, got %+v", step, txErr)
			}
			if !errs.Retryable(err) {
				t.Fatalf("expected retryable")
			}
			if !strings.Contains(buf.String(), "cascade delete rolled back") {
				t.Fatalf("expected rollback log, got %q", buf.String())
			}

			if _, err := f.animals.GetByID(context.Background(), "a1"); err != nil {
				t.Fatalf("animal must survive rollback: %v", err)
			}
			if o, v, d, s := f.counts(t, "a1"); o != 1 || v != 2 || d != 3 || s != 1 {
				t.Fatalf("partial delete: obs=%d visits=%d doses=%d schedules=%d", o, v, d, s)
			}
		})
	}
}

func TestDeleteAnimal_ReadersNeverSeePartialState(t *testing.T) {
	f := newFixture()
	f.seed(t, "a1")
	c := cascade.NewCoordinator(f.store, logger.Nop())

	ctx := context.Background()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// Las visitas se borran antes que las observaciones: si ya no hay
				// visitas, una lectura posterior tampoco puede ver observaciones.
				v, _ := f.visits.ListByAnimal(ctx, "a1")
				if len(v) != 0 && len(v) != 2 {
					t.Errorf("partial visits: %d", len(v))
					return
				}
				if len(v) == 0 {
					o, _ := f.health.ListByAnimal(ctx, "a1", health.ListFilter{Limit: 10})
					if len(o) != 0 {
						t.Errorf("observations visible after visits were removed")
					}
					return
				}
			}
		}()
	}

	if _, err := c.DeleteAnimal(ctx, "a1"); err != nil {
		t.Fatalf("DeleteAnimal: %v", err)
	}
	close(stop)
	wg.Wait()
}
