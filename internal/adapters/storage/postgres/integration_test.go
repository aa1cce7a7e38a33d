package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/health"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
)

// Requiere una base descartable: TEST_DB_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	sqlDB, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	if err := Migrate(ctx, sqlDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := sqlDB.ExecContext(ctx, `TRUNCATE doses, medication_schedules, visits, health_observations, animals`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewDB(sqlDB, 2*time.Second)
}

func TestPostgres_RecordsAndCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	today := clock.Date{Year: 2024, Month: 5, Day: 10}

	animalsRepo := NewAnimalsRepo(db)
	visitsRepo := NewVisitsRepo(db)
	healthRepo := NewHealthRepo(db)
	meds := NewMedicationRepo(db)

	if err := animalsRepo.Create(ctx, animals.Animal{ID: "a1", OwnerID: "o1", Name: "Luna", Gender: animals.GenderFemale, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create animal: %v", err)
	}

	v1, err := visitsRepo.Create(ctx, visits.Visit{ID: "v1", AnimalID: "a1", Title: "t", VisitDate: today, CreatedAt: now})
	if err != nil {
		t.Fatalf("create visit: %v", err)
	}
	v2, err := visitsRepo.Create(ctx, visits.Visit{ID: "v2", AnimalID: "a1", Title: "t", VisitDate: today, CreatedAt: now})
	if err != nil {
		t.Fatalf("create visit: %v", err)
	}
	if v2.Seq <= v1.Seq {
		t.Fatalf("seq must grow: %d <= %d", v2.Seq, v1.Seq)
	}
	if latest, err := visitsRepo.Latest(ctx, "a1"); err != nil || latest.ID != "v2" {
		t.Fatalf("Latest = %q, %v", latest.ID, err)
	}

	if err := healthRepo.Create(ctx, health.Observation{ID: "o1", AnimalID: "a1", Date: today, TimeSlot: "morning", RecordedAt: now}); err != nil {
		t.Fatalf("create observation: %v", err)
	}
	if err := meds.CreateSchedule(ctx, medication.Schedule{ID: "s1", AnimalID: "a1", MedicationName: "m", Frequency: "daily", StartDate: today, EndDate: today, CreatedAt: now}); err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	for _, d := range []medication.Dose{
		{ID: "d1", Owner: medication.VisitOwned("v2"), Date: today, Volunteer: "Ana", Slots: medication.Slots{Morning: true}, RecordedAt: now},
		{ID: "d2", Owner: medication.ScheduleOwned("s1"), Date: today, Volunteer: "Leo", Slots: medication.Slots{Night: true}, RecordedAt: now},
	} {
		if err := meds.CreateDose(ctx, d); err != nil {
			t.Fatalf("create dose %s: %v", d.ID, err)
		}
	}
	err = meds.CreateDose(ctx, medication.Dose{ID: "d3", Owner: medication.VisitOwned("missing"), Date: today, Volunteer: "x", RecordedAt: now})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound for unknown visit, got %v", err)
	}

	onDay, err := meds.DosesForAnimalOn(ctx, "a1", today)
	if err != nil || len(onDay) != 2 {
		t.Fatalf("DosesForAnimalOn = %d, %v", len(onDay), err)
	}
	rec, err := meds.DayRecord(ctx, "a1", today)
	if err != nil || !rec.HasSchedules || len(rec.Doses) != 2 {
		t.Fatalf("DayRecord = %+v, %v", rec, err)
	}

	// confined y el perfil se escriben por separado: ninguno pisa al otro
	if _, err := animalsRepo.SetConfined(ctx, "a1", true, now); err != nil {
		t.Fatalf("SetConfined: %v", err)
	}
	renamed, err := animalsRepo.Modify(ctx, "a1", func(a *animals.Animal) error {
		a.Name = "Luna II"
		a.Confined = false
		return nil
	})
	if err != nil || renamed.Name != "Luna II" || !renamed.Confined {
		t.Fatalf("Modify = %+v, %v", renamed, err)
	}
	boom := errors.New("boom")
	if _, err := animalsRepo.Modify(ctx, "a1", func(a *animals.Animal) error {
		a.Name = "discarded"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if got, _ := animalsRepo.GetByID(ctx, "a1"); got.Name != "Luna II" {
		t.Fatalf("failed Modify must not write, name = %q", got.Name)
	}

	conf, err := cascade.NewCoordinator(db, nil).DeleteAnimal(ctx, "a1")
	if err != nil {
		t.Fatalf("DeleteAnimal: %v", err)
	}
	want := cascade.Removed{Doses: 2, Visits: 2, Observations: 1, Schedules: 1}
	if conf.Removed != want {
		t.Fatalf("removed = %+v, want %+v", conf.Removed, want)
	}
	if _, err := animalsRepo.GetByID(ctx, "a1"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("animal should be gone, got %v", err)
	}
	if _, err := cascade.NewCoordinator(db, nil).DeleteAnimal(ctx, "a1"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
	if _, err := meds.DayRecord(ctx, "a1", today); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("DayRecord after delete: expected NotFound, got %v", err)
	}
	if _, err := animalsRepo.SetConfined(ctx, "a1", false, now); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("SetConfined after delete: expected NotFound, got %v", err)
	}
}
