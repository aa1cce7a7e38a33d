package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/health"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
)

func day(d int) clock.Date { return clock.Date{Year: 2024, Month: 5, Day: d} }

func seedAnimal(t *testing.T, s *Store, id string) {
	t.Helper()
	now := time.Now()
	if err := NewAnimalRepo(s).Create(context.Background(), animals.Animal{ID: id, Name: id, OwnerID: "o1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("seed animal: %v", err)
	}
}

func TestVisits_LatestBreaksTiesByInsertionOrder(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")
	repo := NewVisitRepo(s)
	ctx := context.Background()

	if _, err := repo.Latest(ctx, "a1"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound without visits, got %v", err)
	}

	same := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	// visit_date no define "la más reciente": manda created_at y luego el orden de alta.
	for _, v := range []visits.Visit{
		{ID: "v1", AnimalID: "a1", VisitDate: day(9), CreatedAt: same},
		{ID: "v2", AnimalID: "a1", VisitDate: day(1), CreatedAt: same},
	} {
		if _, err := repo.Create(ctx, v); err != nil {
			t.Fatalf("create visit: %v", err)
		}
	}

	latest, err := repo.Latest(ctx, "a1")
	if err != nil || latest.ID != "v2" {
		t.Fatalf("Latest = %q, %v; want v2", latest.ID, err)
	}

	list, _ := repo.ListByAnimal(ctx, "a1")
	if len(list) != 2 || list[0].ID != "v1" {
		t.Fatalf("ListByAnimal must order by visit_date desc, got %v", list)
	}
}

func TestVisits_CreateRequiresAnimal(t *testing.T) {
	s := NewStore()
	_, err := NewVisitRepo(s).Create(context.Background(), visits.Visit{ID: "v1", AnimalID: "ghost"})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestHealth_ListFilterAndOrder(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")
	repo := NewHealthRepo(s)
	ctx := context.Background()

	base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	for i, d := range []int{3, 5, 7, 9} {
		o := health.Observation{ID: fmt.Sprintf("o%d", i), AnimalID: "a1", Date: day(d), RecordedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	from, to := day(4), day(8)
	got, _ := repo.ListByAnimal(ctx, "a1", health.ListFilter{From: &from, To: &to})
	if len(got) != 2 || got[0].Date != day(7) || got[1].Date != day(5) {
		t.Fatalf("unexpected filtered list %+v", got)
	}

	got, _ = repo.ListByAnimal(ctx, "a1", health.ListFilter{Limit: 1})
	if len(got) != 1 || got[0].ID != "o3" {
		t.Fatalf("expected newest only, got %+v", got)
	}
}

func TestMedication_DoseOwnershipAndScheduleDelete(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")
	ctx := context.Background()
	meds := NewMedicationRepo(s)

	if _, err := NewVisitRepo(s).Create(ctx, visits.Visit{ID: "v1", AnimalID: "a1", VisitDate: day(10)}); err != nil {
		t.Fatalf("create visit: %v", err)
	}
	if err := meds.CreateSchedule(ctx, medication.Schedule{ID: "s1", AnimalID: "a1", StartDate: day(1), EndDate: day(20)}); err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	err := meds.CreateDose(ctx, medication.Dose{ID: "d0", Owner: medication.VisitOwned("missing"), Date: day(10)})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound for unknown owner, got %v", err)
	}

	for _, d := range []medication.Dose{
		{ID: "d1", Owner: medication.VisitOwned("v1"), Date: day(10)},
		{ID: "d2", Owner: medication.ScheduleOwned("s1"), Date: day(10)},
		{ID: "d3", Owner: medication.ScheduleOwned("s1"), Date: day(9)},
	} {
		if err := meds.CreateDose(ctx, d); err != nil {
			t.Fatalf("create dose %s: %v", d.ID, err)
		}
	}

	onDay, _ := meds.DosesForAnimalOn(ctx, "a1", day(10))
	if len(onDay) != 2 {
		t.Fatalf("expected doses from both owners, got %d", len(onDay))
	}

	sched, _ := meds.ListDoses(ctx, medication.ScheduleOwned("s1"))
	if len(sched) != 2 || sched[0].ID != "d2" {
		t.Fatalf("expected date desc, got %+v", sched)
	}

	n, err := meds.DeleteSchedule(ctx, "s1")
	if err != nil || n != 2 {
		t.Fatalf("DeleteSchedule = %d, %v", n, err)
	}
	rest, _ := meds.DosesForAnimalOn(ctx, "a1", day(10))
	if len(rest) != 1 || rest[0].ID != "d1" {
		t.Fatalf("visit dose must survive, got %+v", rest)
	}
}

func TestStore_UpdateDiscardsDraftOnError(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")

	boom := errors.New("boom")
	err := s.update(context.Background(), func(st *state) error {
		delete(st.animals, "a1")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := NewAnimalRepo(s).GetByID(context.Background(), "a1"); err != nil {
		t.Fatalf("animal must survive failed update: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.update(ctx, func(st *state) error {
		delete(st.animals, "a1")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected Canceled, got %v", err)
	}
	if _, err := NewAnimalRepo(s).GetByID(context.Background(), "a1"); err != nil {
		t.Fatalf("animal must survive cancelled update: %v", err)
	}
}

func TestStore_WriteSkipsCancelledContext(t *testing.T) {
	s := NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	err := s.write(ctx, func(*state) error {
		ran = true
		return nil
	})
	if !errors.Is(err, context.Canceled) || ran {
		t.Fatalf("expected Canceled without running fn, got %v ran=%v", err, ran)
	}
	if err := s.view(ctx, func(*state) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("view: expected Canceled, got %v", err)
	}
}

func TestAnimals_ModifyAndSetConfinedTouchDisjointFields(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")
	repo := NewAnimalRepo(s)
	ctx := context.Background()
	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	if _, err := repo.SetConfined(ctx, "a1", true, at); err != nil {
		t.Fatalf("SetConfined: %v", err)
	}
	got, err := repo.Modify(ctx, "a1", func(a *animals.Animal) error {
		a.Name = "Luna"
		a.Confined = false
		return nil
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got.Name != "Luna" || !got.Confined {
		t.Fatalf("Modify must keep confinement, got %+v", got)
	}

	boom := errors.New("boom")
	if _, err := repo.Modify(ctx, "a1", func(a *animals.Animal) error {
		a.Name = "Nope"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, "a1")
	if stored.Name != "Luna" {
		t.Fatalf("failed Modify wrote %q", stored.Name)
	}

	if _, err := repo.SetConfined(ctx, "ghost", true, at); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestMedication_DayRecord(t *testing.T) {
	s := NewStore()
	seedAnimal(t, s, "a1")
	repo := NewMedicationRepo(s)
	ctx := context.Background()

	rec, err := repo.DayRecord(ctx, "a1", day(10))
	if err != nil || rec.HasSchedules || len(rec.Doses) != 0 {
		t.Fatalf("empty DayRecord = %+v, %v", rec, err)
	}
	if _, err := repo.DayRecord(ctx, "ghost", day(10)); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	if err := repo.CreateSchedule(ctx, medication.Schedule{ID: "s1", AnimalID: "a1", StartDate: day(1), EndDate: day(20)}); err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	for _, d := range []medication.Dose{
		{ID: "d1", Owner: medication.ScheduleOwned("s1"), Date: day(10)},
		{ID: "d2", Owner: medication.ScheduleOwned("s1"), Date: day(11)},
	} {
		if err := repo.CreateDose(ctx, d); err != nil {
			t.Fatalf("create dose %s: %v", d.ID, err)
		}
	}
	rec, err = repo.DayRecord(ctx, "a1", day(10))
	if err != nil || !rec.HasSchedules || len(rec.Doses) != 1 || rec.Doses[0].ID != "d1" {
		t.Fatalf("DayRecord = %+v, %v", rec, err)
	}
}
