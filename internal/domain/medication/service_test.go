package medication

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu        sync.Mutex
	doses     map[string]Dose
	schedules map[string]Schedule
	visits    map[string]bool
}

func newTestRepo() *testRepo {
	return &testRepo{
		doses:     map[string]Dose{},
		schedules: map[string]Schedule{},
		visits:    map[string]bool{},
	}
}

func (r *testRepo) CreateDose(_ context.Context, d Dose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := d.Owner.VisitID(); ok && !r.visits[id] {
		return errs.NotFound("visit", id)
	}
	if id, ok := d.Owner.ScheduleID(); ok {
		if _, found := r.schedules[id]; !found {
			return errs.NotFound("schedule", id)
		}
	}
	r.doses[d.ID] = d
	return nil
}

func (r *testRepo) ListDoses(_ context.Context, owner DoseOwner) ([]Dose, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Dose, 0)
	for _, d := range r.doses {
		if d.Owner == owner {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) DosesForAnimalOn(context.Context, string, clock.Date) ([]Dose, error) {
	return nil, nil
}

func (r *testRepo) DayRecord(context.Context, string, clock.Date) (DayRecord, error) {
	return DayRecord{}, nil
}

func (r *testRepo) ListSchedules(_ context.Context, f ScheduleFilter) ([]Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Schedule, 0)
	for _, s := range r.schedules {
		if f.AnimalID == "" || s.AnimalID == f.AnimalID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *testRepo) CreateSchedule(_ context.Context, s Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[s.ID] = s
	return nil
}

func (r *testRepo) GetSchedule(_ context.Context, id string) (Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[id]
	if !ok {
		return Schedule{}, errs.NotFound("schedule", id)
	}
	return s, nil
}

func (r *testRepo) DeleteSchedule(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[id]; !ok {
		return 0, errs.NotFound("schedule", id)
	}
	delete(r.schedules, id)
	n := 0
	for did, d := range r.doses {
		if d.Owner == ScheduleOwned(id) {
			delete(r.doses, did)
			n++
		}
	}
	return n, nil
}

type fakeVisits struct {
	byAnimal map[string][]visits.Visit // más reciente primero
}

func (f fakeVisits) Latest(_ context.Context, animalID string) (visits.Visit, error) {
	vs := f.byAnimal[animalID]
	if len(vs) == 0 {
		return visits.Visit{}, fmt.Errorf("animal %q: %w", animalID, errs.ErrNoVisitFound)
	}
	return vs[0], nil
}

func (f fakeVisits) ListByAnimal(_ context.Context, animalID string) ([]visits.Visit, error) {
	return f.byAnimal[animalID], nil
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	repo.visits["v-new"] = true
	repo.visits["v-old"] = true
	vs := fakeVisits{byAnimal: map[string][]visits.Visit{
		"a1": {{ID: "v-new", AnimalID: "a1"}, {ID: "v-old", AnimalID: "a1"}},
	}}
	svc := NewService(repo, fakeAnimals{"a1": true, "a2": true}, vs, fixedToday(may10))
	return svc, repo
}

func TestLogDoseAgainstLatestVisit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.LogDoseAgainstLatestVisit(ctx, "a1", DoseInput{Volunteer: " Ana ", Slots: Slots{Morning: true}})
	if err != nil {
		t.Fatalf("log dose: %v", err)
	}
	if id, ok := d.Owner.VisitID(); !ok || id != "v-new" {
		t.Fatalf("dose owner = %+v, want latest visit", d.Owner)
	}
	if d.Date != may10 || d.Volunteer != "Ana" || d.ID == "" {
		t.Fatalf("unexpected dose %+v", d)
	}

	cur, err := svc.ListLatestVisitDoses(ctx, "a1")
	if err != nil || cur.Visit.ID != "v-new" || len(cur.Doses) != 1 {
		t.Fatalf("latest visit doses: %+v %v", cur, err)
	}
}

func TestLogDoseAgainstLatestVisit_Validation(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.LogDoseAgainstLatestVisit(context.Background(), "a1", DoseInput{Slots: Slots{Afternoon: true}})
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"volunteer", "morning_or_evening", "afternoon"} {
		if !ve.Has(f) {
			t.Fatalf("expected field %q in %v", f, ve.Fields)
		}
	}
	if len(repo.doses) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestLogDoseAgainstLatestVisit_NoVisit(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.LogDoseAgainstLatestVisit(context.Background(), "a2", DoseInput{Volunteer: "Ana", Slots: Slots{Evening: true}})
	if errs.KindOf(err) != errs.KindNoVisitFound {
		t.Fatalf("expected NoVisitFound, got %v", err)
	}

	_, err = svc.LogDoseAgainstLatestVisit(context.Background(), "ghost", DoseInput{Volunteer: "Ana", Slots: Slots{Evening: true}})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestLogDose_ConcurrentWritersAllPersist(t *testing.T) {
	svc, repo := newTestService(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := DoseInput{Volunteer: fmt.Sprintf("vol-%d", i), Slots: Slots{Morning: i%2 == 0, Evening: i%2 == 1}}
			if _, err := svc.LogDoseAgainstLatestVisit(context.Background(), "a1", in); err != nil {
				t.Errorf("log dose %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	doses, _ := repo.ListDoses(context.Background(), VisitOwned("v-new"))
	if len(doses) != n {
		t.Fatalf("expected %d doses, got %d", n, len(doses))
	}
}

func TestSchedules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, "a1", ScheduleInput{
		MedicationName: "Meloxicam",
		StartDate:      "2024-05-20",
		EndDate:        "2024-05-01",
	})
	if !errors.Is(err, errs.ErrInvalidDateRange) {
		t.Fatalf("expected InvalidDateRange, got %v", err)
	}

	sc, err := svc.CreateSchedule(ctx, "a1", ScheduleInput{
		MedicationName: "Meloxicam",
		Slots:          Slots{Morning: true, Night: true},
		StartDate:      "2024-05-01",
		EndDate:        may10.String(), // inclusivo
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if sc.Frequency != "daily" {
		t.Fatalf("frequency = %q", sc.Frequency)
	}

	// Ventana no habilitada en la agenda
	_, err = svc.LogScheduleDose(ctx, sc.ID, DoseInput{Volunteer: "Leo", Slots: Slots{Afternoon: true}})
	if ve := errs.Fields(err); len(ve) != 1 || ve[0] != "afternoon" {
		t.Fatalf("expected afternoon rejected, got %v", err)
	}

	d, err := svc.LogScheduleDose(ctx, sc.ID, DoseInput{Volunteer: "Leo", Slots: Slots{Night: true}})
	if err != nil {
		t.Fatalf("log schedule dose: %v", err)
	}
	if id, ok := d.Owner.ScheduleID(); !ok || id != sc.ID {
		t.Fatalf("unexpected owner %+v", d.Owner)
	}

	list, err := svc.ListSchedules(ctx, ScheduleFilter{AnimalID: "a1"})
	if err != nil || len(list) != 1 {
		t.Fatalf("list schedules: %v %v", list, err)
	}

	del, err := svc.DeleteSchedule(ctx, sc.ID)
	if err != nil || del.RemovedDoses != 1 {
		t.Fatalf("delete schedule: %+v %v", del, err)
	}
	if _, err := svc.DeleteSchedule(ctx, sc.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}

func TestCreateSchedule_MalformedDatesReportedWithMissingFields(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.CreateSchedule(context.Background(), "a1", ScheduleInput{StartDate: "x", EndDate: "y"})
	if got, want := errs.Fields(err), []string{"medication_name", "start_date", "end_date"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}

	// rango invertido solo se evalúa con ambas fechas válidas
	_, err = svc.CreateSchedule(context.Background(), "a1", ScheduleInput{MedicationName: "m", StartDate: "2024-05-20", EndDate: "2024-02-31"})
	if got := errs.Fields(err); !reflect.DeepEqual(got, []string{"end_date"}) || errors.Is(err, errs.ErrInvalidDateRange) {
		t.Fatalf("expected only end_date, got %v", err)
	}
	if len(repo.schedules) != 0 {
		t.Fatal("nothing should be stored on validation failure")
	}
}

func TestLogScheduleDose_OutsideRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sc, err := svc.CreateSchedule(ctx, "a1", ScheduleInput{
		MedicationName: "Amoxicillin",
		Slots:          Slots{Morning: true},
		StartDate:      "2024-06-01",
		EndDate:        "2024-06-07",
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	_, err = svc.LogScheduleDose(ctx, sc.ID, DoseInput{Volunteer: "Leo", Slots: Slots{Morning: true}})
	if f := errs.Fields(err); len(f) != 1 || f[0] != "date" {
		t.Fatalf("expected date rejected, got %v", err)
	}
}

func TestListVisitsWithDoses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.LogDoseAgainstLatestVisit(ctx, "a1", DoseInput{Volunteer: "Ana", Slots: Slots{Morning: true}}); err != nil {
		t.Fatalf("log dose: %v", err)
	}

	out, err := svc.ListVisitsWithDoses(ctx, "a1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].Visit.ID != "v-new" || len(out[0].Doses) != 1 || len(out[1].Doses) != 0 {
		t.Fatalf("unexpected history %+v", out)
	}
}
