package medication

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/clock"
)

var (
	may10 = clock.Date{Year: 2024, Month: 5, Day: 10}
	may09 = clock.Date{Year: 2024, Month: 5, Day: 9}
)

func TestFoldDoses(t *testing.T) {
	doses := []Dose{
		{ID: "d1", Date: may10, Slots: Slots{Morning: true}},
		{ID: "d2", Date: may10, Slots: Slots{Morning: true}}, // duplicado: OR, no cuenta
		{ID: "d3", Date: may09, Slots: Slots{Evening: true}}, // otro día
		{ID: "d4", Date: may10, Slots: Slots{Night: true}},   // fuera de VisitSlots
	}

	got := FoldDoses(doses, may10, VisitSlots)
	if len(got) != 2 {
		t.Fatalf("expected exactly the visit slots, got %v", got)
	}
	if !got[SlotMorning] || got[SlotEvening] {
		t.Fatalf("unexpected fold %v", got)
	}

	all := FoldDoses(doses, may10, ScheduleSlots)
	if len(all) != 4 || !all[SlotNight] || all[SlotAfternoon] {
		t.Fatalf("unexpected schedule fold %v", all)
	}

	empty := FoldDoses(nil, may10, VisitSlots)
	if empty[SlotMorning] || empty[SlotEvening] || len(empty) != 2 {
		t.Fatalf("expected all false, got %v", empty)
	}
}

type fixedToday clock.Date

func (f fixedToday) Today(context.Context) clock.Date { return clock.Date(f) }

type fakeAnimals map[string]bool

func (f fakeAnimals) Exists(_ context.Context, id string) error {
	if !f[id] {
		return errs.NotFound("animal", id)
	}
	return nil
}

type fakeDoseReader struct {
	animals   fakeAnimals
	doses     []Dose
	schedules []Schedule
}

func (f *fakeDoseReader) DayRecord(ctx context.Context, animalID string, day clock.Date) (DayRecord, error) {
	if err := f.animals.Exists(ctx, animalID); err != nil {
		return DayRecord{}, err
	}
	rec := DayRecord{HasSchedules: len(f.schedules) > 0}
	for _, d := range f.doses {
		if d.Date == day {
			rec.Doses = append(rec.Doses, d)
		}
	}
	return rec, nil
}

func TestEvaluator_TodayStatus(t *testing.T) {
	reader := &fakeDoseReader{animals: fakeAnimals{"a1": true}, doses: []Dose{
		{ID: "d1", Owner: VisitOwned("v1"), Date: may10, Slots: Slots{Evening: true}},
		{ID: "d2", Owner: VisitOwned("v1"), Date: may09, Slots: Slots{Morning: true}},
	}}
	ev := NewEvaluator(reader, fixedToday(may10))

	st, err := ev.TodayStatus(context.Background(), "a1")
	if err != nil {
		t.Fatalf("TodayStatus: %v", err)
	}
	if st.Date != may10 || st.AnimalID != "a1" {
		t.Fatalf("unexpected status header %+v", st)
	}
	if st.Slots[SlotMorning] || !st.Slots[SlotEvening] {
		t.Fatalf("unexpected slots %v", st.Slots)
	}
}

func TestEvaluator_RepeatedCallsAgreeUntilNewDose(t *testing.T) {
	reader := &fakeDoseReader{animals: fakeAnimals{"a1": true}, doses: []Dose{
		{ID: "d1", Owner: VisitOwned("v1"), Date: may10, Slots: Slots{Morning: true}},
	}}
	ev := NewEvaluator(reader, fixedToday(may10))
	ctx := context.Background()

	first, err := ev.TodayStatus(ctx, "a1")
	if err != nil {
		t.Fatalf("TodayStatus: %v", err)
	}
	second, err := ev.TodayStatus(ctx, "a1")
	if err != nil {
		t.Fatalf("TodayStatus: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("status changed without new doses: %+v vs %+v", first, second)
	}
	if len(reader.doses) != 1 {
		t.Fatal("evaluating must not write doses")
	}

	reader.doses = append(reader.doses, Dose{ID: "d2", Owner: VisitOwned("v1"), Date: may10, Slots: Slots{Evening: true}})
	third, err := ev.TodayStatus(ctx, "a1")
	if err != nil {
		t.Fatalf("TodayStatus: %v", err)
	}
	want := map[Slot]bool{SlotMorning: true, SlotEvening: true}
	if !reflect.DeepEqual(third.Slots, want) {
		t.Fatalf("slots after new dose = %v, want %v", third.Slots, want)
	}
}

func TestEvaluator_ScheduleSlotsWhenAnimalHasSchedules(t *testing.T) {
	reader := &fakeDoseReader{
		animals:   fakeAnimals{"a1": true},
		schedules: []Schedule{{ID: "s1", AnimalID: "a1"}},
		doses:     []Dose{{ID: "d1", Owner: ScheduleOwned("s1"), Date: may10, Slots: Slots{Afternoon: true}}},
	}
	ev := NewEvaluator(reader, fixedToday(may10))

	st, err := ev.StatusOn(context.Background(), "a1", may10)
	if err != nil {
		t.Fatalf("StatusOn: %v", err)
	}
	if len(st.Slots) != 4 || !st.Slots[SlotAfternoon] {
		t.Fatalf("unexpected slots %v", st.Slots)
	}
}

func TestEvaluator_UnknownAnimal(t *testing.T) {
	ev := NewEvaluator(&fakeDoseReader{}, fixedToday(may10))

	for _, id := range []string{"ghost", " "} {
		_, err := ev.TodayStatus(context.Background(), id)
		if !errors.Is(err, errs.ErrNotFound) {
			t.Fatalf("%q: expected NotFound, got %v", id, err)
		}
	}
}
