package validate

import (
	"errors"
	"reflect"
	"testing"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/clock"
)

func TestChecker_ReportsAllFieldsInOrder(t *testing.T) {
	var c Checker
	c.Required("name", "  ")
	c.Required("breed", "mixed")
	c.RequiredDate("date", clock.Date{})
	c.AnyTrue("morning_or_evening", false, false)
	c.Required("name", "") // repetido: se reporta una vez
	neg := -1.0
	c.NonNegative("cost", &neg)
	c.OneOf("gender", "other", "male", "female")

	err := c.Err()
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"name", "date", "morning_or_evening", "cost", "gender"}
	if len(ve.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", ve.Fields, want)
	}
	for i := range want {
		if ve.Fields[i] != want[i] {
			t.Fatalf("fields = %v, want %v", ve.Fields, want)
		}
	}
}

func TestChecker_OK(t *testing.T) {
	var c Checker
	c.Required("name", "Luna")
	c.AnyTrue("slots", false, true)
	c.OneOf("gender", "", "male") // vacío es opcional
	c.NonNegative("cost", nil)
	if err := c.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDateRange(t *testing.T) {
	d1 := clock.Date{Year: 2024, Month: 5, Day: 1}
	d2 := clock.Date{Year: 2024, Month: 5, Day: 20}

	if err := DateRange(d1, d2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DateRange(d1, d1); err != nil {
		t.Fatalf("equal dates must be accepted: %v", err)
	}
	if err := DateRange(d2, d1); !errors.Is(err, errs.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestChecker_DatesKeepCollecting(t *testing.T) {
	var c Checker
	day := c.Date("date", "2024-13-45")
	c.RequiredDate("date", day)
	c.Required("stool", "")
	empty := c.Date("visit_date", "")
	c.RequiredDate("visit_date", empty)
	next := c.OptionalDate("next_visit", "10/05/2024")
	ok := c.OptionalDate("birth_date", "2024-06-01")
	none := c.OptionalDate("end_date", " ")

	if !day.IsZero() || !empty.IsZero() || next != nil || none != nil {
		t.Fatalf("unexpected values: %v %v %v %v", day, empty, next, none)
	}
	if ok == nil || ok.String() != "2024-06-01" {
		t.Fatalf("optional: got %v", ok)
	}

	want := []string{"date", "stool", "visit_date", "next_visit"}
	if got := errs.Fields(c.Err()); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
}
