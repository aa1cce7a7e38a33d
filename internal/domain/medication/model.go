package medication

import (
	"time"

	"shelter-care/internal/platform/clock"
)

// Slot es una ventana de administración dentro del día.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
	SlotNight     Slot = "night"
)

// VisitSlots son las ventanas de la variante "dosis dentro de visita".
var VisitSlots = []Slot{SlotMorning, SlotEvening}

// ScheduleSlots son las ventanas de la variante de agenda independiente.
var ScheduleSlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

type Slots struct {
	Morning   bool
	Afternoon bool
	Evening   bool
	Night     bool
}

func (s Slots) Has(slot Slot) bool {
	switch slot {
	case SlotMorning:
		return s.Morning
	case SlotAfternoon:
		return s.Afternoon
	case SlotEvening:
		return s.Evening
	case SlotNight:
		return s.Night
	default:
		return false
	}
}

// Any indica si al menos una ventana está marcada.
func (s Slots) Any() bool { return s.Morning || s.Afternoon || s.Evening || s.Night }

type OwnerKind string

const (
	OwnerVisit    OwnerKind = "visit"
	OwnerSchedule OwnerKind = "schedule"
)

// DoseOwner es el dueño exclusivo de una dosis: una visita o una agenda, nunca ambos.
// Los campos son privados; solo se construye con VisitOwned / ScheduleOwned.
type DoseOwner struct {
	kind OwnerKind
	id   string
}

func VisitOwned(visitID string) DoseOwner { return DoseOwner{kind: OwnerVisit, id: visitID} }

func ScheduleOwned(scheduleID string) DoseOwner {
	return DoseOwner{kind: OwnerSchedule, id: scheduleID}
}

func (o DoseOwner) Kind() OwnerKind { return o.kind }
func (o DoseOwner) ID() string      { return o.id }
func (o DoseOwner) IsZero() bool    { return o.kind == "" || o.id == "" }

// VisitID devuelve el id si el dueño es una visita.
func (o DoseOwner) VisitID() (string, bool) { return o.id, o.kind == OwnerVisit }

// ScheduleID devuelve el id si el dueño es una agenda.
func (o DoseOwner) ScheduleID() (string, bool) { return o.id, o.kind == OwnerSchedule }

// Dose es un evento de administración. Inmutable.
type Dose struct {
	ID    string
	Owner DoseOwner

	Date      clock.Date
	Volunteer string
	Slots     Slots
	Notes     string

	RecordedAt time.Time
}

// Schedule es la variante independiente: pertenece directo al animal.
type Schedule struct {
	ID       string
	AnimalID string

	MedicationName string
	Dosage         string
	Frequency      string

	Slots     Slots
	StartDate clock.Date
	EndDate   clock.Date
	Notes     string

	CreatedAt time.Time
}

// ActiveOn indica si day cae dentro de [StartDate, EndDate].
func (s Schedule) ActiveOn(day clock.Date) bool {
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}

type ScheduleFilter struct {
	AnimalID string // vacío = todas
}

// Status es el resultado del evaluador para un animal y un día.
type Status struct {
	AnimalID string
	Date     clock.Date
	Slots    map[Slot]bool
}
