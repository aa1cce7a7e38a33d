package health

import (
	"time"

	"shelter-care/internal/platform/clock"
)

// TimeSlot es la franja del día observada. Se aceptan valores libres;
// estos son los que usa la UI.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
	TimeSlotNight     TimeSlot = "night"
)

// Observation es inmutable una vez creada (no hay update).
type Observation struct {
	ID       string
	AnimalID string

	Date     clock.Date
	TimeSlot TimeSlot

	Appetite string
	Stool    string
	Urine    string
	Vomiting string
	Cough    string

	Symptoms string
	Behavior string
	Notes    string

	RecordedAt time.Time // asignado por el servidor
}

type ListFilter struct {
	From  *clock.Date
	To    *clock.Date
	Limit int
}
