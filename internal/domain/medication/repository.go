package medication

import (
	"context"

	"shelter-care/internal/platform/clock"
)

type Repository interface {
	// CreateDose falla con errs.ErrNotFound si el dueño ya no existe.
	CreateDose(ctx context.Context, d Dose) error
	// ListDoses ordena por date desc, recorded_at desc.
	ListDoses(ctx context.Context, owner DoseOwner) ([]Dose, error)
	// DosesForAnimalOn devuelve las dosis cuyo dueño (visita o agenda)
	// pertenece al animal y cuya fecha es day.
	DosesForAnimalOn(ctx context.Context, animalID string, day clock.Date) ([]Dose, error)
	DoseReader

	CreateSchedule(ctx context.Context, s Schedule) error
	GetSchedule(ctx context.Context, id string) (Schedule, error)
	// ListSchedules ordena por created_at desc.
	ListSchedules(ctx context.Context, filter ScheduleFilter) ([]Schedule, error)
	// DeleteSchedule borra la agenda y sus dosis en una sola operación.
	DeleteSchedule(ctx context.Context, id string) (removedDoses int, err error)
}

// DayRecord es lo que el evaluador necesita de un animal para un día.
type DayRecord struct {
	HasSchedules bool
	Doses        []Dose
}

// DoseReader es la vista de solo lectura que usa el evaluador.
type DoseReader interface {
	// DayRecord lee existencia del animal, agendas y dosis del día en una sola
	// vista consistente. Animal inexistente => errs.ErrNotFound.
	DayRecord(ctx context.Context, animalID string, day clock.Date) (DayRecord, error)
}
