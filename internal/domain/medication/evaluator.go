package medication

import (
	"context"
	"strings"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/clock"
)

// Today es la fuente del "hoy" (clock.Provider); nunca viene del cliente.
type Today interface {
	Today(ctx context.Context) clock.Date
}

// Evaluator calcula qué ventanas de dosis ya se cubrieron en un día.
// Solo lee: no crea ni modifica registros.
type Evaluator struct {
	doses DoseReader
	clock Today
}

func NewEvaluator(doses DoseReader, today Today) *Evaluator {
	return &Evaluator{doses: doses, clock: today}
}

// TodayStatus evalúa con la fecha del clock provider.
func (e *Evaluator) TodayStatus(ctx context.Context, animalID string) (Status, error) {
	return e.StatusOn(ctx, animalID, e.clock.Today(ctx))
}

func (e *Evaluator) StatusOn(ctx context.Context, animalID string, day clock.Date) (Status, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Status{}, errs.NotFound("animal", animalID)
	}

	rec, err := e.doses.DayRecord(ctx, animalID, day)
	if err != nil {
		return Status{}, err
	}
	slots := VisitSlots
	if rec.HasSchedules {
		slots = ScheduleSlots
	}

	return Status{
		AnimalID: animalID,
		Date:     day,
		Slots:    FoldDoses(rec.Doses, day, slots),
	}, nil
}

// FoldDoses hace OR por ventana de las dosis con fecha == day.
// Todas las ventanas de slots aparecen en el resultado (false si no hay dosis).
func FoldDoses(doses []Dose, day clock.Date, slots []Slot) map[Slot]bool {
	out := make(map[Slot]bool, len(slots))
	for _, s := range slots {
		out[s] = false
	}
	for _, d := range doses {
		if d.Date != day {
			continue
		}
		for _, s := range slots {
			if d.Slots.Has(s) {
				out[s] = true
			}
		}
	}
	return out
}
