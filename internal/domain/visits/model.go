package visits

import (
	"time"

	"shelter-care/internal/platform/clock"
)

// Visit es una visita veterinaria. Es además el contenedor de las dosis
// registradas con la convención "última visita".
type Visit struct {
	ID       string
	AnimalID string

	Title        string
	Description  string
	Diagnosis    string
	Treatment    string
	Medication   string // resumen de la medicación indicada
	Veterinarian string

	VisitDate clock.Date
	NextVisit *clock.Date
	Cost      *float64
	Notes     string

	CreatedAt time.Time
	// Seq es el orden de inserción; desempata CreatedAt iguales.
	Seq int64
}

// NewerThan define el orden de "visita más reciente": created_at desc, seq desc.
func (v Visit) NewerThan(o Visit) bool {
	if !v.CreatedAt.Equal(o.CreatedAt) {
		return v.CreatedAt.After(o.CreatedAt)
	}
	return v.Seq > o.Seq
}
