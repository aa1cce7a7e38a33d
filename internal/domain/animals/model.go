package animals

import (
	"time"

	"shelter-care/internal/platform/clock"
)

// Gender define el sexo del animal.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Animal es la raíz de todos los registros (salud, visitas, medicación).
type Animal struct {
	ID      string
	OwnerID string

	Name   string
	Breed  string
	Color  string
	Gender Gender

	BirthDate   *clock.Date
	Description string
	ImageRef    string // referencia devuelta por el image store

	// Confined es un flag operativo (jaula/aislamiento), no un estado médico.
	Confined bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	Confined *bool
}
