package health

import (
	"context"
	"strings"
	"time"

	"shelter-care/internal/domain/validate"
	"shelter-care/internal/platform/clock"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// AnimalLookup evita importar el paquete animals (rompe ciclos).
type AnimalLookup interface {
	Exists(ctx context.Context, animalID string) error
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLookup) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
	}
}

type CreateInput struct {
	Date     string // YYYY-MM-DD
	TimeSlot string

	Appetite string
	Stool    string
	Urine    string
	Vomiting string
	Cough    string

	Symptoms string
	Behavior string
	Notes    string
}

func validateCreate(in CreateInput) (clock.Date, error) {
	var c validate.Checker
	day := c.Date("date", in.Date)
	c.RequiredDate("date", day)
	c.Required("time_slot", in.TimeSlot)
	c.Required("appetite", in.Appetite)
	c.Required("stool", in.Stool)
	c.Required("urine", in.Urine)
	c.Required("vomiting", in.Vomiting)
	c.Required("cough", in.Cough)
	return day, c.Err()
}

func (s *Service) Create(ctx context.Context, animalID string, in CreateInput) (Observation, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return Observation{}, err
	}
	day, err := validateCreate(in)
	if err != nil {
		return Observation{}, err
	}

	o := Observation{
		ID:         uuid.NewString(),
		AnimalID:   animalID,
		Date:       day,
		TimeSlot:   TimeSlot(strings.TrimSpace(in.TimeSlot)),
		Appetite:   strings.TrimSpace(in.Appetite),
		Stool:      strings.TrimSpace(in.Stool),
		Urine:      strings.TrimSpace(in.Urine),
		Vomiting:   strings.TrimSpace(in.Vomiting),
		Cough:      strings.TrimSpace(in.Cough),
		Symptoms:   strings.TrimSpace(in.Symptoms),
		Behavior:   strings.TrimSpace(in.Behavior),
		Notes:      strings.TrimSpace(in.Notes),
		RecordedAt: s.now(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Observation{}, err
	}
	return o, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]Observation, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.repo.ListByAnimal(ctx, animalID, filter)
}
