package visits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/validate"
	"shelter-care/internal/platform/clock"

	"github.com/google/uuid"
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
	Title        string
	Description  string
	Diagnosis    string
	Treatment    string
	Medication   string
	Veterinarian string

	VisitDate string // YYYY-MM-DD
	NextVisit string // opcional
	Cost      *float64
	Notes     string
}

type visitDates struct {
	visit clock.Date
	next  *clock.Date
}

func validateCreate(in CreateInput) (visitDates, error) {
	var c validate.Checker
	c.Required("title", in.Title)
	c.Required("description", in.Description)
	c.Required("diagnosis", in.Diagnosis)
	c.Required("treatment", in.Treatment)
	c.Required("medication", in.Medication)
	c.Required("veterinarian", in.Veterinarian)
	dates := visitDates{visit: c.Date("visit_date", in.VisitDate)}
	c.RequiredDate("visit_date", dates.visit)
	dates.next = c.OptionalDate("next_visit", in.NextVisit)
	c.NonNegative("cost", in.Cost)
	return dates, c.Err()
}

func (s *Service) Create(ctx context.Context, animalID string, in CreateInput) (Visit, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return Visit{}, err
	}
	dates, err := validateCreate(in)
	if err != nil {
		return Visit{}, err
	}

	v := Visit{
		ID:           uuid.NewString(),
		AnimalID:     animalID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Treatment:    strings.TrimSpace(in.Treatment),
		Medication:   strings.TrimSpace(in.Medication),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		VisitDate:    dates.visit,
		NextVisit:    dates.next,
		Cost:         in.Cost,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    s.now(),
	}

	return s.repo.Create(ctx, v)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Visit, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, animalID)
}

// Latest devuelve la visita creada más recientemente.
// Sin visitas => errs.ErrNoVisitFound.
func (s *Service) Latest(ctx context.Context, animalID string) (Visit, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return Visit{}, err
	}
	v, err := s.repo.Latest(ctx, animalID)
	if errors.Is(err, errs.ErrNotFound) {
		return Visit{}, fmt.Errorf("animal %q: %w", animalID, errs.ErrNoVisitFound)
	}
	return v, err
}
