package medication

import (
	"context"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/validate"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"

	"github.com/google/uuid"
)

const defaultFrequency = "daily"

// AnimalLookup evita importar el paquete animals (rompe ciclos).
type AnimalLookup interface {
	Exists(ctx context.Context, animalID string) error
}

// VisitFinder es la parte de visits.Service que usa medicación.
// Latest sin visitas debe devolver errs.ErrNoVisitFound.
type VisitFinder interface {
	Latest(ctx context.Context, animalID string) (visits.Visit, error)
	ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	visits  VisitFinder
	clock   Today
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLookup, visitFinder VisitFinder, today Today) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		visits:  visitFinder,
		clock:   today,
		now:     time.Now,
	}
}

type DoseInput struct {
	Volunteer string
	Slots     Slots
	Notes     string
}

func validateVisitDose(in DoseInput) error {
	var c validate.Checker
	c.Required("volunteer", in.Volunteer)
	c.AnyTrue("morning_or_evening", in.Slots.Morning, in.Slots.Evening)
	// La variante de visita solo conoce mañana/noche.
	if in.Slots.Afternoon {
		c.Invalid("afternoon")
	}
	if in.Slots.Night {
		c.Invalid("night")
	}
	return c.Err()
}

// LogDoseAgainstLatestVisit registra una dosis en la visita creada más recientemente.
// La fecha de la dosis es el "hoy" del clock provider.
func (s *Service) LogDoseAgainstLatestVisit(ctx context.Context, animalID string, in DoseInput) (Dose, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return Dose{}, err
	}
	if err := validateVisitDose(in); err != nil {
		return Dose{}, err
	}

	latest, err := s.visits.Latest(ctx, animalID)
	if err != nil {
		return Dose{}, err
	}

	d := s.newDose(VisitOwned(latest.ID), s.clock.Today(ctx), in)
	if err := s.repo.CreateDose(ctx, d); err != nil {
		return Dose{}, err
	}
	return d, nil
}

// LogScheduleDose registra una dosis de una agenda independiente (cuatro ventanas).
// Solo se aceptan ventanas habilitadas en la agenda y días dentro de su vigencia.
func (s *Service) LogScheduleDose(ctx context.Context, scheduleID string, in DoseInput) (Dose, error) {
	sc, err := s.repo.GetSchedule(ctx, strings.TrimSpace(scheduleID))
	if err != nil {
		return Dose{}, err
	}

	today := s.clock.Today(ctx)

	var c validate.Checker
	c.Required("volunteer", in.Volunteer)
	c.AnyTrue("slots", in.Slots.Any())
	for _, slot := range ScheduleSlots {
		if in.Slots.Has(slot) && !sc.Slots.Has(slot) {
			c.Invalid(string(slot))
		}
	}
	if !sc.ActiveOn(today) {
		c.Invalid("date")
	}
	if err := c.Err(); err != nil {
		return Dose{}, err
	}

	d := s.newDose(ScheduleOwned(sc.ID), today, in)
	if err := s.repo.CreateDose(ctx, d); err != nil {
		return Dose{}, err
	}
	return d, nil
}

func (s *Service) newDose(owner DoseOwner, day clock.Date, in DoseInput) Dose {
	return Dose{
		ID:         uuid.NewString(),
		Owner:      owner,
		Date:       day,
		Volunteer:  strings.TrimSpace(in.Volunteer),
		Slots:      in.Slots,
		Notes:      strings.TrimSpace(in.Notes),
		RecordedAt: s.now(),
	}
}

// LatestVisitDoses es la vista de "medicación actual": última visita + sus dosis.
type LatestVisitDoses struct {
	Visit visits.Visit
	Doses []Dose
}

func (s *Service) ListLatestVisitDoses(ctx context.Context, animalID string) (LatestVisitDoses, error) {
	latest, err := s.visits.Latest(ctx, strings.TrimSpace(animalID))
	if err != nil {
		return LatestVisitDoses{}, err
	}
	doses, err := s.repo.ListDoses(ctx, VisitOwned(latest.ID))
	if err != nil {
		return LatestVisitDoses{}, err
	}
	return LatestVisitDoses{Visit: latest, Doses: doses}, nil
}

// DosesForVisit lista las dosis de una visita (date desc).
func (s *Service) DosesForVisit(ctx context.Context, visitID string) ([]Dose, error) {
	return s.repo.ListDoses(ctx, VisitOwned(visitID))
}

type VisitWithDoses struct {
	Visit visits.Visit
	Doses []Dose
}

// ListVisitsWithDoses es el historial clínico: visitas (visit_date desc) con sus dosis.
func (s *Service) ListVisitsWithDoses(ctx context.Context, animalID string) ([]VisitWithDoses, error) {
	vs, err := s.visits.ListByAnimal(ctx, strings.TrimSpace(animalID))
	if err != nil {
		return nil, err
	}
	out := make([]VisitWithDoses, 0, len(vs))
	for _, v := range vs {
		doses, err := s.repo.ListDoses(ctx, VisitOwned(v.ID))
		if err != nil {
			return nil, err
		}
		out = append(out, VisitWithDoses{Visit: v, Doses: doses})
	}
	return out, nil
}

type ScheduleInput struct {
	MedicationName string
	Dosage         string
	Frequency      string
	Slots          Slots
	StartDate      string // YYYY-MM-DD
	EndDate        string
	Notes          string
}

func validateSchedule(in ScheduleInput) (start, end clock.Date, err error) {
	var c validate.Checker
	c.Required("medication_name", in.MedicationName)
	start = c.Date("start_date", in.StartDate)
	c.RequiredDate("start_date", start)
	end = c.Date("end_date", in.EndDate)
	c.RequiredDate("end_date", end)
	if err := c.Err(); err != nil {
		return start, end, err
	}
	return start, end, validate.DateRange(start, end)
}

func (s *Service) CreateSchedule(ctx context.Context, animalID string, in ScheduleInput) (Schedule, error) {
	animalID = strings.TrimSpace(animalID)
	if err := s.animals.Exists(ctx, animalID); err != nil {
		return Schedule{}, err
	}
	start, end, err := validateSchedule(in)
	if err != nil {
		return Schedule{}, err
	}

	freq := strings.TrimSpace(in.Frequency)
	if freq == "" {
		freq = defaultFrequency
	}

	sc := Schedule{
		ID:             uuid.NewString(),
		AnimalID:       animalID,
		MedicationName: strings.TrimSpace(in.MedicationName),
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      freq,
		Slots:          in.Slots,
		StartDate:      start,
		EndDate:        end,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      s.now(),
	}

	if err := s.repo.CreateSchedule(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

func (s *Service) ListSchedules(ctx context.Context, filter ScheduleFilter) ([]Schedule, error) {
	if filter.AnimalID != "" {
		if err := s.animals.Exists(ctx, filter.AnimalID); err != nil {
			return nil, err
		}
	}
	return s.repo.ListSchedules(ctx, filter)
}

// ScheduleDeletion confirma el borrado de una agenda y sus dosis.
type ScheduleDeletion struct {
	ScheduleID   string
	RemovedDoses int
	DeletedAt    time.Time
}

func (s *Service) DeleteSchedule(ctx context.Context, scheduleID string) (ScheduleDeletion, error) {
	scheduleID = strings.TrimSpace(scheduleID)
	if scheduleID == "" {
		return ScheduleDeletion{}, errs.NotFound("schedule", scheduleID)
	}
	n, err := s.repo.DeleteSchedule(ctx, scheduleID)
	if err != nil {
		return ScheduleDeletion{}, err
	}
	return ScheduleDeletion{
		ScheduleID:   scheduleID,
		RemovedDoses: n,
		DeletedAt:    s.now(),
	}, nil
}
