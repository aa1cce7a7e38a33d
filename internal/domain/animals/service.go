package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/validate"
	"shelter-care/internal/platform/clock"
	"shelter-care/internal/ports/owners"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	owners owners.Directory // opcional: resuelve owner_email -> owner id
	now    func() time.Time
}

func NewService(repo Repository, dir owners.Directory) *Service {
	return &Service{
		repo:   repo,
		owners: dir,
		now:    time.Now,
	}
}

type RegisterInput struct {
	OwnerID    string
	OwnerEmail string // si viene, tiene prioridad sobre OwnerID

	Name        string
	Breed       string
	Color       string
	Gender      string
	BirthDate   string // YYYY-MM-DD, opcional
	Description string
	ImageRef    string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Animal, error) {
	var c validate.Checker
	c.Required("name", in.Name)

	ownerID := strings.TrimSpace(in.OwnerID)
	if email := strings.TrimSpace(in.OwnerEmail); email != "" {
		id, err := s.resolveOwner(ctx, email)
		switch {
		case errors.Is(err, owners.ErrOwnerNotFound):
			c.Invalid("owner_email")
		case err != nil:
			return Animal{}, err
		default:
			ownerID = id
		}
	} else {
		c.Required("owner", ownerID)
	}

	c.OneOf("gender", in.Gender, genderValues...)
	birth := c.OptionalDate("birth_date", in.BirthDate)
	if err := c.Err(); err != nil {
		return Animal{}, err
	}

	gender := Gender(strings.TrimSpace(in.Gender))
	if gender == "" {
		gender = GenderUnknown
	}

	now := s.now()
	a := Animal{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Color:       strings.TrimSpace(in.Color),
		Gender:      gender,
		BirthDate:   birth,
		Description: strings.TrimSpace(in.Description),
		ImageRef:    strings.TrimSpace(in.ImageRef),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

var genderValues = []string{string(GenderMale), string(GenderFemale), string(GenderUnknown)}

// resolveOwner: sin directorio configurado cualquier email es desconocido.
func (s *Service) resolveOwner(ctx context.Context, email string) (string, error) {
	if s.owners == nil {
		return "", owners.ErrOwnerNotFound
	}
	o, err := s.owners.LookupByEmail(ctx, email)
	if errors.Is(err, owners.ErrOwnerNotFound) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("resolve owner: %w", err)
	}
	return o.ID, nil
}

// PatchDate distingue "no enviado" de "enviado null" (limpiar).
// Raw vacío con Present = true limpia la fecha.
type PatchDate struct {
	Present bool
	Raw     string
}

// UpdateProfileInput: punteros para PATCH real, nil = no tocar.
type UpdateProfileInput struct {
	Name        *string
	Breed       *string
	Color       *string
	Gender      *string
	BirthDate   PatchDate
	Description *string
	ImageRef    *string
}

// UpdateProfile valida y aplica el patch sobre el estado vigente en el store,
// sin pisar cambios concurrentes de otros campos (p.ej. confined).
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Animal, error) {
	return s.repo.Modify(ctx, strings.TrimSpace(id), func(a *Animal) error {
		var c validate.Checker
		if in.Name != nil {
			c.Required("name", *in.Name)
		}
		if in.Gender != nil {
			c.Required("gender", *in.Gender)
			c.OneOf("gender", *in.Gender, genderValues...)
		}
		var birth *clock.Date
		if in.BirthDate.Present {
			birth = c.OptionalDate("birth_date", in.BirthDate.Raw)
		}
		if err := c.Err(); err != nil {
			return err
		}

		if in.Name != nil {
			a.Name = strings.TrimSpace(*in.Name)
		}
		if in.Breed != nil {
			a.Breed = strings.TrimSpace(*in.Breed)
		}
		if in.Color != nil {
			a.Color = strings.TrimSpace(*in.Color)
		}
		if in.Gender != nil {
			a.Gender = Gender(strings.TrimSpace(*in.Gender))
		}
		if in.BirthDate.Present {
			a.BirthDate = birth
		}
		if in.Description != nil {
			a.Description = strings.TrimSpace(*in.Description)
		}
		if in.ImageRef != nil {
			a.ImageRef = strings.TrimSpace(*in.ImageRef)
		}
		a.UpdatedAt = s.now()
		return nil
	})
}

// SetConfinement es idempotente: repetir el mismo valor solo actualiza updated_at.
func (s *Service) SetConfinement(ctx context.Context, id string, confined bool) (Animal, error) {
	return s.repo.SetConfined(ctx, strings.TrimSpace(id), confined, s.now())
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, errs.NotFound("animal", id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Animal, error) {
	return s.repo.List(ctx, filter)
}
