package postgres

import (
	"context"
	"strings"
	"time"

	"shelter-care/internal/domain/animals"
	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/clock"
)

type AnimalsRepo struct {
	db *DB
}

func NewAnimalsRepo(db *DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, owner_id,
	name, breed, color, gender,
	birth_date, description, image_ref, confined,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	_, err := r.db.sql.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.OwnerID,
		a.Name,
		a.Breed,
		a.Color,
		string(a.Gender),
		nullDate(a.BirthDate),
		a.Description,
		a.ImageRef,
		a.Confined,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapErr("create animal", err)
}

// Modify bloquea la fila (SELECT ... FOR UPDATE) durante read-modify-write.
// confined no se escribe: lo maneja SetConfined.
func (r *AnimalsRepo) Modify(ctx context.Context, id string, fn func(a *animals.Animal) error) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, errs.NotFound("animal", id)
	}

	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return animals.Animal{}, mapErr("modify animal", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1 FOR UPDATE`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, mapErr("modify animal", notFoundIfNoRows(err, "animal", id))
	}
	if err := fn(&a); err != nil {
		return animals.Animal{}, err
	}

	row = tx.QueryRowContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			breed = $3,
			color = $4,
			gender = $5,
			birth_date = $6,
			description = $7,
			image_ref = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING `+animalColumns,
		id,
		a.Name,
		a.Breed,
		a.Color,
		string(a.Gender),
		nullDate(a.BirthDate),
		a.Description,
		a.ImageRef,
		a.UpdatedAt,
	)
	if a, err = scanAnimal(row); err != nil {
		return animals.Animal{}, mapErr("modify animal", err)
	}
	if err := tx.Commit(); err != nil {
		return animals.Animal{}, mapErr("modify animal", err)
	}
	return a, nil
}

func (r *AnimalsRepo) SetConfined(ctx context.Context, id string, confined bool, at time.Time) (animals.Animal, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, `
		UPDATE animals SET confined = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+animalColumns,
		strings.TrimSpace(id), confined, at,
	)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, mapErr("set confined", notFoundIfNoRows(err, "animal", id))
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, errs.NotFound("animal", id)
	}

	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, mapErr("get animal", notFoundIfNoRows(err, "animal", id))
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	q := `SELECT ` + animalColumns + ` FROM animals`
	var args []any
	if filter.Confined != nil {
		q += ` WHERE confined = $1`
		args = append(args, *filter.Confined)
	}
	q += ` ORDER BY created_at ASC, seq ASC`

	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list animals", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, mapErr("list animals", err)
		}
		out = append(out, a)
	}
	return out, mapErr("list animals", rows.Err())
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a      animals.Animal
		gender string
		bd     clock.Date
	)
	if err := s.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Breed,
		&a.Color,
		&gender,
		&bd,
		&a.Description,
		&a.ImageRef,
		&a.Confined,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	a.Gender = animals.Gender(gender)
	a.BirthDate = datePtr(bd)
	return a, nil
}

// DATE nullable: nil -> NULL
func nullDate(d *clock.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return *d
}

func datePtr(d clock.Date) *clock.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}
