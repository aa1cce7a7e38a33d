package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/visits"
	"shelter-care/internal/platform/clock"
)

type VisitsRepo struct {
	db *DB
}

func NewVisitsRepo(db *DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

const visitColumns = `
	id, animal_id,
	title, description, diagnosis, treatment, medication, veterinarian,
	visit_date, next_visit, cost, notes,
	created_at, seq`

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO visits (
			id, animal_id,
			title, description, diagnosis, treatment, medication, veterinarian,
			visit_date, next_visit, cost, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING seq
	`,
		v.ID,
		v.AnimalID,
		v.Title,
		v.Description,
		v.Diagnosis,
		v.Treatment,
		v.Medication,
		v.Veterinarian,
		v.VisitDate,
		nullDate(v.NextVisit),
		toNullFloat(v.Cost),
		v.Notes,
		v.CreatedAt,
	).Scan(&v.Seq)
	if err != nil {
		return visits.Visit{}, mapErr("create visit", err)
	}
	return v, nil
}

func (r *VisitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	id = strings.TrimSpace(id)
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, `SELECT `+visitColumns+` FROM visits WHERE id = $1`, id)
	v, err := scanVisit(row)
	if err != nil {
		return visits.Visit{}, mapErr("get visit", notFoundIfNoRows(err, "visit", id))
	}
	return v, nil
}

func (r *VisitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE animal_id = $1
		ORDER BY visit_date DESC, created_at DESC, seq DESC
	`, animalID)
	if err != nil {
		return nil, mapErr("list visits", err)
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, mapErr("list visits", err)
		}
		out = append(out, v)
	}
	return out, mapErr("list visits", rows.Err())
}

func (r *VisitsRepo) Latest(ctx context.Context, animalID string) (visits.Visit, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE animal_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT 1
	`, animalID)
	v, err := scanVisit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return visits.Visit{}, errs.ErrNotFound
	}
	if err != nil {
		return visits.Visit{}, mapErr("latest visit", err)
	}
	return v, nil
}

func scanVisit(s scanner) (visits.Visit, error) {
	var (
		v    visits.Visit
		next clock.Date
		cost sql.NullFloat64
	)
	if err := s.Scan(
		&v.ID,
		&v.AnimalID,
		&v.Title,
		&v.Description,
		&v.Diagnosis,
		&v.Treatment,
		&v.Medication,
		&v.Veterinarian,
		&v.VisitDate,
		&next,
		&cost,
		&v.Notes,
		&v.CreatedAt,
		&v.Seq,
	); err != nil {
		return visits.Visit{}, err
	}
	v.NextVisit = datePtr(next)
	if cost.Valid {
		c := cost.Float64
		v.Cost = &c
	}
	return v, nil
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
