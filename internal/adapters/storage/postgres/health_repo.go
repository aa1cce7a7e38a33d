package postgres

import (
	"context"
	"fmt"

	"shelter-care/internal/domain/health"
)

type HealthRepo struct {
	db *DB
}

func NewHealthRepo(db *DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Create(ctx context.Context, o health.Observation) error {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	_, err := r.db.sql.ExecContext(ctx, `
		INSERT INTO health_observations (
			id, animal_id,
			date, time_slot,
			appetite, stool, urine, vomiting, cough,
			symptoms, behavior, notes,
			recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		o.ID,
		o.AnimalID,
		o.Date,
		string(o.TimeSlot),
		o.Appetite,
		o.Stool,
		o.Urine,
		o.Vomiting,
		o.Cough,
		o.Symptoms,
		o.Behavior,
		o.Notes,
		o.RecordedAt,
	)
	return mapErr("create observation", err)
}

func (r *HealthRepo) ListByAnimal(ctx context.Context, animalID string, filter health.ListFilter) ([]health.Observation, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	q := `
		SELECT
			id, animal_id,
			date, time_slot,
			appetite, stool, urine, vomiting, cough,
			symptoms, behavior, notes,
			recorded_at
		FROM health_observations
		WHERE animal_id = $1`
	args := []any{animalID}
	if filter.From != nil {
		args = append(args, *filter.From)
		q += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		q += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	q += " ORDER BY recorded_at DESC, seq DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list observations", err)
	}
	defer rows.Close()

	out := make([]health.Observation, 0)
	for rows.Next() {
		var (
			o    health.Observation
			slot string
		)
		if err := rows.Scan(
			&o.ID,
			&o.AnimalID,
			&o.Date,
			&slot,
			&o.Appetite,
			&o.Stool,
			&o.Urine,
			&o.Vomiting,
			&o.Cough,
			&o.Symptoms,
			&o.Behavior,
			&o.Notes,
			&o.RecordedAt,
		); err != nil {
			return nil, mapErr("list observations", err)
		}
		o.TimeSlot = health.TimeSlot(slot)
		out = append(out, o)
	}
	return out, mapErr("list observations", rows.Err())
}
