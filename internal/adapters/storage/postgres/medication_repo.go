package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/medication"
	"shelter-care/internal/platform/clock"
)

type MedicationRepo struct {
	db *DB
}

func NewMedicationRepo(db *DB) *MedicationRepo {
	return &MedicationRepo{db: db}
}

const doseColumns = `
	d.id, d.visit_id, d.schedule_id,
	d.date, d.volunteer,
	d.morning, d.afternoon, d.evening, d.night,
	d.notes, d.recorded_at`

func (r *MedicationRepo) CreateDose(ctx context.Context, d medication.Dose) error {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	var visitID, scheduleID sql.NullString
	if id, ok := d.Owner.VisitID(); ok {
		visitID = sql.NullString{String: id, Valid: true}
	}
	if id, ok := d.Owner.ScheduleID(); ok {
		scheduleID = sql.NullString{String: id, Valid: true}
	}

	// la FK convierte "dueño borrado" en NotFound (ver mapErr)
	_, err := r.db.sql.ExecContext(ctx, `
		INSERT INTO doses (
			id, visit_id, schedule_id,
			date, volunteer,
			morning, afternoon, evening, night,
			notes, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		d.ID,
		visitID,
		scheduleID,
		d.Date,
		d.Volunteer,
		d.Slots.Morning,
		d.Slots.Afternoon,
		d.Slots.Evening,
		d.Slots.Night,
		d.Notes,
		d.RecordedAt,
	)
	return mapErr("create dose", err)
}

func (r *MedicationRepo) ListDoses(ctx context.Context, owner medication.DoseOwner) ([]medication.Dose, error) {
	col := "visit_id"
	if owner.Kind() == medication.OwnerSchedule {
		col = "schedule_id"
	}
	q := fmt.Sprintf(`
		SELECT %s
		FROM doses d
		WHERE d.%s = $1
		ORDER BY d.date DESC, d.recorded_at DESC, d.seq DESC
	`, doseColumns, col)
	return r.queryDoses(ctx, "list doses", q, owner.ID())
}

func (r *MedicationRepo) DosesForAnimalOn(ctx context.Context, animalID string, day clock.Date) ([]medication.Dose, error) {
	return r.queryDoses(ctx, "doses for animal", dosesForAnimalOnQuery, animalID, day)
}

func (r *MedicationRepo) queryDoses(ctx context.Context, op, q string, args ...any) ([]medication.Dose, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()
	return scanDoses(ctx, r.db.sql, op, q, args...)
}

const dosesForAnimalOnQuery = `
	SELECT ` + doseColumns + `
	FROM doses d
	LEFT JOIN visits v ON v.id = d.visit_id
	LEFT JOIN medication_schedules s ON s.id = d.schedule_id
	WHERE d.date = $2
	  AND (v.animal_id = $1 OR s.animal_id = $1)
	ORDER BY d.recorded_at DESC, d.seq DESC`

// DayRecord lee en una transacción REPEATABLE READ de solo lectura:
// un borrado en cascada no puede quedar a medias entre las tres consultas.
func (r *MedicationRepo) DayRecord(ctx context.Context, animalID string, day clock.Date) (medication.DayRecord, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	tx, err := r.db.sql.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return medication.DayRecord{}, mapErr("day record", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists, hasSchedules bool
	err = tx.QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM animals WHERE id = $1),
			EXISTS (SELECT 1 FROM medication_schedules WHERE animal_id = $1)
	`, animalID).Scan(&exists, &hasSchedules)
	if err != nil {
		return medication.DayRecord{}, mapErr("day record", err)
	}
	if !exists {
		return medication.DayRecord{}, errs.NotFound("animal", animalID)
	}

	doses, err := scanDoses(ctx, tx, "day record doses", dosesForAnimalOnQuery, animalID, day)
	if err != nil {
		return medication.DayRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return medication.DayRecord{}, mapErr("day record", err)
	}
	return medication.DayRecord{HasSchedules: hasSchedules, Doses: doses}, nil
}

func scanDoses(ctx context.Context, q querier, op, query string, args ...any) ([]medication.Dose, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr(op, err)
	}
	defer rows.Close()

	out := make([]medication.Dose, 0)
	for rows.Next() {
		var (
			d                   medication.Dose
			visitID, scheduleID sql.NullString
		)
		if err := rows.Scan(
			&d.ID,
			&visitID,
			&scheduleID,
			&d.Date,
			&d.Volunteer,
			&d.Slots.Morning,
			&d.Slots.Afternoon,
			&d.Slots.Evening,
			&d.Slots.Night,
			&d.Notes,
			&d.RecordedAt,
		); err != nil {
			return nil, mapErr(op, err)
		}
		if visitID.Valid {
			d.Owner = medication.VisitOwned(visitID.String)
		} else {
			d.Owner = medication.ScheduleOwned(scheduleID.String)
		}
		out = append(out, d)
	}
	return out, mapErr(op, rows.Err())
}

const scheduleColumns = `
	id, animal_id,
	medication_name, dosage, frequency,
	morning, afternoon, evening, night,
	start_date, end_date, notes,
	created_at`

func (r *MedicationRepo) CreateSchedule(ctx context.Context, sc medication.Schedule) error {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	_, err := r.db.sql.ExecContext(ctx, `
		INSERT INTO medication_schedules (`+scheduleColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		sc.ID,
		sc.AnimalID,
		sc.MedicationName,
		sc.Dosage,
		sc.Frequency,
		sc.Slots.Morning,
		sc.Slots.Afternoon,
		sc.Slots.Evening,
		sc.Slots.Night,
		sc.StartDate,
		sc.EndDate,
		sc.Notes,
		sc.CreatedAt,
	)
	return mapErr("create schedule", err)
}

func (r *MedicationRepo) GetSchedule(ctx context.Context, id string) (medication.Schedule, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	row := r.db.sql.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM medication_schedules WHERE id = $1`, id)
	sc, err := scanSchedule(row)
	if err != nil {
		return medication.Schedule{}, mapErr("get schedule", notFoundIfNoRows(err, "schedule", id))
	}
	return sc, nil
}

func (r *MedicationRepo) ListSchedules(ctx context.Context, filter medication.ScheduleFilter) ([]medication.Schedule, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	q := `SELECT ` + scheduleColumns + ` FROM medication_schedules`
	var args []any
	if filter.AnimalID != "" {
		q += ` WHERE animal_id = $1`
		args = append(args, filter.AnimalID)
	}
	q += ` ORDER BY created_at DESC, seq DESC`

	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list schedules", err)
	}
	defer rows.Close()

	out := make([]medication.Schedule, 0)
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, mapErr("list schedules", err)
		}
		out = append(out, sc)
	}
	return out, mapErr("list schedules", rows.Err())
}

// DeleteSchedule borra dosis + agenda en una transacción.
func (r *MedicationRepo) DeleteSchedule(ctx context.Context, id string) (int, error) {
	ctx, cancel := r.db.bound(ctx)
	defer cancel()

	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, mapErr("delete schedule", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM doses WHERE schedule_id = $1`, id)
	if err != nil {
		return 0, mapErr("delete schedule doses", err)
	}
	removed, _ := res.RowsAffected()

	res, err = tx.ExecContext(ctx, `DELETE FROM medication_schedules WHERE id = $1`, id)
	if err != nil {
		return 0, mapErr("delete schedule", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, errs.NotFound("schedule", id)
	}

	if err := tx.Commit(); err != nil {
		return 0, &errs.TxError{Op: "delete schedule", Step: "commit", Err: err}
	}
	return int(removed), nil
}

func scanSchedule(s scanner) (medication.Schedule, error) {
	var sc medication.Schedule
	if err := s.Scan(
		&sc.ID,
		&sc.AnimalID,
		&sc.MedicationName,
		&sc.Dosage,
		&sc.Frequency,
		&sc.Slots.Morning,
		&sc.Slots.Afternoon,
		&sc.Slots.Evening,
		&sc.Slots.Night,
		&sc.StartDate,
		&sc.EndDate,
		&sc.Notes,
		&sc.CreatedAt,
	); err != nil {
		return medication.Schedule{}, err
	}
	return sc, nil
}
