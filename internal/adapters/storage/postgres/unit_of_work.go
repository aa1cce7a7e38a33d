package postgres

import (
	"context"
	"database/sql"

	"shelter-care/internal/domain/cascade"
	"shelter-care/internal/domain/errs"
)

// Within implementa cascade.UnitOfWork con aislamiento SERIALIZABLE.
// Conflictos de serialización / deadlocks salen como errs.ErrTransactionFailed.
func (d *DB) Within(ctx context.Context, fn func(ctx context.Context, tx cascade.Tx) error) error {
	ctx, cancel := d.bound(ctx)
	defer cancel()

	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return mapErr("begin", err)
	}

	if err := fn(ctx, &cascadeTx{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return &errs.TxError{Op: "commit", Step: "commit", Err: mapErr("commit", err)}
	}
	return nil
}

type cascadeTx struct {
	q querier
}

func (t *cascadeTx) AnimalExists(ctx context.Context, animalID string) (bool, error) {
	var ok bool
	err := t.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM animals WHERE id = $1)`, animalID).Scan(&ok)
	return ok, mapErr("animal exists", err)
}

func (t *cascadeTx) DeleteDosesForAnimal(ctx context.Context, animalID string) (int, error) {
	return t.exec(ctx, "delete doses", `
		DELETE FROM doses
		WHERE visit_id IN (SELECT id FROM visits WHERE animal_id = $1)
		   OR schedule_id IN (SELECT id FROM medication_schedules WHERE animal_id = $1)
	`, animalID)
}

func (t *cascadeTx) DeleteVisitsForAnimal(ctx context.Context, animalID string) (int, error) {
	return t.exec(ctx, "delete visits", `DELETE FROM visits WHERE animal_id = $1`, animalID)
}

func (t *cascadeTx) DeleteObservationsForAnimal(ctx context.Context, animalID string) (int, error) {
	return t.exec(ctx, "delete observations", `DELETE FROM health_observations WHERE animal_id = $1`, animalID)
}

func (t *cascadeTx) DeleteSchedulesForAnimal(ctx context.Context, animalID string) (int, error) {
	return t.exec(ctx, "delete schedules", `DELETE FROM medication_schedules WHERE animal_id = $1`, animalID)
}

func (t *cascadeTx) DeleteAnimal(ctx context.Context, animalID string) error {
	n, err := t.exec(ctx, "delete animal", `DELETE FROM animals WHERE id = $1`, animalID)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound("animal", animalID)
	}
	return nil
}

func (t *cascadeTx) exec(ctx context.Context, op, q string, args ...any) (int, error) {
	res, err := t.q.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, mapErr(op, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
