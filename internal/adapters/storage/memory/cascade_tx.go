package memory

import (
	"context"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/domain/medication"
)

// cascadeTx opera sobre el borrador de Store.update; nada se publica hasta el swap.
type cascadeTx struct {
	st *state
}

func (tx *cascadeTx) AnimalExists(ctx context.Context, animalID string) (bool, error) {
	_, ok := tx.st.animals[animalID]
	return ok, nil
}

func (tx *cascadeTx) DeleteDosesForAnimal(ctx context.Context, animalID string) (int, error) {
	return tx.st.deleteDosesWhere(func(d medication.Dose) bool {
		owner, ok := tx.st.doseAnimal(d)
		return ok && owner == animalID
	}), nil
}

func (tx *cascadeTx) DeleteVisitsForAnimal(ctx context.Context, animalID string) (int, error) {
	n := 0
	for id, v := range tx.st.visits {
		if v.AnimalID == animalID {
			delete(tx.st.visits, id)
			tx.st.forget(id)
			n++
		}
	}
	return n, nil
}

func (tx *cascadeTx) DeleteObservationsForAnimal(ctx context.Context, animalID string) (int, error) {
	n := 0
	for id, o := range tx.st.observations {
		if o.AnimalID == animalID {
			delete(tx.st.observations, id)
			tx.st.forget(id)
			n++
		}
	}
	return n, nil
}

func (tx *cascadeTx) DeleteSchedulesForAnimal(ctx context.Context, animalID string) (int, error) {
	n := 0
	for id, sc := range tx.st.schedules {
		if sc.AnimalID == animalID {
			delete(tx.st.schedules, id)
			tx.st.forget(id)
			n++
		}
	}
	return n, nil
}

func (tx *cascadeTx) DeleteAnimal(ctx context.Context, animalID string) error {
	if _, ok := tx.st.animals[animalID]; !ok {
		return errs.NotFound("animal", animalID)
	}
	delete(tx.st.animals, animalID)
	tx.st.forget(animalID)
	return nil
}
