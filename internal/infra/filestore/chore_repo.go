package filestore

import (
	"context"

	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.ChoreRepository = (*ChoreRepo)(nil)

// ChoreRepo persists the week plan as chore_data.json.
type ChoreRepo struct {
	store *Store
}

func NewChoreRepo(store *Store) *ChoreRepo {
	return &ChoreRepo{store: store}
}

func (r *ChoreRepo) Load(ctx context.Context) (*model.WeekPlan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var plan model.WeekPlan
	if err := r.store.readJSON(choreDataFile, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *ChoreRepo) Save(ctx context.Context, plan *model.WeekPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeJSON(choreDataFile, plan)
}
