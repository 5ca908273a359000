package repository

import (
	"context"

	"wohnheimsbot/internal/domain/model"
)

// ChoreRepository persists the current week's plan.
type ChoreRepository interface {
	// Load returns the stored plan or domain.ErrNotFound when none exists.
	Load(ctx context.Context) (*model.WeekPlan, error)
	Save(ctx context.Context, plan *model.WeekPlan) error
}
