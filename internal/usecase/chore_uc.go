package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

// Compile-time check
var _ ChoreUseCase = (*choreUC)(nil)

// ChoreUseCase covers everything around the weekly chore plan.
type ChoreUseCase interface {
	// PlanForWeek returns the stored plan, generating and saving a fresh
	// one when none exists yet.
	PlanForWeek(ctx context.Context, week int) (*model.WeekPlan, error)
	// ChoreOf returns the chore assigned to the user's room this week.
	ChoreOf(ctx context.Context, userID string, week int) (model.ChoreStatus, error)
	// MarkDone marks the user's chore as completed and returns it.
	MarkDone(ctx context.Context, userID string, week int) (model.Chore, error)
	// Rotate closes out the previous week (penalty log, notifications)
	// and installs the plan for the given week.
	Rotate(ctx context.Context, week int) (*RotationResult, error)
}

// RotationResult reports what a weekly rotation did. Notify maps user IDs
// to the chore they failed to complete.
type RotationResult struct {
	Week      int
	Penalties []model.ChoreStatus
	Notify    map[string]model.ChoreStatus
}

type choreUC struct {
	chores    repository.ChoreRepository
	rooms     repository.RoomRepository
	penalties repository.PenaltyLog
	locker    repository.Locker
	log       *zerolog.Logger
	now       func() time.Time
}

func NewChoreUseCase(
	chores repository.ChoreRepository,
	rooms repository.RoomRepository,
	penalties repository.PenaltyLog,
	locker repository.Locker,
	logger *zerolog.Logger,
) *choreUC {
	return &choreUC{
		chores:    chores,
		rooms:     rooms,
		penalties: penalties,
		locker:    locker,
		log:       logger,
		now:       time.Now,
	}
}

func (u *choreUC) PlanForWeek(ctx context.Context, week int) (*model.WeekPlan, error) {
	plan, err := u.chores.Load(ctx)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	err = u.locker.WithLock(ctx, func() error {
		plan, err = u.loadOrGenerate(ctx, week)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// loadOrGenerate returns the stored plan, generating and saving a fresh one
// when none exists. Callers must hold the data-directory lock.
func (u *choreUC) loadOrGenerate(ctx context.Context, week int) (*model.WeekPlan, error) {
	plan, err := u.chores.Load(ctx)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	u.log.Info().Int("week", week).Msg("no chore data found, regenerating plan")
	plan = model.GenerateWeekPlan(week)
	if err := u.chores.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save regenerated plan: %w", err)
	}
	return plan, nil
}

func (u *choreUC) ChoreOf(ctx context.Context, userID string, week int) (model.ChoreStatus, error) {
	room, err := u.rooms.RoomOf(ctx, userID)
	if err != nil {
		return model.ChoreStatus{}, err
	}
	plan, err := u.PlanForWeek(ctx, week)
	if err != nil {
		return model.ChoreStatus{}, err
	}
	status, ok := plan.StatusForRoom(room)
	if !ok || status.Chore.Type == model.Frei {
		return model.ChoreStatus{}, domain.ErrFreeWeek
	}
	return status, nil
}

func (u *choreUC) MarkDone(ctx context.Context, userID string, week int) (model.Chore, error) {
	room, err := u.rooms.RoomOf(ctx, userID)
	if err != nil {
		return model.Chore{}, err
	}

	// Load, check and save as one critical section: concurrent update
	// workers each mark a different room, and a completion written between
	// a stale read and its save would be lost otherwise.
	var chore model.Chore
	err = u.locker.WithLock(ctx, func() error {
		plan, err := u.loadOrGenerate(ctx, week)
		if err != nil {
			return err
		}
		status, ok := plan.StatusForRoom(room)
		if !ok {
			return fmt.Errorf("room %d: %w", room, domain.ErrNotFound)
		}
		if status.Chore.Type == model.Frei {
			return domain.ErrFreeWeek
		}
		if status.Completed {
			return domain.ErrAlreadyCompleted
		}
		chore = status.Chore
		return u.chores.Save(ctx, plan.WithCompleted(room))
	})
	if err != nil {
		return model.Chore{}, err
	}
	u.log.Info().Str("user_id", userID).Int("room", room).Stringer("chore", chore.Type).
		Msg("chore marked as completed")
	return chore, nil
}

func (u *choreUC) Rotate(ctx context.Context, week int) (*RotationResult, error) {
	result := &RotationResult{Week: week, Notify: make(map[string]model.ChoreStatus)}

	err := u.locker.WithLock(ctx, func() error {
		old, err := u.chores.Load(ctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if old != nil {
			result.Penalties = old.Incomplete()
		}

		if len(result.Penalties) > 0 {
			if err := u.penalties.Append(ctx, u.now(), result.Penalties); err != nil {
				return fmt.Errorf("append penalty log: %w", err)
			}
			byRoom, err := u.rooms.ByRoom(ctx)
			if err != nil {
				return err
			}
			for _, p := range result.Penalties {
				if userID, ok := byRoom[p.Room]; ok {
					result.Notify[userID] = p
				}
			}
			u.log.Info().Int("count", len(result.Penalties)).Int("week", week-1).
				Msg("logged penalties for incomplete chores")
		}

		return u.chores.Save(ctx, model.GenerateWeekPlan(week))
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().Int("week", week).Msg("rotated chores")
	return result, nil
}
