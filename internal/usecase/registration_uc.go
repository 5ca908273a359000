package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain/ports/repository"
)

// Compile-time check
var _ RegistrationUseCase = (*registrationUC)(nil)

// RegistrationUseCase drains pending move-in requests into the room
// assignments. It is the core of the accept-requests maintenance task.
type RegistrationUseCase interface {
	// AcceptAll assigns every pending request and clears the queue.
	// Returns the number of accepted requests; an empty queue is a no-op.
	AcceptAll(ctx context.Context) (int, error)
}

type registrationUC struct {
	requests repository.RegistrationRepository
	rooms    repository.RoomRepository
	locker   repository.Locker
	log      *zerolog.Logger
}

func NewRegistrationUseCase(
	requests repository.RegistrationRepository,
	rooms repository.RoomRepository,
	locker repository.Locker,
	logger *zerolog.Logger,
) *registrationUC {
	return &registrationUC{requests: requests, rooms: rooms, locker: locker, log: logger}
}

func (u *registrationUC) AcceptAll(ctx context.Context) (int, error) {
	accepted := 0
	err := u.locker.WithLock(ctx, func() error {
		pending, err := u.requests.List(ctx)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		for _, req := range pending {
			if err := u.rooms.Assign(ctx, req.UserID, req.Room); err != nil {
				return fmt.Errorf("assign user %s to room %d: %w", req.UserID, req.Room, err)
			}
			u.log.Info().Str("user_id", req.UserID).Int("room", req.Room).
				Str("request_id", req.ID).Msg("accepted registration request")
			accepted++
		}
		return u.requests.Clear(ctx)
	})
	if err != nil {
		return accepted, err
	}
	return accepted, nil
}
