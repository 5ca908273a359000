package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

// Compile-time check
var _ RoomUseCase = (*roomUC)(nil)

// RoomUseCase handles moving in and out of rooms. Moving in only files a
// registration request; the assignment happens when the accept-requests
// task approves it.
type RoomUseCase interface {
	// MoveIn files a pending registration request for the room.
	MoveIn(ctx context.Context, userID string, room int) error
	// MoveOut removes the user's assignment and returns the vacated room.
	MoveOut(ctx context.Context, userID string) (int, error)
	RoomOf(ctx context.Context, userID string) (int, error)
}

type roomUC struct {
	rooms    repository.RoomRepository
	requests repository.RegistrationRepository
	locker   repository.Locker
	log      *zerolog.Logger
}

func NewRoomUseCase(
	rooms repository.RoomRepository,
	requests repository.RegistrationRepository,
	locker repository.Locker,
	logger *zerolog.Logger,
) *roomUC {
	return &roomUC{rooms: rooms, requests: requests, locker: locker, log: logger}
}

func (u *roomUC) MoveIn(ctx context.Context, userID string, room int) error {
	req, err := model.NewRegistrationRequest(userID, room)
	if err != nil {
		return err
	}
	if err := u.locker.WithLock(ctx, func() error {
		return u.requests.Add(ctx, req)
	}); err != nil {
		return err
	}
	u.log.Info().Str("user_id", userID).Int("room", room).Str("request_id", req.ID).
		Msg("registration request filed")
	return nil
}

func (u *roomUC) MoveOut(ctx context.Context, userID string) (int, error) {
	var room int
	err := u.locker.WithLock(ctx, func() error {
		var err error
		room, err = u.rooms.Remove(ctx, userID)
		return err
	})
	if err != nil {
		return 0, err
	}
	u.log.Info().Str("user_id", userID).Int("room", room).Msg("user moved out")
	return room, nil
}

func (u *roomUC) RoomOf(ctx context.Context, userID string) (int, error) {
	return u.rooms.RoomOf(ctx, userID)
}
