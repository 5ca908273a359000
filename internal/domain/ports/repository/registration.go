package repository

import (
	"context"

	"wohnheimsbot/internal/domain/model"
)

// RegistrationRepository holds pending move-in requests until the
// accept-requests task drains them.
type RegistrationRepository interface {
	// List returns pending requests; an empty slice when none are stored.
	List(ctx context.Context) ([]model.RegistrationRequest, error)
	// Add rejects a request with domain.ErrRoomRequested when another
	// pending request already claims the same room.
	Add(ctx context.Context, req *model.RegistrationRequest) error
	// Clear removes the whole queue, including the backing file.
	Clear(ctx context.Context) error
}
