package model

import (
	"time"

	"github.com/google/uuid"

	"wohnheimsbot/internal/domain"
)

// RegistrationRequest is a pending move-in that an admin still has to
// accept via the accept-requests task.
type RegistrationRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Room        int       `json:"room"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewRegistrationRequest validates the room number and stamps the request.
func NewRegistrationRequest(userID string, room int) (*RegistrationRequest, error) {
	if !ValidRoom(room) {
		return nil, domain.ErrInvalidRoom
	}
	return &RegistrationRequest{
		ID:          uuid.NewString(),
		UserID:      userID,
		Room:        room,
		RequestedAt: time.Now(),
	}, nil
}
