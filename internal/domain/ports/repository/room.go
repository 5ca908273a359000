package repository

import "context"

// RoomRepository maps Telegram user IDs to room numbers.
type RoomRepository interface {
	// Assignments returns the userID -> room map; empty when nothing is stored.
	Assignments(ctx context.Context) (map[string]int, error)
	// ByRoom returns the reversed room -> userID view.
	ByRoom(ctx context.Context) (map[int]string, error)
	// RoomOf returns domain.ErrNoRoom when the user has no assignment.
	RoomOf(ctx context.Context, userID string) (int, error)
	Assign(ctx context.Context, userID string, room int) error
	// Remove deletes the user's assignment and returns the vacated room,
	// or domain.ErrNoRoom.
	Remove(ctx context.Context, userID string) (int, error)
}
