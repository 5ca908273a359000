package repository

import (
	"context"

	"wohnheimsbot/internal/domain/model"
)

// RoleRepository stores which users hold house-level roles.
type RoleRepository interface {
	// RoleOf returns the user's role and whether one is assigned.
	RoleOf(ctx context.Context, userID string) (model.Role, bool, error)
	Set(ctx context.Context, userID string, role model.Role) error
	// Unset removes a user's role entry.
	Unset(ctx context.Context, userID string) error
}
