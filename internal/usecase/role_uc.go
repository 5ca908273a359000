package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

// Compile-time check
var _ RoleUseCase = (*roleUC)(nil)

// RoleUseCase answers privilege questions for command handling and the
// group-chat censor.
type RoleUseCase interface {
	// IsPrivileged reports whether the user holds an admin or Sprecher role.
	IsPrivileged(ctx context.Context, userID string) (bool, error)
	// RequirePrivileged returns domain.ErrUnauthorized for regular users.
	RequirePrivileged(ctx context.Context, userID string) error
	Set(ctx context.Context, userID string, role model.Role) error
}

type roleUC struct {
	roles  repository.RoleRepository
	locker repository.Locker
	log    *zerolog.Logger
}

func NewRoleUseCase(roles repository.RoleRepository, locker repository.Locker, logger *zerolog.Logger) *roleUC {
	return &roleUC{roles: roles, locker: locker, log: logger}
}

func (u *roleUC) IsPrivileged(ctx context.Context, userID string) (bool, error) {
	role, ok, err := u.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}
	return ok && role.Privileged(), nil
}

func (u *roleUC) RequirePrivileged(ctx context.Context, userID string) error {
	ok, err := u.IsPrivileged(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (u *roleUC) Set(ctx context.Context, userID string, role model.Role) error {
	err := u.locker.WithLock(ctx, func() error {
		return u.roles.Set(ctx, userID, role)
	})
	if err == nil {
		u.log.Info().Str("user_id", userID).Stringer("role", role).Msg("role assigned")
	}
	return err
}
