package filestore

import (
	"context"
	"errors"
	"os"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo persists role assignments as roles.json. The ADMIN_USER_ID
// environment variable always counts as an admin, even with no file.
type RoleRepo struct {
	store *Store
}

func NewRoleRepo(store *Store) *RoleRepo {
	return &RoleRepo{store: store}
}

func (r *RoleRepo) RoleOf(ctx context.Context, userID string) (model.Role, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roles, err := r.load()
	if err != nil {
		return 0, false, err
	}
	v, ok := roles[userID]
	if !ok {
		return 0, false, nil
	}
	return model.Role(v), true, nil
}

func (r *RoleRepo) Set(ctx context.Context, userID string, role model.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roles, err := r.load()
	if err != nil {
		return err
	}
	roles[userID] = int(role)
	return r.store.writeJSON(rolesFile, roles)
}

func (r *RoleRepo) Unset(ctx context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roles, err := r.load()
	if err != nil {
		return err
	}
	delete(roles, userID)
	return r.store.writeJSON(rolesFile, roles)
}

func (r *RoleRepo) load() (map[string]int, error) {
	roles := make(map[string]int)
	if err := r.store.readJSON(rolesFile, &roles); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if admin := os.Getenv("ADMIN_USER_ID"); admin != "" {
		roles[admin] = int(model.RoleAdmin)
	}
	return roles, nil
}
