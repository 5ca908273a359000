package filestore

import (
	"context"
	"errors"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo persists pending move-in requests as
// registration_requests.json. The accept-requests task removes the file
// once the queue is drained.
type RegistrationRepo struct {
	store *Store
}

func NewRegistrationRepo(store *Store) *RegistrationRepo {
	return &RegistrationRepo{store: store}
}

func (r *RegistrationRepo) List(ctx context.Context) ([]model.RegistrationRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *RegistrationRepo) Add(ctx context.Context, req *model.RegistrationRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	requests, err := r.load()
	if err != nil {
		return err
	}
	// One pending request per user: a re-request replaces the earlier one.
	kept := make([]model.RegistrationRequest, 0, len(requests)+1)
	for _, pending := range requests {
		if pending.UserID == req.UserID {
			continue
		}
		if pending.Room == req.Room {
			return domain.ErrRoomRequested
		}
		kept = append(kept, pending)
	}
	kept = append(kept, *req)
	return r.store.writeJSON(registrationRequestsFile, kept)
}

func (r *RegistrationRepo) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.remove(registrationRequestsFile)
}

func (r *RegistrationRepo) load() ([]model.RegistrationRequest, error) {
	var requests []model.RegistrationRequest
	if err := r.store.readJSON(registrationRequestsFile, &requests); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return requests, nil
}
