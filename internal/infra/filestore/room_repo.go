package filestore

import (
	"context"
	"errors"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo persists the userID -> room map as room_assignments.json.
type RoomRepo struct {
	store *Store
}

func NewRoomRepo(store *Store) *RoomRepo {
	return &RoomRepo{store: store}
}

func (r *RoomRepo) Assignments(ctx context.Context) (map[string]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *RoomRepo) ByRoom(ctx context.Context) (map[int]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments, err := r.load()
	if err != nil {
		return nil, err
	}
	byRoom := make(map[int]string, len(assignments))
	for userID, room := range assignments {
		byRoom[room] = userID
	}
	return byRoom, nil
}

func (r *RoomRepo) RoomOf(ctx context.Context, userID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments, err := r.load()
	if err != nil {
		return 0, err
	}
	room, ok := assignments[userID]
	if !ok {
		return 0, domain.ErrNoRoom
	}
	return room, nil
}

func (r *RoomRepo) Assign(ctx context.Context, userID string, room int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments, err := r.load()
	if err != nil {
		return err
	}
	assignments[userID] = room
	return r.store.writeJSON(roomAssignmentsFile, assignments)
}

func (r *RoomRepo) Remove(ctx context.Context, userID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments, err := r.load()
	if err != nil {
		return 0, err
	}
	room, ok := assignments[userID]
	if !ok {
		return 0, domain.ErrNoRoom
	}
	delete(assignments, userID)
	if err := r.store.writeJSON(roomAssignmentsFile, assignments); err != nil {
		return 0, err
	}
	return room, nil
}

// load treats a missing assignments file as an empty map, matching the
// behavior on a freshly provisioned data directory.
func (r *RoomRepo) load() (map[string]int, error) {
	assignments := make(map[string]int)
	if err := r.store.readJSON(roomAssignmentsFile, &assignments); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return assignments, nil
		}
		return nil, err
	}
	return assignments, nil
}
