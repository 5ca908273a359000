//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/model"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// --- ChoreRepository mock ---

type MockChoreRepo struct {
	plan     *model.WeekPlan
	LoadFunc func(ctx context.Context) (*model.WeekPlan, error)
	SaveFunc func(ctx context.Context, plan *model.WeekPlan) error
}

func NewMockChoreRepo() *MockChoreRepo { return &MockChoreRepo{} }

func (m *MockChoreRepo) Load(ctx context.Context) (*model.WeekPlan, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	if m.plan == nil {
		return nil, domain.ErrNotFound
	}
	return m.plan, nil
}

func (m *MockChoreRepo) Save(ctx context.Context, plan *model.WeekPlan) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, plan)
	}
	m.plan = plan
	return nil
}

// --- RoomRepository mock ---

type MockRoomRepo struct {
	assignments map[string]int
	AssignFunc  func(ctx context.Context, userID string, room int) error
}

func NewMockRoomRepo() *MockRoomRepo {
	return &MockRoomRepo{assignments: make(map[string]int)}
}

func (m *MockRoomRepo) Assignments(ctx context.Context) (map[string]int, error) {
	return m.assignments, nil
}

func (m *MockRoomRepo) ByRoom(ctx context.Context) (map[int]string, error) {
	byRoom := make(map[int]string, len(m.assignments))
	for u, r := range m.assignments {
		byRoom[r] = u
	}
	return byRoom, nil
}

func (m *MockRoomRepo) RoomOf(ctx context.Context, userID string) (int, error) {
	room, ok := m.assignments[userID]
	if !ok {
		return 0, domain.ErrNoRoom
	}
	return room, nil
}

func (m *MockRoomRepo) Assign(ctx context.Context, userID string, room int) error {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, userID, room)
	}
	m.assignments[userID] = room
	return nil
}

func (m *MockRoomRepo) Remove(ctx context.Context, userID string) (int, error) {
	room, ok := m.assignments[userID]
	if !ok {
		return 0, domain.ErrNoRoom
	}
	delete(m.assignments, userID)
	return room, nil
}

// --- RegistrationRepository mock ---

type MockRegistrationRepo struct {
	requests []model.RegistrationRequest
	cleared  bool
	AddFunc  func(ctx context.Context, req *model.RegistrationRequest) error
	ListFunc func(ctx context.Context) ([]model.RegistrationRequest, error)
}

func NewMockRegistrationRepo() *MockRegistrationRepo { return &MockRegistrationRepo{} }

func (m *MockRegistrationRepo) List(ctx context.Context) ([]model.RegistrationRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.requests, nil
}

func (m *MockRegistrationRepo) Add(ctx context.Context, req *model.RegistrationRequest) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, req)
	}
	kept := m.requests[:0]
	for _, pending := range m.requests {
		if pending.UserID == req.UserID {
			continue
		}
		if pending.Room == req.Room {
			return domain.ErrRoomRequested
		}
		kept = append(kept, pending)
	}
	m.requests = append(kept, *req)
	return nil
}

func (m *MockRegistrationRepo) Clear(ctx context.Context) error {
	m.requests = nil
	m.cleared = true
	return nil
}

// --- RoleRepository mock ---

type MockRoleRepo struct {
	roles map[string]model.Role
}

func NewMockRoleRepo() *MockRoleRepo {
	return &MockRoleRepo{roles: make(map[string]model.Role)}
}

func (m *MockRoleRepo) RoleOf(ctx context.Context, userID string) (model.Role, bool, error) {
	role, ok := m.roles[userID]
	return role, ok, nil
}

func (m *MockRoleRepo) Set(ctx context.Context, userID string, role model.Role) error {
	m.roles[userID] = role
	return nil
}

func (m *MockRoleRepo) Unset(ctx context.Context, userID string) error {
	delete(m.roles, userID)
	return nil
}

// --- ShoppingRepository mock ---

type MockShoppingRepo struct {
	items []string
}

func NewMockShoppingRepo() *MockShoppingRepo { return &MockShoppingRepo{} }

func (m *MockShoppingRepo) List(ctx context.Context) ([]string, error) { return m.items, nil }
func (m *MockShoppingRepo) Add(ctx context.Context, item string) error {
	m.items = append(m.items, item)
	return nil
}
func (m *MockShoppingRepo) Clear(ctx context.Context) error {
	m.items = nil
	return nil
}

// --- PenaltyLog mock ---

type MockPenaltyLog struct {
	entries    []model.ChoreStatus
	AppendFunc func(ctx context.Context, day time.Time, entries []model.ChoreStatus) error
}

func NewMockPenaltyLog() *MockPenaltyLog { return &MockPenaltyLog{} }

func (m *MockPenaltyLog) Append(ctx context.Context, day time.Time, entries []model.ChoreStatus) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, day, entries)
	}
	m.entries = append(m.entries, entries...)
	return nil
}

// --- Locker mock ---

type MockLocker struct {
	held  int
	Fail  bool
	calls int
}

func NewMockLocker() *MockLocker { return &MockLocker{} }

func (m *MockLocker) WithLock(ctx context.Context, fn func() error) error {
	if m.Fail {
		return domain.ErrLocked
	}
	m.calls++
	m.held++
	defer func() { m.held-- }()
	if m.held > 1 {
		return errors.New("nested lock acquisition")
	}
	return fn()
}
