package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNoRoom           = errors.New("user is not assigned to a room")
	ErrInvalidRoom      = errors.New("invalid room number")
	ErrRoomRequested    = errors.New("room already has a pending registration request")
	ErrAlreadyCompleted = errors.New("chore already marked as completed")
	ErrFreeWeek         = errors.New("no chore assigned this week")
	ErrLocked           = errors.New("data directory is locked by another process")
	ErrUnauthorized     = errors.New("not authorized")
)
