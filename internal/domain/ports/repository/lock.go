package repository

import "context"

// Locker serializes mutating access to the data directory. The bot process
// and the accept-requests task are separate programs sharing the same
// files, so exclusion has to work across processes, not just goroutines.
type Locker interface {
	// WithLock runs fn while holding the exclusive data-directory lock.
	// It returns domain.ErrLocked when the lock cannot be acquired.
	WithLock(ctx context.Context, fn func() error) error
}
