package filestore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.Locker = (*DirLocker)(nil)

const (
	lockRetries    = 5
	lockRetryDelay = 50 * time.Millisecond
)

// DirLocker implements cross-process mutual exclusion over the data
// directory with an O_EXCL lock file. The bot and the accept-requests task
// are separate processes, so an in-memory mutex is not enough. A lock older
// than staleAfter is treated as left over from a crashed process and taken
// over.
type DirLocker struct {
	store      *Store
	staleAfter time.Duration
}

func NewDirLocker(store *Store, staleAfter time.Duration) *DirLocker {
	if staleAfter <= 0 {
		staleAfter = 5 * time.Minute
	}
	return &DirLocker{store: store, staleAfter: staleAfter}
}

// WithLock acquires the lock, runs fn and releases the lock. Acquisition is
// retried a few times before giving up with domain.ErrLocked.
func (l *DirLocker) WithLock(ctx context.Context, fn func() error) error {
	token, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer l.release(token)
	return fn()
}

func (l *DirLocker) acquire(ctx context.Context) (string, error) {
	token := uuid.NewString()
	content := fmt.Sprintf("%d %s %s", os.Getpid(), token, time.Now().Format(time.RFC3339))
	path := l.store.path(lockFile)

	for i := 0; i < lockRetries; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_, werr := f.WriteString(content)
			if cerr := f.Close(); werr == nil && cerr == nil {
				return token, nil
			}
			os.Remove(path)
			return "", fmt.Errorf("write lock file: %w", werr)
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("create lock file: %w", err)
		}
		if l.takeOverIfStale(path) {
			continue
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return "", domain.ErrLocked
}

// takeOverIfStale removes a lock file whose mtime is older than staleAfter.
// Only the exact lock that was judged stale is deleted: the content is
// re-read right before the remove, and a lock rewritten in between belongs
// to a live contender and is left alone.
func (l *DirLocker) takeOverIfStale(path string) bool {
	stale, err := os.ReadFile(path)
	if err != nil {
		return true // lock vanished, try again immediately
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	if time.Since(info.ModTime()) < l.staleAfter {
		return false
	}
	cur, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	if !bytes.Equal(cur, stale) {
		return false
	}
	return os.Remove(path) == nil
}

// release removes the lock only if it still carries our token, so a stale
// takeover by another process is never undone.
func (l *DirLocker) release(token string) {
	path := l.store.path(lockFile)
	b, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(b), token) {
		return
	}
	_ = os.Remove(path)
}
