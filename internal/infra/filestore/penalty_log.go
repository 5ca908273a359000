package filestore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.PenaltyLog = (*PenaltyLog)(nil)

// PenaltyLog appends incomplete-chore rows to penalty_log.csv, writing the
// header when the file is created.
type PenaltyLog struct {
	store *Store
}

func NewPenaltyLog(store *Store) *PenaltyLog {
	return &PenaltyLog{store: store}
}

func (p *PenaltyLog) Append(ctx context.Context, day time.Time, entries []model.ChoreStatus) error {
	if len(entries) == 0 {
		return nil
	}
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	path := p.store.path(penaltyLogFile)
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", penaltyLogFile, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write([]string{"Date", "Room", "Chore", "DueDay"}); err != nil {
			return fmt.Errorf("write %s header: %w", penaltyLogFile, err)
		}
	}
	date := day.Format("2006-01-02")
	for _, e := range entries {
		row := []string{date, strconv.Itoa(e.Room), e.Chore.Type.String(), e.Chore.Due.String()}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", penaltyLogFile, err)
		}
	}
	w.Flush()
	return w.Error()
}
