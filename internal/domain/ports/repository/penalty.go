package repository

import (
	"context"
	"time"

	"wohnheimsbot/internal/domain/model"
)

// PenaltyLog records chores that were still open when the week rotated.
type PenaltyLog interface {
	// Append adds one row per entry, dated with day. The log is
	// append-only; rows are never rewritten.
	Append(ctx context.Context, day time.Time, entries []model.ChoreStatus) error
}
