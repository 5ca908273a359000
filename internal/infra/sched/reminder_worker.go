package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/domain/ports/repository"
	"wohnheimsbot/internal/infra/i18n"
	"wohnheimsbot/internal/infra/metrics"
	"wohnheimsbot/internal/usecase"
)

// MessageSender delivers a text to a Telegram user. Implemented by the
// telegram adapter; kept narrow so the workers stay testable.
type MessageSender interface {
	SendToUser(ctx context.Context, userID string, text string) error
}

// ReminderWorker fires once a day: on Mondays everyone gets their chore
// for the week, on every day users with an open chore due tomorrow get a
// nudge.
type ReminderWorker struct {
	at     TimeOfDay
	chores usecase.ChoreUseCase
	rooms  repository.RoomRepository
	sender MessageSender
	tr     *i18n.Translator
	log    *zerolog.Logger
	now    func() time.Time
}

func NewReminderWorker(
	at TimeOfDay,
	chores usecase.ChoreUseCase,
	rooms repository.RoomRepository,
	sender MessageSender,
	tr *i18n.Translator,
	logger *zerolog.Logger,
) *ReminderWorker {
	wlog := logger.With().Str("component", "ReminderWorker").Logger()
	return &ReminderWorker{
		at:     at,
		chores: chores,
		rooms:  rooms,
		sender: sender,
		tr:     tr,
		log:    &wlog,
		now:    time.Now,
	}
}

func (w *ReminderWorker) Run(ctx context.Context) error {
	w.log.Info().Int("hour", w.at.Hour).Int("minute", w.at.Minute).Msg("starting reminder worker")
	for {
		next := nextDaily(w.now(), w.at)
		timer := time.NewTimer(next.Sub(w.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.log.Info().Msg("stopping reminder worker")
			return ctx.Err()
		case <-timer.C:
			if sent, err := w.remind(ctx); err != nil {
				w.log.Error().Err(err).Msg("reminder run failed")
			} else if sent > 0 {
				metrics.AddRemindersSent(sent)
				w.log.Info().Int("count", sent).Msg("reminders sent")
			}
		}
	}
}

// remind returns how many messages were sent.
func (w *ReminderWorker) remind(ctx context.Context) (int, error) {
	now := w.now()
	_, week := now.ISOWeek()

	plan, err := w.chores.PlanForWeek(ctx, week)
	if err != nil {
		return 0, err
	}
	byRoom, err := w.rooms.ByRoom(ctx)
	if err != nil {
		return 0, err
	}

	today := dueDayIndex(now.Weekday())
	tomorrow := (today + 1) % 7
	monday := today == 0

	sent := 0
	for _, status := range plan.States {
		if status.Chore.Type == model.Frei {
			continue
		}
		userID, ok := byRoom[status.Room]
		if !ok {
			continue
		}

		if monday {
			msg := w.tr.T("weekly_reminder", status.Chore.String())
			if w.send(ctx, userID, msg) {
				sent++
			}
		}
		if !status.Completed && int(status.Chore.Due) >= tomorrow {
			msg := w.tr.T("daily_reminder", status.Chore.String())
			if w.send(ctx, userID, msg) {
				sent++
			}
		}
	}
	return sent, nil
}

func (w *ReminderWorker) send(ctx context.Context, userID, text string) bool {
	if err := w.sender.SendToUser(ctx, userID, text); err != nil {
		w.log.Error().Err(err).Str("user_id", userID).Msg("failed to send reminder")
		return false
	}
	return true
}
