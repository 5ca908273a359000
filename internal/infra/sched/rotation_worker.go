package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/infra/i18n"
	"wohnheimsbot/internal/infra/metrics"
	"wohnheimsbot/internal/usecase"
)

// RotationWorker runs the weekly chore rotation early every Monday:
// penalties for the finished week are logged and the offenders notified,
// then the new plan is installed.
type RotationWorker struct {
	at     TimeOfDay
	chores usecase.ChoreUseCase
	sender MessageSender
	tr     *i18n.Translator
	log    *zerolog.Logger
	now    func() time.Time
}

func NewRotationWorker(
	at TimeOfDay,
	chores usecase.ChoreUseCase,
	sender MessageSender,
	tr *i18n.Translator,
	logger *zerolog.Logger,
) *RotationWorker {
	wlog := logger.With().Str("component", "RotationWorker").Logger()
	return &RotationWorker{
		at:     at,
		chores: chores,
		sender: sender,
		tr:     tr,
		log:    &wlog,
		now:    time.Now,
	}
}

func (w *RotationWorker) Run(ctx context.Context) error {
	w.log.Info().Int("hour", w.at.Hour).Int("minute", w.at.Minute).Msg("starting rotation worker")
	for {
		next := nextWeekly(w.now(), time.Monday, w.at)
		timer := time.NewTimer(next.Sub(w.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.log.Info().Msg("stopping rotation worker")
			return ctx.Err()
		case <-timer.C:
			if err := w.rotate(ctx); err != nil {
				w.log.Error().Err(err).Msg("rotation run failed")
			}
		}
	}
}

func (w *RotationWorker) rotate(ctx context.Context) error {
	_, week := w.now().ISOWeek()

	result, err := w.chores.Rotate(ctx, week)
	if err != nil {
		return err
	}
	metrics.IncRotationsRun()
	metrics.AddPenaltiesLogged(len(result.Penalties))

	for userID, status := range result.Notify {
		msg := w.tr.T("penalty_notification", status.Chore.String())
		if err := w.sender.SendToUser(ctx, userID, msg); err != nil {
			w.log.Error().Err(err).Str("user_id", userID).Msg("failed to send penalty notification")
		}
	}
	return nil
}
