//go:build !integration

package sched

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain/model"
	"wohnheimsbot/internal/infra/i18n"
	"wohnheimsbot/internal/usecase"
)

type stubChoreUC struct {
	plan   *model.WeekPlan
	result *usecase.RotationResult
}

func (s *stubChoreUC) PlanForWeek(ctx context.Context, week int) (*model.WeekPlan, error) {
	return s.plan, nil
}

func (s *stubChoreUC) ChoreOf(ctx context.Context, userID string, week int) (model.ChoreStatus, error) {
	return model.ChoreStatus{}, nil
}

func (s *stubChoreUC) MarkDone(ctx context.Context, userID string, week int) (model.Chore, error) {
	return model.Chore{}, nil
}

func (s *stubChoreUC) Rotate(ctx context.Context, week int) (*usecase.RotationResult, error) {
	return s.result, nil
}

type stubRooms struct {
	byRoom map[int]string
}

func (s *stubRooms) Assignments(ctx context.Context) (map[string]int, error) { return nil, nil }
func (s *stubRooms) ByRoom(ctx context.Context) (map[int]string, error)     { return s.byRoom, nil }
func (s *stubRooms) RoomOf(ctx context.Context, userID string) (int, error) { return 0, nil }
func (s *stubRooms) Assign(ctx context.Context, userID string, room int) error {
	return nil
}
func (s *stubRooms) Remove(ctx context.Context, userID string) (int, error) { return 0, nil }

type recordingSender struct {
	messages map[string][]string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{messages: make(map[string][]string)}
}

func (s *recordingSender) SendToUser(ctx context.Context, userID, text string) error {
	s.messages[userID] = append(s.messages[userID], text)
	return nil
}

func testTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "de")
	if err != nil {
		t.Fatalf("load translator: %v", err)
	}
	return tr
}

func fixedClock(weekday time.Weekday) func() time.Time {
	// 2024-06-03 is a Monday; shift to the requested weekday.
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(time.Monday) + 7) % 7
	at := base.AddDate(0, 0, offset)
	return func() time.Time { return at }
}

func TestReminderWorkerRemind(t *testing.T) {
	nop := zerolog.Nop()

	plan := &model.WeekPlan{States: []model.ChoreStatus{
		{Room: 1, Chore: model.Chore{Type: model.Kueche, Due: model.Dienstag}},
		{Room: 2, Chore: model.Chore{Type: model.Muelldienst, Due: model.Sonntag}},
		{Room: 3, Chore: model.Chore{Type: model.Getraenke, Due: model.Freitag}, Completed: true},
		{Room: 4, Chore: model.Chore{Type: model.Frei, Due: model.NoDay}},
	}}
	rooms := &stubRooms{byRoom: map[int]string{1: "u1", 2: "u2", 3: "u3", 4: "u4"}}

	newWorker := func(sender MessageSender, weekday time.Weekday) *ReminderWorker {
		w := NewReminderWorker(TimeOfDay{Hour: 10}, &stubChoreUC{plan: plan}, rooms, sender, testTranslator(t), &nop)
		w.now = fixedClock(weekday)
		return w
	}

	t.Run("monday sends the weekly overview plus due-tomorrow nudge", func(t *testing.T) {
		sender := newRecordingSender()
		sent, err := newWorker(sender, time.Monday).remind(context.Background())
		if err != nil {
			t.Fatalf("remind: %v", err)
		}
		// u1, u2, u3 get the weekly message; u1 and u2 still have open
		// chores ahead so they also get the daily nudge. u4 is free.
		if sent != 5 {
			t.Errorf("sent = %d, want 5", sent)
		}
		if got := len(sender.messages["u1"]); got != 2 {
			t.Errorf("u1 received %d messages, want 2", got)
		}
		if got := len(sender.messages["u3"]); got != 1 {
			t.Errorf("u3 received %d messages, want 1 (chore already done)", got)
		}
		if _, ok := sender.messages["u4"]; ok {
			t.Error("u4 has a free week and must not be messaged")
		}
	})

	t.Run("midweek only nudges open chores still ahead", func(t *testing.T) {
		sender := newRecordingSender()
		sent, err := newWorker(sender, time.Thursday).remind(context.Background())
		if err != nil {
			t.Fatalf("remind: %v", err)
		}
		// Only u2's chore (due Sunday) is still ahead and open; u1's
		// Tuesday deadline already passed.
		if sent != 1 {
			t.Errorf("sent = %d, want 1", sent)
		}
		if _, ok := sender.messages["u2"]; !ok {
			t.Error("u2 expected a nudge for the open Sunday chore")
		}
		if _, ok := sender.messages["u1"]; ok {
			t.Error("u1's deadline passed, no nudge expected")
		}
	})

	t.Run("missing room assignment is skipped", func(t *testing.T) {
		sender := newRecordingSender()
		w := NewReminderWorker(TimeOfDay{Hour: 10}, &stubChoreUC{plan: plan},
			&stubRooms{byRoom: map[int]string{}}, sender, testTranslator(t), &nop)
		w.now = fixedClock(time.Monday)
		sent, err := w.remind(context.Background())
		if err != nil {
			t.Fatalf("remind: %v", err)
		}
		if sent != 0 {
			t.Errorf("sent = %d, want 0 with no assignments", sent)
		}
	})
}

func TestRotationWorkerRotate(t *testing.T) {
	nop := zerolog.Nop()

	t.Run("notifies penalized users", func(t *testing.T) {
		missed := model.ChoreStatus{Room: 5, Chore: model.Chore{Type: model.Kueche, Due: model.Samstag}}
		uc := &stubChoreUC{result: &usecase.RotationResult{
			Week:      23,
			Penalties: []model.ChoreStatus{missed},
			Notify:    map[string]model.ChoreStatus{"u5": missed},
		}}
		sender := newRecordingSender()
		w := NewRotationWorker(TimeOfDay{Hour: 3}, uc, sender, testTranslator(t), &nop)
		w.now = fixedClock(time.Monday)

		if err := w.rotate(context.Background()); err != nil {
			t.Fatalf("rotate: %v", err)
		}
		if got := len(sender.messages["u5"]); got != 1 {
			t.Fatalf("u5 received %d messages, want 1", got)
		}
	})

	t.Run("clean week sends nothing", func(t *testing.T) {
		uc := &stubChoreUC{result: &usecase.RotationResult{
			Week:   23,
			Notify: map[string]model.ChoreStatus{},
		}}
		sender := newRecordingSender()
		w := NewRotationWorker(TimeOfDay{Hour: 3}, uc, sender, testTranslator(t), &nop)
		w.now = fixedClock(time.Monday)

		if err := w.rotate(context.Background()); err != nil {
			t.Fatalf("rotate: %v", err)
		}
		if len(sender.messages) != 0 {
			t.Errorf("no notifications expected, got %v", sender.messages)
		}
	})
}
