//go:build !integration

package model

import "testing"

func TestGenerateWeekPlan(t *testing.T) {
	t.Run("deterministic for a given week", func(t *testing.T) {
		a := GenerateWeekPlan(14)
		b := GenerateWeekPlan(14)
		for i := range a.States {
			if a.States[i] != b.States[i] {
				t.Fatalf("plans differ at slot %d: %+v vs %+v", i, a.States[i], b.States[i])
			}
		}
	})

	t.Run("covers every room exactly once", func(t *testing.T) {
		for _, week := range []int{0, 1, 16, 17, 18, 52} {
			plan := GenerateWeekPlan(week)
			if len(plan.States) != MaxRoom {
				t.Fatalf("week %d: expected %d slots, got %d", week, MaxRoom, len(plan.States))
			}
			seen := make(map[int]bool)
			for _, s := range plan.States {
				if !ValidRoom(s.Room) {
					t.Errorf("week %d: invalid room %d", week, s.Room)
				}
				if seen[s.Room] {
					t.Errorf("week %d: room %d assigned twice", week, s.Room)
				}
				seen[s.Room] = true
			}
		}
	})

	t.Run("rotation shifts rooms between consecutive weeks", func(t *testing.T) {
		a := GenerateWeekPlan(5)
		b := GenerateWeekPlan(6)
		same := 0
		for i := range a.States {
			if a.States[i].Room == b.States[i].Room {
				same++
			}
		}
		if same == len(a.States) {
			t.Error("consecutive weeks produced identical assignments")
		}
	})

	t.Run("period equals the number of rooms", func(t *testing.T) {
		a := GenerateWeekPlan(3)
		b := GenerateWeekPlan(3 + len(roomOrder))
		for i := range a.States {
			if a.States[i].Room != b.States[i].Room {
				t.Fatalf("slot %d differs after a full rotation period", i)
			}
		}
	})

	t.Run("fresh plan has nothing completed", func(t *testing.T) {
		for _, s := range GenerateWeekPlan(9).States {
			if s.Completed {
				t.Errorf("slot for room %d already completed", s.Room)
			}
		}
	})
}

func TestWeekPlan_WithCompleted(t *testing.T) {
	plan := GenerateWeekPlan(7)
	room := plan.States[0].Room

	updated := plan.WithCompleted(room)

	if got, _ := plan.StatusForRoom(room); got.Completed {
		t.Error("receiver was mutated")
	}
	if got, _ := updated.StatusForRoom(room); !got.Completed {
		t.Error("copy does not carry the completion")
	}
	for _, s := range updated.States {
		if s.Room != room && s.Completed {
			t.Errorf("unrelated room %d marked completed", s.Room)
		}
	}
}

func TestWeekPlan_Incomplete(t *testing.T) {
	plan := GenerateWeekPlan(7)

	var open int
	for _, s := range plan.States {
		if s.Chore.Type != Frei {
			open++
		}
	}

	got := plan.Incomplete()
	if len(got) != open {
		t.Fatalf("expected %d open chores, got %d", open, len(got))
	}
	for _, s := range got {
		if s.Chore.Type == Frei {
			t.Error("free slot reported as incomplete")
		}
	}

	// Completing every duty room empties the list.
	done := plan
	for _, s := range got {
		done = done.WithCompleted(s.Room)
	}
	if remaining := done.Incomplete(); len(remaining) != 0 {
		t.Errorf("expected no open chores, got %d", len(remaining))
	}
}

func TestChoreStrings(t *testing.T) {
	c := Chore{Type: Muelldienst, Due: Dienstag}
	if got := c.String(); got != "Mülldienst (fällig Dienstag)" {
		t.Errorf("Chore.String() = %q", got)
	}
	if got := (Chore{Type: Frei, Due: NoDay}).String(); got != "Frei" {
		t.Errorf("free Chore.String() = %q", got)
	}

	s := ChoreStatus{Room: 4, Chore: c}
	if got := s.String(); got != "Zimmer 4: Mülldienst (fällig Dienstag) ❌" {
		t.Errorf("ChoreStatus.String() = %q", got)
	}
	s.Completed = true
	if got := s.String(); got != "Zimmer 4: Mülldienst (fällig Dienstag) ✅" {
		t.Errorf("completed ChoreStatus.String() = %q", got)
	}
}
