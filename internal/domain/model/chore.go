package model

import "fmt"

// ChoreType identifies one of the weekly dormitory chores. FREI marks a slot
// with no duty for that week.
type ChoreType int

const (
	Einkaufsdienst ChoreType = iota
	Muelldienst
	Getraenke
	Kueche
	Maschinen
	Geschirrtuecher
	Frei
)

var choreNames = map[ChoreType]string{
	Einkaufsdienst:  "Einkaufsdienst",
	Muelldienst:     "Mülldienst",
	Getraenke:       "Getränkedienst",
	Kueche:          "Küchendienst",
	Maschinen:       "Maschinendienst",
	Geschirrtuecher: "Geschirrtücher",
	Frei:            "Frei",
}

func (t ChoreType) String() string {
	if n, ok := choreNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ChoreType(%d)", int(t))
}

// DueDay is the weekday a chore must be finished by. Monday is 0 so the
// values line up with ISO weekday arithmetic. NoDay belongs to FREI slots.
type DueDay int

const (
	Montag DueDay = iota
	Dienstag
	Mittwoch
	Donnerstag
	Freitag
	Samstag
	Sonntag
	NoDay
)

var dayNames = map[DueDay]string{
	Montag:     "Montag",
	Dienstag:   "Dienstag",
	Mittwoch:   "Mittwoch",
	Donnerstag: "Donnerstag",
	Freitag:    "Freitag",
	Samstag:    "Samstag",
	Sonntag:    "Sonntag",
	NoDay:      "Kein Tag",
}

func (d DueDay) String() string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return fmt.Sprintf("DueDay(%d)", int(d))
}

// Chore is one entry on the chore board.
type Chore struct {
	Type ChoreType `json:"type"`
	Due  DueDay    `json:"due"`
}

func (c Chore) String() string {
	if c.Type == Frei {
		return "Frei"
	}
	return fmt.Sprintf("%s (fällig %s)", c.Type, c.Due)
}

// ChoreStatus binds a chore to a room for the current week and tracks
// whether it has been completed.
type ChoreStatus struct {
	Completed bool  `json:"completed"`
	Room      int   `json:"assigned_to_room"`
	Chore     Chore `json:"chore"`
}

func (s ChoreStatus) String() string {
	mark := "❌"
	if s.Completed || s.Chore.Type == Frei {
		mark = "✅"
	}
	return fmt.Sprintf("Zimmer %d: %s %s", s.Room, s.Chore, mark)
}

// WeekPlan is the full chore assignment for one ISO week.
type WeekPlan struct {
	Week   int           `json:"week,omitempty"`
	States []ChoreStatus `json:"chore_states"`
}

// WithCompleted returns a copy of the plan with the given room's chore
// marked as done. The receiver is not modified.
func (p *WeekPlan) WithCompleted(room int) *WeekPlan {
	states := make([]ChoreStatus, len(p.States))
	copy(states, p.States)
	for i := range states {
		if states[i].Room == room {
			states[i].Completed = true
		}
	}
	return &WeekPlan{Week: p.Week, States: states}
}

// StatusForRoom finds the chore assigned to a room this week.
func (p *WeekPlan) StatusForRoom(room int) (ChoreStatus, bool) {
	for _, s := range p.States {
		if s.Room == room {
			return s, true
		}
	}
	return ChoreStatus{}, false
}

// Incomplete lists every non-free chore that has not been marked done.
func (p *WeekPlan) Incomplete() []ChoreStatus {
	var out []ChoreStatus
	for _, s := range p.States {
		if !s.Completed && s.Chore.Type != Frei {
			out = append(out, s)
		}
	}
	return out
}

func (p *WeekPlan) String() string {
	out := ""
	for i, s := range p.States {
		if i > 0 {
			out += "\n"
		}
		out += s.String()
	}
	return out
}
