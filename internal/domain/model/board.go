package model

// Room numbers in the house run from 1 to 17.
const (
	MinRoom = 1
	MaxRoom = 17
)

// ValidRoom reports whether n is an existing room number.
func ValidRoom(n int) bool {
	return n >= MinRoom && n <= MaxRoom
}

// board is the fixed chore board as it hangs in the hallway. One slot per
// room; the rotation only shifts which room stands at which slot.
var board = []Chore{
	{Type: Einkaufsdienst, Due: Sonntag},
	{Type: Frei, Due: NoDay},
	{Type: Muelldienst, Due: Dienstag},
	{Type: Frei, Due: NoDay},
	{Type: Muelldienst, Due: Freitag},
	{Type: Frei, Due: NoDay},
	{Type: Getraenke, Due: Sonntag},
	{Type: Frei, Due: NoDay},
	{Type: Kueche, Due: Dienstag},
	{Type: Frei, Due: NoDay},
	{Type: Kueche, Due: Samstag},
	{Type: Frei, Due: NoDay},
	{Type: Frei, Due: NoDay},
	{Type: Geschirrtuecher, Due: Sonntag},
	{Type: Frei, Due: NoDay},
	{Type: Muelldienst, Due: Sonntag},
	{Type: Frei, Due: NoDay},
}

// roomOrder is the rotation order of the rooms, again as printed on the
// board. Rotating this list by the week number distributes chores fairly.
var roomOrder = []int{17, 15, 10, 2, 5, 7, 9, 16, 13, 1, 8, 4, 3, 6, 12, 14, 11}

// GenerateWeekPlan builds the chore assignment for the given ISO week.
// The room order is rotated backwards by week mod len(roomOrder), so the
// same week number always yields the same plan.
func GenerateWeekPlan(week int) *WeekPlan {
	n := len(roomOrder)
	k := week % n

	rotated := make([]int, 0, n)
	rotated = append(rotated, roomOrder[n-k:]...)
	rotated = append(rotated, roomOrder[:n-k]...)

	states := make([]ChoreStatus, n)
	for i, chore := range board {
		states[i] = ChoreStatus{Completed: false, Room: rotated[i], Chore: chore}
	}
	return &WeekPlan{Week: week, States: states}
}
