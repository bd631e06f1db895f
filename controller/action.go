package controller

import "strconv"

// Action is a key press, named like bubbletea's key strings.
type Action string

const (
	Escape Action = "esc"
	Space  Action = " "
	Left   Action = "left"
	Right  Action = "right"
)

// Digit returns the action for the number key n.
func Digit(n int) Action {
	return Action(strconv.Itoa(n))
}

// digit returns the value of a 1..9 key.
func (a Action) digit() (int, bool) {
	if len(a) != 1 || a[0] < '1' || a[0] > '9' {
		return 0, false
	}
	return int(a[0] - '0'), true
}
