// Package view turns the task list and the active completion filter into the
// rows a renderer draws. Nothing here touches HTTP or templates.
package view

import (
	"fmt"
	"strconv"
)

// Tab labels, in display order.
const (
	TabComplete   = "Complete"
	TabIncomplete = "Incomplete"
)

// State is the view filter: which completion state is on screen. The zero
// value is the initial state and shows incomplete tasks.
type State struct {
	viewCompleted bool
}

// NewState returns the initial state.
func NewState() State {
	return State{}
}

// Select shows completed tasks when showCompleted is true and incomplete
// tasks otherwise. Selecting the active view again changes nothing.
func (s *State) Select(showCompleted bool) {
	s.viewCompleted = showCompleted
}

// Completed reports whether completed tasks are on screen.
func (s State) Completed() bool {
	return s.viewCompleted
}

// Tab is one of the two view toggles.
type Tab struct {
	Label  string
	Value  bool
	Active bool
}

// Tabs returns Complete then Incomplete; exactly one is active.
func (s State) Tabs() []Tab {
	return []Tab{
		{Label: TabComplete, Value: true, Active: s.viewCompleted},
		{Label: TabIncomplete, Value: false, Active: !s.viewCompleted},
	}
}

// ParseSelection reads a completion flag as given on a query string or
// command line.
func ParseSelection(raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("completed must be true or false, got %q", raw)
	}
	return v, nil
}
