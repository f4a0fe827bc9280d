package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// IsElevated reports whether the priority escalates notifications to all
// active admins.
func (p Priority) IsElevated() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

func NewPriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid ticket priority: %s", s)
	}
	return priority, nil
}

// AllPriorities returns every valid priority, for form choices.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}
