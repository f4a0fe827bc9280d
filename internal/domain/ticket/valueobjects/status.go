package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllStatuses returns every valid status, for form choices.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}
