package valueobjects

import "fmt"

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

func (v VoteType) String() string {
	return string(v)
}

func (v VoteType) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// Opposite returns the other vote type.
func (v VoteType) Opposite() VoteType {
	if v == VoteUp {
		return VoteDown
	}
	return VoteUp
}

func NewVoteType(s string) (VoteType, error) {
	vt := VoteType(s)
	if !vt.IsValid() {
		return "", fmt.Errorf("invalid vote type: %s", s)
	}
	return vt, nil
}
