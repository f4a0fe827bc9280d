package ticket

import (
	"fmt"
	"time"

	"quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/biztime"
)

// Vote is a single voter's current stance on a ticket. At most one vote
// per (ticket, voter) pair exists; repeating the same vote removes it and
// casting the opposite vote switches it.
type Vote struct {
	id        uint
	ticketID  uint
	voterID   uint
	voteType  valueobjects.VoteType
	createdAt time.Time
}

func NewVote(ticketID, voterID uint, voteType valueobjects.VoteType) (*Vote, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if voterID == 0 {
		return nil, fmt.Errorf("voter ID is required")
	}
	if !voteType.IsValid() {
		return nil, fmt.Errorf("invalid vote type: %s", voteType)
	}

	return &Vote{
		ticketID:  ticketID,
		voterID:   voterID,
		voteType:  voteType,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructVote(
	id uint,
	ticketID uint,
	voterID uint,
	voteType valueobjects.VoteType,
	createdAt time.Time,
) (*Vote, error) {
	if id == 0 {
		return nil, fmt.Errorf("vote ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if voterID == 0 {
		return nil, fmt.Errorf("voter ID is required")
	}

	return &Vote{
		id:        id,
		ticketID:  ticketID,
		voterID:   voterID,
		voteType:  voteType,
		createdAt: createdAt,
	}, nil
}

func (v *Vote) ID() uint {
	return v.id
}

func (v *Vote) TicketID() uint {
	return v.ticketID
}

func (v *Vote) VoterID() uint {
	return v.voterID
}

func (v *Vote) Type() valueobjects.VoteType {
	return v.voteType
}

func (v *Vote) CreatedAt() time.Time {
	return v.createdAt
}

// Switch flips the vote to its opposite direction.
func (v *Vote) Switch() {
	v.voteType = v.voteType.Opposite()
}

func (v *Vote) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vote ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("vote ID cannot be zero")
	}
	v.id = id
	return nil
}
