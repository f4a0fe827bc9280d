package ticket

import (
	"context"

	"quickdesk/internal/domain/ticket/valueobjects"
)

// SortKey selects the ordering applied by TicketRepository.List.
type SortKey string

const (
	SortCreatedDesc  SortKey = "created_desc"
	SortCreatedAsc   SortKey = "created_asc"
	SortUpdatedDesc  SortKey = "updated_desc"
	SortUpdatedAsc   SortKey = "updated_asc"
	SortVotesDesc    SortKey = "votes_desc"
	SortCommentsDesc SortKey = "comments_desc"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortCreatedDesc, SortCreatedAsc, SortUpdatedDesc, SortUpdatedAsc,
		SortVotesDesc, SortCommentsDesc:
		return true
	}
	return false
}

// ParseSortKey maps a request parameter to a sort key, falling back to
// newest-first for anything unrecognized.
func ParseSortKey(s string) SortKey {
	key := SortKey(s)
	if !key.IsValid() {
		return SortCreatedDesc
	}
	return key
}

// ListFilter carries every restriction List applies. A nil pointer field
// means that dimension is unconstrained. CreatorID, when set, restricts
// results to that creator and is how the visibility rule for non-staff
// sessions reaches the query.
type ListFilter struct {
	Status     *valueobjects.Status
	Priority   *valueobjects.Priority
	CategoryID *uint
	AssigneeID *uint
	CreatorID  *uint
	Unassigned bool
	Search     string

	Sort     SortKey
	Page     int
	PageSize int
}

// TicketStats aggregates counts for the dashboard. AssignedToMe is only
// populated when GetStats receives an assignee filter.
type TicketStats struct {
	Total        int64
	Open         int64
	InProgress   int64
	Resolved     int64
	Closed       int64
	Unassigned   int64
	AssignedToMe int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket along with its comments, votes and
	// attachment rows.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	// GetStats counts tickets per status. creatorID scopes every count
	// to one creator; assigneeID adds the AssignedToMe count.
	GetStats(ctx context.Context, creatorID, assigneeID *uint) (*TicketStats, error)
	// AdjustVoteCounters shifts the denormalized counters by the given
	// deltas inside the caller's transaction.
	AdjustVoteCounters(ctx context.Context, ticketID uint, upDelta, downDelta int) error
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	// CountByTicketIDs returns comment counts keyed by ticket ID in one
	// query. Tickets without comments are absent from the map.
	CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

type VoteRepository interface {
	Save(ctx context.Context, v *Vote) error
	Update(ctx context.Context, v *Vote) error
	Delete(ctx context.Context, id uint) error
	// GetByTicketAndVoter returns (nil, nil) when the voter has no
	// standing vote on the ticket.
	GetByTicketAndVoter(ctx context.Context, ticketID, voterID uint) (*Vote, error)
}
