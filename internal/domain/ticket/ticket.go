package ticket

import (
	"fmt"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/biztime"
)

const (
	MinSubjectLength     = 5
	MaxSubjectLength     = 200
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	subject     string
	description string
	status      vo.Status
	priority    vo.Priority
	creatorID   uint
	categoryID  uint
	assigneeID  *uint
	upvotes     int
	downvotes   int
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
}

func NewTicket(
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(subject) < MinSubjectLength {
		return nil, fmt.Errorf("subject must be at least %d characters", MinSubjectLength)
	}
	if len(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	if len(description) < MinDescriptionLength {
		return nil, fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		categoryID:  categoryID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	status vo.Status,
	priority vo.Priority,
	creatorID uint,
	categoryID uint,
	assigneeID *uint,
	upvotes int,
	downvotes int,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		categoryID:  categoryID,
		assigneeID:  assigneeID,
		upvotes:     upvotes,
		downvotes:   downvotes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Upvotes() int {
	return t.upvotes
}

func (t *Ticket) Downvotes() int {
	return t.downvotes
}

// NetScore is upvotes minus downvotes.
func (t *Ticket) NetScore() int {
	return t.upvotes - t.downvotes
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to a new status. The resolved and closed
// timestamps are recorded only on the first transition into the respective
// status; re-entering resolved or closed later does not reset them.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	now := biztime.NowUTC()
	t.updatedAt = now

	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}
	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AssignTo sets the assignee. A nil assigneeID clears the assignment.
func (t *Ticket) AssignTo(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Touch bumps the updated timestamp, used when dependent records change
// (for example when a comment is appended).
func (t *Ticket) Touch() {
	t.updatedAt = biztime.NowUTC()
}
