package ticket

import (
	"fmt"
	"strings"
	"time"

	"quickdesk/internal/shared/biztime"
)

const maxCommentLength = 5000

type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	content    string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
