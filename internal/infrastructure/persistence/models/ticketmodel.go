package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Upvotes     int    `gorm:"not null;default:0"`
	Downvotes   int    `gorm:"not null;default:0"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null;index"`
	ResolvedAt  *int64
	ClosedAt    *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	UploaderID   uint   `gorm:"not null;index"`
	StoredName   string `gorm:"size:255;not null;uniqueIndex"`
	OriginalName string `gorm:"size:255;not null"`
	Size         int64  `gorm:"not null;default:0"`
	MimeType     string `gorm:"size:100;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}

// VoteModel enforces one vote per voter per ticket at the store.
type VoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:idx_ticket_voter"`
	VoterID   uint   `gorm:"not null;uniqueIndex:idx_ticket_voter"`
	VoteType  string `gorm:"size:10;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (VoteModel) TableName() string {
	return "ticket_votes"
}
