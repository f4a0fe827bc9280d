package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"quickdesk/internal/shared/biztime"
)

// allowedExtensions is the upload allow-list. Extension checks run before
// any bytes reach the file store.
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"xls":  true,
	"xlsx": true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// IsAllowedFilename reports whether an upload filename carries an
// allow-listed extension.
func IsAllowedFilename(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return allowedExtensions[ext]
}

type Attachment struct {
	id           uint
	ticketID     uint
	uploaderID   uint
	storedName   string
	originalName string
	size         int64
	mimeType     string
	createdAt    time.Time
}

func NewAttachment(
	ticketID uint,
	uploaderID uint,
	storedName string,
	originalName string,
	size int64,
	mimeType string,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if storedName == "" {
		return nil, fmt.Errorf("stored filename is required")
	}
	if originalName == "" {
		return nil, fmt.Errorf("original filename is required")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &Attachment{
		ticketID:     ticketID,
		uploaderID:   uploaderID,
		storedName:   storedName,
		originalName: originalName,
		size:         size,
		mimeType:     mimeType,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	uploaderID uint,
	storedName string,
	originalName string,
	size int64,
	mimeType string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		uploaderID:   uploaderID,
		storedName:   storedName,
		originalName: originalName,
		size:         size,
		mimeType:     mimeType,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
