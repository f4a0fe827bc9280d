// Package constants defines shared application constants.
package constants

// Pagination defaults for list endpoints.
const (
	DefaultPage     = 1
	TicketPageSize  = 20
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID        = "user_id"
	ContextKeyStoredRole    = "stored_role"
	ContextKeyRequestedRole = "requested_role"
)

// Role names as stored on user records and carried in token claims.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// MaxAttachmentSize is the upload size ceiling in bytes.
const MaxAttachmentSize = 16 * 1024 * 1024
