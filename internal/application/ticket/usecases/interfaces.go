package usecases

import (
	"context"
	"io"

	"quickdesk/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type CastVoteExecutor interface {
	Execute(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context, query DashboardStatsQuery) (*DashboardStats, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*AttachmentDownload, error)
}

// TransactionRunner runs a function inside a database transaction
// carried on the context. Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier fans out ticket event emails. Implementations must never
// block the mutation path or surface failures to it.
type Notifier interface {
	TicketCreated(ctx context.Context, t *ticket.Ticket)
	TicketUpdated(ctx context.Context, t *ticket.Ticket)
	TicketCommented(ctx context.Context, t *ticket.Ticket, commentAuthorID uint)
}

// FileStore persists attachment content under a generated stored name.
type FileStore interface {
	Store(originalName string, content io.Reader) (storedName string, size int64, err error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

// HTMLRenderer turns comment and description markdown into sanitized HTML.
type HTMLRenderer interface {
	Render(markdown string) string
}
