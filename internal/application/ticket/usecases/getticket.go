package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type CommentView struct {
	ID          uint
	AuthorID    uint
	Content     string
	ContentHTML string
	IsInternal  bool
	CreatedAt   time.Time
}

type AttachmentView struct {
	ID           uint
	OriginalName string
	Size         int64
	MimeType     string
	CreatedAt    time.Time
}

type TicketDetail struct {
	ID              uint
	Subject         string
	Description     string
	DescriptionHTML string
	Status          string
	Priority        string
	CategoryID      uint
	CreatorID       uint
	AssigneeID      *uint
	Upvotes         int
	Downvotes       int
	NetScore        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
	ClosedAt        *time.Time
	Comments        []CommentView
	Attachments     []AttachmentView
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	renderer       HTMLRenderer
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	renderer HTMLRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(query.Actor, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you do not have permission to view this ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	showInternal := authorization.CanSeeInternalComments(query.Actor)

	commentViews := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		if c.IsInternal() && !showInternal {
			continue
		}
		commentViews = append(commentViews, CommentView{
			ID:          c.ID(),
			AuthorID:    c.AuthorID(),
			Content:     c.Content(),
			ContentHTML: uc.renderer.Render(c.Content()),
			IsInternal:  c.IsInternal(),
			CreatedAt:   c.CreatedAt(),
		})
	}

	attachmentViews := make([]AttachmentView, 0, len(attachments))
	for _, a := range attachments {
		attachmentViews = append(attachmentViews, AttachmentView{
			ID:           a.ID(),
			OriginalName: a.OriginalName(),
			Size:         a.Size(),
			MimeType:     a.MimeType(),
			CreatedAt:    a.CreatedAt(),
		})
	}

	return &TicketDetail{
		ID:              t.ID(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		DescriptionHTML: uc.renderer.Render(t.Description()),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CategoryID:      t.CategoryID(),
		CreatorID:       t.CreatorID(),
		AssigneeID:      t.AssigneeID(),
		Upvotes:         t.Upvotes(),
		Downvotes:       t.Downvotes(),
		NetScore:        t.NetScore(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
		Comments:        commentViews,
		Attachments:     attachmentViews,
	}, nil
}
