package usecases

import (
	"context"
	"io"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	Actor        authorization.Actor
	AttachmentID uint
}

// AttachmentDownload streams the stored file. The caller owns Content
// and must close it.
type AttachmentDownload struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	fileStore      FileStore
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*AttachmentDownload, error) {
	att, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, att.TicketID())
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(query.Actor, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you do not have permission to download this attachment")
	}

	content, err := uc.fileStore.Open(att.StoredName())
	if err != nil {
		uc.logger.Errorw("failed to open attachment file", "stored_name", att.StoredName(), "error", err)
		return nil, errors.NewInternalError("failed to open attachment")
	}

	return &AttachmentDownload{
		OriginalName: att.OriginalName(),
		MimeType:     att.MimeType(),
		Size:         att.Size(),
		Content:      content,
	}, nil
}
