package usecases

import (
	"context"
	"io"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// AttachmentUpload carries an optional upload submitted with a new ticket.
type AttachmentUpload struct {
	Filename string
	MimeType string
	Content  io.Reader
}

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Subject     string
	Description string
	CategoryID  uint
	Priority    string
	Attachment  *AttachmentUpload
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	categoryRepo   category.Repository
	fileStore      FileStore
	txManager      TransactionRunner
	notifier       Notifier
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	categoryRepo category.Repository,
	fileStore FileStore,
	txManager TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		categoryRepo:   categoryRepo,
		fileStore:      fileStore,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.Actor.ID)

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority")
	}

	cat, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if !cat.IsActive() {
		return nil, errors.NewValidationError("category is not available")
	}

	newTicket, err := ticket.NewTicket(cmd.Subject, cmd.Description, cat.ID(), priority, cmd.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	var storedName string
	var storedSize int64
	if cmd.Attachment != nil {
		if !ticket.IsAllowedFilename(cmd.Attachment.Filename) {
			return nil, errors.NewValidationError("file type not allowed")
		}
		name, size, err := uc.fileStore.Store(cmd.Attachment.Filename, cmd.Attachment.Content)
		if err != nil {
			uc.logger.Errorw("failed to store attachment file", "error", err)
			return nil, errors.NewInternalError("failed to store attachment")
		}
		storedName = name
		storedSize = size
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		if cmd.Attachment == nil {
			return nil
		}
		att, err := ticket.NewAttachment(
			newTicket.ID(),
			cmd.Actor.ID,
			storedName,
			cmd.Attachment.Filename,
			storedSize,
			cmd.Attachment.MimeType,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.attachmentRepo.Save(txCtx, att)
	})
	if err != nil {
		// The file lands on disk before the transaction opens; a rolled
		// back transaction leaves it orphaned, so remove it by hand.
		if storedName != "" {
			if rmErr := uc.fileStore.Remove(storedName); rmErr != nil {
				uc.logger.Warnw("failed to remove orphaned attachment file", "stored_name", storedName, "error", rmErr)
			}
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.notifier.TicketCreated(ctx, newTicket)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
