package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	fileStore      FileStore
	txManager      TransactionRunner
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
	txManager TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !cmd.Actor.EffectiveRole().IsAdmin() {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Cascades over comments, votes and attachment rows.
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	// Stored files are removed only after the commit.
	for _, a := range attachments {
		if err := uc.fileStore.Remove(a.StoredName()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "stored_name", a.StoredName(), "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
	return nil
}
