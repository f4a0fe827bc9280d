package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	Content    string
	IsInternal bool
}

type AddCommentResult struct {
	CommentID  uint
	IsInternal bool
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   TransactionRunner
	notifier    Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you do not have permission to comment on this ticket")
	}

	// A non-staff session cannot file internal notes, whatever the
	// request claims.
	isInternal := cmd.IsInternal && authorization.CanSeeInternalComments(cmd.Actor)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.ID, cmd.Content, isInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}
		t.Touch()
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.notifier.TicketCommented(ctx, t, cmd.Actor.ID)

	return &AddCommentResult{
		CommentID:  comment.ID(),
		IsInternal: comment.IsInternal(),
		CreatedAt:  comment.CreatedAt(),
	}, nil
}
