package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// UpdateTicketCommand mutates status, priority and assignment. Nil
// pointer fields leave that attribute untouched. AssigneeSet with a nil
// AssigneeID clears the assignment.
type UpdateTicketCommand struct {
	Actor       authorization.Actor
	TicketID    uint
	Status      *string
	Priority    *string
	AssigneeSet bool
	AssigneeID  *uint
}

type UpdateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionRunner
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanEditTicket(cmd.Actor, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you do not have permission to edit this ticket")
	}

	if cmd.Status != nil {
		status := vo.Status(*cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority")
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// Assignment input from non-staff sessions is dropped without error.
	if cmd.AssigneeSet && authorization.CanAssignTickets(cmd.Actor) {
		if err := t.AssignTo(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	t.Touch()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.notifier.TicketUpdated(ctx, t)

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
