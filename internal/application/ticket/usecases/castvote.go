package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type CastVoteCommand struct {
	Actor    authorization.Actor
	TicketID uint
	VoteType string
}

// CastVoteResult reports the voter's standing after the operation.
// VoteState is "up", "down", or "none" when the vote was removed.
type CastVoteResult struct {
	TicketID  uint
	VoteState string
	Upvotes   int
	Downvotes int
}

type CastVoteUseCase struct {
	ticketRepo ticket.TicketRepository
	voteRepo   ticket.VoteRepository
	txManager  TransactionRunner
	logger     logger.Interface
}

func NewCastVoteUseCase(
	ticketRepo ticket.TicketRepository,
	voteRepo ticket.VoteRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *CastVoteUseCase {
	return &CastVoteUseCase{
		ticketRepo: ticketRepo,
		voteRepo:   voteRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error) {
	voteType := vo.VoteType(cmd.VoteType)
	if !voteType.IsValid() {
		return nil, errors.NewValidationError("vote type must be up or down")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you do not have permission to vote on this ticket")
	}

	var state string

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.voteRepo.GetByTicketAndVoter(txCtx, cmd.TicketID, cmd.Actor.ID)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			// First vote on this ticket.
			v, err := ticket.NewVote(cmd.TicketID, cmd.Actor.ID, voteType)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.voteRepo.Save(txCtx, v); err != nil {
				return err
			}
			state = voteType.String()
			return uc.adjustCounters(txCtx, cmd.TicketID, voteType, 1)

		case existing.Type() == voteType:
			// Same direction again removes the vote.
			if err := uc.voteRepo.Delete(txCtx, existing.ID()); err != nil {
				return err
			}
			state = "none"
			return uc.adjustCounters(txCtx, cmd.TicketID, voteType, -1)

		default:
			// Opposite direction switches the vote; both counters move.
			existing.Switch()
			if err := uc.voteRepo.Update(txCtx, existing); err != nil {
				return err
			}
			state = voteType.String()
			if voteType == vo.VoteUp {
				return uc.ticketRepo.AdjustVoteCounters(txCtx, cmd.TicketID, 1, -1)
			}
			return uc.ticketRepo.AdjustVoteCounters(txCtx, cmd.TicketID, -1, 1)
		}
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			// Two concurrent first votes raced; the store kept one.
			return nil, errors.NewConflictError("vote already recorded")
		}
		uc.logger.Errorw("failed to cast vote", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	updated, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	return &CastVoteResult{
		TicketID:  updated.ID(),
		VoteState: state,
		Upvotes:   updated.Upvotes(),
		Downvotes: updated.Downvotes(),
	}, nil
}

func (uc *CastVoteUseCase) adjustCounters(ctx context.Context, ticketID uint, voteType vo.VoteType, delta int) error {
	if voteType == vo.VoteUp {
		return uc.ticketRepo.AdjustVoteCounters(ctx, ticketID, delta, 0)
	}
	return uc.ticketRepo.AdjustVoteCounters(ctx, ticketID, 0, delta)
}
