package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type DashboardStatsQuery struct {
	Actor authorization.Actor
}

type DashboardStats struct {
	Total        int64
	Open         int64
	InProgress   int64
	Resolved     int64
	Closed       int64
	Unassigned   int64
	AssignedToMe int64
}

type GetDashboardStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, query DashboardStatsQuery) (*DashboardStats, error) {
	// Non-staff sessions only ever see their own tickets, so their
	// dashboard counts the same slice. Staff additionally get the count
	// of tickets assigned to them.
	var creatorID, assigneeID *uint
	id := query.Actor.ID
	if query.Actor.EffectiveRole() == authorization.RoleUser {
		creatorID = &id
	} else {
		assigneeID = &id
	}

	stats, err := uc.ticketRepo.GetStats(ctx, creatorID, assigneeID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, err
	}

	return &DashboardStats{
		Total:        stats.Total,
		Open:         stats.Open,
		InProgress:   stats.InProgress,
		Resolved:     stats.Resolved,
		Closed:       stats.Closed,
		Unassigned:   stats.Unassigned,
		AssignedToMe: stats.AssignedToMe,
	}, nil
}
