package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// ListTicketsQuery carries the raw request filters. Zero values switch a
// dimension off.
type ListTicketsQuery struct {
	Actor      authorization.Actor
	Search     string
	Status     string
	Priority   string
	CategoryID uint
	AssigneeID uint
	Unassigned bool
	MineOnly   bool
	Sort       string
	Page       int
}

type TicketSummary struct {
	ID           uint
	Subject      string
	Status       string
	Priority     string
	CategoryID   uint
	CreatorID    uint
	AssigneeID   *uint
	Upvotes      int
	Downvotes    int
	NetScore     int
	CommentCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ListTicketsResult struct {
	Tickets    []TicketSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Page < 1 {
		return nil, errors.NewValidationError("page must be positive")
	}

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	// The creator restriction is baked into the filter for
	// effective-role user; this recheck guards the rest.
	visible := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if authorization.CanViewTicket(query.Actor, t.CreatorID()) {
			visible = append(visible, t)
		}
	}

	ids := make([]uint, len(visible))
	for i, t := range visible {
		ids[i] = t.ID()
	}
	counts, err := uc.commentRepo.CountByTicketIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to count comments", "error", err)
		counts = map[uint]int64{}
	}

	summaries := make([]TicketSummary, 0, len(visible))
	for _, t := range visible {
		summaries = append(summaries, TicketSummary{
			ID:           t.ID(),
			Subject:      t.Subject(),
			Status:       t.Status().String(),
			Priority:     t.Priority().String(),
			CategoryID:   t.CategoryID(),
			CreatorID:    t.CreatorID(),
			AssigneeID:   t.AssigneeID(),
			Upvotes:      t.Upvotes(),
			Downvotes:    t.Downvotes(),
			NetScore:     t.NetScore(),
			CommentCount: counts[t.ID()],
			CreatedAt:    t.CreatedAt(),
			UpdatedAt:    t.UpdatedAt(),
		})
	}

	totalPages := int((total + int64(constants.TicketPageSize) - 1) / int64(constants.TicketPageSize))

	return &ListTicketsResult{
		Tickets:    summaries,
		Total:      total,
		Page:       query.Page,
		PageSize:   constants.TicketPageSize,
		TotalPages: totalPages,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.ListFilter, error) {
	filter := ticket.ListFilter{
		Search:     query.Search,
		Unassigned: query.Unassigned,
		Sort:       ticket.ParseSortKey(query.Sort),
		Page:       query.Page,
		PageSize:   constants.TicketPageSize,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return filter, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}
	if query.CategoryID != 0 {
		id := query.CategoryID
		filter.CategoryID = &id
	}
	if query.AssigneeID != 0 {
		id := query.AssigneeID
		filter.AssigneeID = &id
	}

	// An effective-role user only ever sees their own tickets. For staff,
	// MineOnly narrows the view to tickets assigned to them.
	if query.Actor.EffectiveRole() == authorization.RoleUser {
		creatorID := query.Actor.ID
		filter.CreatorID = &creatorID
	} else if query.MineOnly {
		assigneeID := query.Actor.ID
		filter.AssigneeID = &assigneeID
	}

	return filter, nil
}
