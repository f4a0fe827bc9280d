package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor authorization.Actor
	Page  int
}

type UserSummary struct {
	ID        uint
	Name      string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}

type ListUsersResult struct {
	Users    []UserSummary
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !authorization.CanManageUsers(query.Actor) {
		return nil, errors.NewForbiddenError("only administrators can list users")
	}
	if query.Page < 1 {
		return nil, errors.NewValidationError("page must be positive")
	}

	users, total, err := uc.userRepo.List(ctx, query.Page, constants.TicketPageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:        u.ID(),
			Name:      u.Name(),
			Email:     u.Email(),
			Role:      u.Role().String(),
			IsActive:  u.IsActive(),
			CreatedAt: u.CreatedAt(),
		})
	}

	return &ListUsersResult{
		Users:    summaries,
		Total:    total,
		Page:     query.Page,
		PageSize: constants.TicketPageSize,
	}, nil
}

type ListStaffQuery struct {
	Actor authorization.Actor
}

type ListStaffResult struct {
	Staff []UserSummary
}

// ListStaffUseCase backs the assignee picker. Only staff sessions need
// it, so the same capability gates it.
type ListStaffUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListStaffUseCase(userRepo user.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	if !authorization.CanAssignTickets(query.Actor) {
		return nil, errors.NewForbiddenError("only staff can list assignees")
	}

	staff, err := uc.userRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(staff))
	for _, u := range staff {
		summaries = append(summaries, UserSummary{
			ID:       u.ID(),
			Name:     u.Name(),
			Email:    u.Email(),
			Role:     u.Role().String(),
			IsActive: u.IsActive(),
		})
	}

	return &ListStaffResult{Staff: summaries}, nil
}
