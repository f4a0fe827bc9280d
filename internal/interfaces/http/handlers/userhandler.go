package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type UserSummaryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserHandler struct {
	updateUserUC usecases.UpdateUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	listStaffUC  usecases.ListStaffExecutor
	logger       logger.Interface
}

func NewUserHandler(
	updateUserUC usecases.UpdateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	listStaffUC usecases.ListStaffExecutor,
	lg logger.Interface,
) *UserHandler {
	return &UserHandler{
		updateUserUC: updateUserUC,
		listUsersUC:  listUsersUC,
		listStaffUC:  listStaffUC,
		logger:       lg,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	pagination, err := utils.ParsePagination(c, constants.DefaultPageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Actor: actor,
		Page:  pagination.Page,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toUserSummaryResponses(result.Users), result.Total, result.Page, result.PageSize)
}

// ListStaff handles GET /users/staff and backs the assignee picker.
func (h *UserHandler) ListStaff(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.listStaffUC.Execute(c.Request.Context(), usecases.ListStaffQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserSummaryResponses(result.Staff))
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:    actor,
		UserID:   uint(id),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

func toUserSummaryResponses(users []usecases.UserSummary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummaryResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
