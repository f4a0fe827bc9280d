package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/category/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryHandler struct {
	createCategoryUC usecases.CreateCategoryExecutor
	updateCategoryUC usecases.UpdateCategoryExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	updateCategoryUC usecases.UpdateCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	lg logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		listCategoriesUC: listCategoriesUC,
		logger:           lg,
	}
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("name is required"))
		return
	}

	view, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Actor:       actor,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCategoryResponse(view), "Category created successfully")
}

// UpdateCategory handles PATCH /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid category ID"))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	view, err := h.updateCategoryUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		Actor:       actor,
		CategoryID:  uint(id),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", toCategoryResponse(view))
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	views, err := h.listCategoriesUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{
		Actor:           actor,
		IncludeInactive: c.Query("include_inactive") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]CategoryResponse, 0, len(views))
	for i := range views {
		out = append(out, toCategoryResponse(&views[i]))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func toCategoryResponse(v *usecases.CategoryView) CategoryResponse {
	return CategoryResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}
