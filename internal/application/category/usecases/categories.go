package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryView, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryView, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error)
}

type CategoryView struct {
	ID          uint
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

type CreateCategoryCommand struct {
	Actor       authorization.Actor
	Name        string
	Description string
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryView, error) {
	if !authorization.CanManageUsers(cmd.Actor) {
		return nil, errors.NewForbiddenError("only administrators can manage categories")
	}

	existing, err := uc.categoryRepo.GetByName(ctx, cmd.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("category name is already taken")
	}

	c, err := category.NewCategory(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("category name is already taken")
		}
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "name", c.Name())

	view := toView(c)
	return &view, nil
}

// UpdateCategoryCommand renames, re-describes or toggles a category.
// Nil pointer fields leave the attribute untouched.
type UpdateCategoryCommand struct {
	Actor       authorization.Actor
	CategoryID  uint
	Name        *string
	Description *string
	IsActive    *bool
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryView, error) {
	if !authorization.CanManageUsers(cmd.Actor) {
		return nil, errors.NewForbiddenError("only administrators can manage categories")
	}

	c, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil && *cmd.Name != c.Name() {
		existing, err := uc.categoryRepo.GetByName(ctx, *cmd.Name)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewConflictError("category name is already taken")
		}
		if err := c.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := c.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	view := toView(c)
	return &view, nil
}

// ListCategoriesQuery returns active categories by default; admins can
// ask for the full set.
type ListCategoriesQuery struct {
	Actor           authorization.Actor
	IncludeInactive bool
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	var (
		categories []*category.Category
		err        error
	)
	if query.IncludeInactive && authorization.CanManageUsers(query.Actor) {
		categories, err = uc.categoryRepo.ListAll(ctx)
	} else {
		categories, err = uc.categoryRepo.ListActive(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toView(c))
	}
	return views, nil
}

func toView(c *category.Category) CategoryView {
	return CategoryView{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
