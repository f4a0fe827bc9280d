package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     database,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "is_active").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("name = ?", name).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	return r.list(ctx, true)
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	return r.list(ctx, false)
}

func (r *CategoryRepository) list(ctx context.Context, activeOnly bool) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []models.CategoryModel
	if err := query.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, len(categoryModels))
	for i := range categoryModels {
		c, err := r.mapper.ToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}

	return categories, nil
}
