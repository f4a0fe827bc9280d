package mappers

import (
	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    biztime.ToMilli(u.CreatedAt()),
		UpdatedAt:    biztime.ToMilli(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.Role(model.Role),
		model.IsActive,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
	)
}

type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   biztime.ToMilli(c.CreatedAt()),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		biztime.FromMilli(model.CreatedAt),
	)
}
