package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "password_hash", "role", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*user.User, error) {
	return r.getBy(ctx, "name = ?", name)
}

func (r *UserRepository) getBy(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where(query, arg).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainSlice(userModels, total)
}

func (r *UserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	users, _, err := r.listWhere(ctx, "is_active = ? AND role IN ?", true, []string{"agent", "admin"})
	return users, err
}

func (r *UserRepository) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	users, _, err := r.listWhere(ctx, "is_active = ? AND role = ?", true, "admin")
	return users, err
}

func (r *UserRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.
		Where(query, args...).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainSlice(userModels, int64(len(userModels)))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "name = ?", name)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) toDomainSlice(userModels []models.UserModel, total int64) ([]*user.User, int64, error) {
	users := make([]*user.User, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users[i] = u
	}
	return users, total, nil
}
