package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// UpdateUserCommand applies admin edits to an account. Nil pointer
// fields leave the attribute untouched.
type UpdateUserCommand struct {
	Actor    authorization.Actor
	UserID   uint
	Name     *string
	Email    *string
	Role     *string
	IsActive *bool
}

type UpdateUserResult struct {
	UserID   uint
	Name     string
	Email    string
	Role     string
	IsActive bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	if !authorization.CanManageUsers(cmd.Actor) {
		return nil, errors.NewForbiddenError("only administrators can manage users")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil && *cmd.Name != u.Name() {
		taken, err := uc.userRepo.ExistsByName(ctx, *cmd.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewConflictError("username is already taken")
		}
		if err := u.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Email != nil && *cmd.Email != u.Email() {
		taken, err := uc.userRepo.ExistsByEmail(ctx, *cmd.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewConflictError("email is already registered")
		}
		if err := u.UpdateEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		role := authorization.Role(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
		if err := u.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			u.Activate()
		} else {
			if u.ID() == cmd.Actor.ID {
				return nil, errors.NewValidationError("you cannot deactivate your own account")
			}
			u.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email is already taken")
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &UpdateUserResult{
		UserID:   u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}, nil
}
