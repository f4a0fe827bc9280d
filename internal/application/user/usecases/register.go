package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if len(cmd.Password) < user.MinPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	taken, err := uc.userRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("username is already taken")
	}

	taken, err = uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	// Self-service signups always start as end users.
	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email is already taken")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return &RegisterUserResult{
		UserID: newUser.ID(),
		Name:   newUser.Name(),
		Email:  newUser.Email(),
		Role:   newUser.Role().String(),
	}, nil
}
