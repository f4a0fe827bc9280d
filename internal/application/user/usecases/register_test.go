package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/errors"
)

func newRegisterUseCase(repo *mockUserRepository) *RegisterUserUseCase {
	return NewRegisterUserUseCase(repo, &mockHasher{}, &mockLogger{})
}

func TestRegisterUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			require.NoError(t, u.SetID(3))
			saved = u
			return nil
		},
	}

	uc := newRegisterUseCase(repo)

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "morgan",
		Email:    "Morgan@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.UserID)
	assert.Equal(t, "user", result.Role, "signups always start as end users")
	require.NotNil(t, saved)
	assert.Equal(t, "morgan@example.com", saved.Email())
	assert.Equal(t, "hashed:secret123", saved.PasswordHash())
}

func TestRegisterUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := newRegisterUseCase(&mockUserRepository{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "morgan",
		Email:    "morgan@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterUserUseCase_Execute_DuplicateName(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
	}

	uc := newRegisterUseCase(repo)

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "morgan",
		Email:    "morgan@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_DuplicateEmailRace(t *testing.T) {
	// The pre-check passed but the store hit the unique index.
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return errors.NewInternalError("Duplicate entry 'morgan@example.com' for key 'idx_users_email'")
		},
	}

	uc := newRegisterUseCase(repo)

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "morgan",
		Email:    "morgan@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUserUseCase_Execute_InvalidEmail(t *testing.T) {
	uc := newRegisterUseCase(&mockUserRepository{})

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "morgan",
		Email:    "not-an-email",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
