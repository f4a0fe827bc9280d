package usecases

import (
	"context"

	"quickdesk/internal/shared/authorization"
)

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListStaffExecutor interface {
	Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error)
}

// PasswordHasher abstracts the bcrypt hashing in the auth infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues token pairs carrying both the stored account role and
// the role the session was opened with.
type JWTService interface {
	Generate(userID uint, storedRole, requestedRole authorization.Role) (*TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

// RateLimiter guards the login endpoint. Allow reports whether the key
// may proceed within the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
