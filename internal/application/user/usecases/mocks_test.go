package usecases

import (
	"context"
	"fmt"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	GetByNameFunc        func(ctx context.Context, name string) (*user.User, error)
	ListFunc             func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
	ListStaffFunc        func(ctx context.Context) ([]*user.User, error)
	ListActiveAdminsFunc func(ctx context.Context) ([]*user.User, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByNameFunc     func(ctx context.Context, name string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByName(ctx context.Context, name string) (*user.User, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveAdminsFunc != nil {
		return m.ListActiveAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

// mockHasher prefixes instead of hashing so tests can assert round trips.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userID uint, storedRole, requestedRole authorization.Role) (*TokenPair, error)
}

func (m *mockJWTService) Generate(userID uint, storedRole, requestedRole authorization.Role) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, storedRole, requestedRole)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockJWTService) Refresh(refreshToken string) (string, error) {
	return "access", nil
}

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
