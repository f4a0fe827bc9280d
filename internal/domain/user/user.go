package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

const (
	MinNameLength     = 2
	MaxNameLength     = 100
	MinPasswordLength = 8
	MaxEmailLength    = 254
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the account aggregate. The stored role is the account's
// permanent rank; per-session role selection happens at login and never
// changes this field.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(name) < MinNameLength {
		return nil, fmt.Errorf("name must be at least %d characters", MinNameLength)
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	if len(email) > MaxEmailLength || !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return fmt.Errorf("name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UpdateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) > MaxEmailLength || !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	u.email = email
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
