package user

import "context"

// Repository persists user accounts. Lookups by email or name return
// (nil, nil) when no account matches.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
	// ListStaff returns active agents and admins, for assignee pickers.
	ListStaff(ctx context.Context) ([]*User, error)
	// ListActiveAdmins backs the escalation notification fan-out.
	ListActiveAdmins(ctx context.Context) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
