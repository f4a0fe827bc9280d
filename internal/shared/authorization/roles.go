// Package authorization holds the role model and the pure access policy
// functions gating ticket operations.
package authorization

// Role is the closed set of account roles. Roles form a total order for
// access purposes: admin outranks agent outranks user. The order governs
// ticket visibility and login-role selection only; role is otherwise a
// plain attribute on the account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

var roleRanks = map[Role]int{
	RoleUser:  1,
	RoleAgent: 2,
	RoleAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the role's position in the total order. Unknown roles rank
// below user so they never gain access by accident.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r outranks or equals other.
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsAgent() bool {
	return r == RoleAgent
}

// IsStaff reports whether the role is agent or admin.
func (r Role) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

// DisplayName returns the human-facing role label.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleAgent:
		return "Support Agent"
	case RoleUser:
		return "End User"
	}
	return string(r)
}
