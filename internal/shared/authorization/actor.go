package authorization

// Actor is the per-request identity context: the authenticated account plus
// the role it asked to act as for this session. A high-privilege account may
// log in with a lower requested role to browse with reduced capabilities;
// capability checks must honor both the stored and the requested role, so
// the effective role is whichever ranks lower. Actor is built from token
// claims by the auth middleware and passed through every call; it is never
// ambient state.
type Actor struct {
	ID            uint
	StoredRole    Role
	RequestedRole Role
}

// NewActor builds an actor. An empty or invalid requested role falls back to
// the stored role.
func NewActor(id uint, stored, requested Role) Actor {
	if !requested.IsValid() {
		requested = stored
	}
	return Actor{
		ID:            id,
		StoredRole:    stored,
		RequestedRole: requested,
	}
}

// EffectiveRole returns the role the actor operates as: the lower-ranked of
// the stored and requested roles, so a downgraded session never exceeds the
// requested capabilities and a forged request role never exceeds the stored
// ones.
func (a Actor) EffectiveRole() Role {
	if a.RequestedRole.Rank() < a.StoredRole.Rank() {
		return a.RequestedRole
	}
	return a.StoredRole
}
