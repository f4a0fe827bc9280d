package authorization

// Pure decision functions over (actor, resource) pairs. All checks run
// against the actor's effective role so that a deliberately downgraded
// session behaves exactly like an account that holds the lower role.

// CanViewTicket reports whether the actor may see a ticket. Staff see every
// ticket; end users see only tickets they created.
func CanViewTicket(actor Actor, creatorID uint) bool {
	if actor.EffectiveRole().IsStaff() {
		return true
	}
	return actor.ID == creatorID
}

// CanEditTicket reports whether the actor may update a ticket's status,
// priority or assignment. Staff edit any ticket; an end user keeps edit
// access to tickets they created (assignment input from such an actor is
// discarded by the update operation, see CanAssignTickets).
func CanEditTicket(actor Actor, creatorID uint) bool {
	if actor.EffectiveRole().IsStaff() {
		return true
	}
	return actor.ID == creatorID
}

// CanAssignTickets reports whether the actor may change ticket assignment.
func CanAssignTickets(actor Actor) bool {
	return actor.EffectiveRole().IsStaff()
}

// CanSeeInternalComments reports whether internal comments are visible to
// the actor, and whether the actor may author them.
func CanSeeInternalComments(actor Actor) bool {
	return actor.EffectiveRole().IsStaff()
}

// CanManageUsers reports whether the actor may administer accounts and
// categories.
func CanManageUsers(actor Actor) bool {
	return actor.EffectiveRole().IsAdmin()
}

// EffectiveLoginRole decides a login's session role. The stored role must
// outrank or equal the requested role; the session then records the
// requested role, not the stored one.
func EffectiveLoginRole(stored, requested Role) (Role, bool) {
	if !requested.IsValid() {
		return "", false
	}
	if !stored.AtLeast(requested) {
		return "", false
	}
	return requested, true
}
