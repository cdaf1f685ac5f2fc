package models

// Actor is the already-authenticated caller of an operation. Core code trusts
// it without re-verifying credentials.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanSee is the single visibility predicate for tickets: admins see
// everything, everyone else only tickets they created or are assigned to.
func (a Actor) CanSee(t *Ticket) bool {
	if a.IsAdmin() {
		return true
	}
	return t.EngineerUserID == a.ID || t.CreatedByUserID == a.ID
}
