package entity

// Role is a closed enumeration of account roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored role string onto the enumeration, defaulting to
// student for anything unrecognized.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleStudent
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// CanMutate is the single ownership rule applied before every update and
// delete on an ownable resource: the requester must be the owner or an
// admin. Resources seeded without an owner are admin-only.
func CanMutate(ownerID, requesterID string, requesterRole Role) bool {
	if requesterRole == RoleAdmin {
		return true
	}
	return ownerID != "" && ownerID == requesterID
}
