package model

// Role marks users with house-level privileges. Regular residents have no
// role entry at all.
type Role int

const (
	RoleAdmin Role = iota
	RoleSprecher
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleSprecher:
		return "Wohnheimssprecher"
	default:
		return "Unbekannt"
	}
}

// Privileged reports whether the role may use admin commands and post in
// group chats.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSprecher
}
