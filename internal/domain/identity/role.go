package identity

// Role identifies which side of the marketplace an actor belongs to
type Role string

const (
	RoleSupplier    Role = "supplier"
	RoleSupermarket Role = "supermarket"
)

// IsValid checks if the role is a known marketplace role
func (r Role) IsValid() bool {
	switch r {
	case RoleSupplier, RoleSupermarket:
		return true
	}
	return false
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}
