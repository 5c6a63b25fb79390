package models

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleFocal      Role = "focal"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDispatcher || r == RoleFocal
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
