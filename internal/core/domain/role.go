package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
)

var AllRoles = []Role{RoleAdmin, RoleProfessor, RoleStudent}

// ParseRole accepts only the known roles.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProfessor, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

type Capability int

const (
	CapCreatePoll Capability = iota + 1
	CapViewDetailedResults
	CapManageAnyPoll
	CapManageUsers
	CapAnyBatch
)

var capabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapCreatePoll:          true,
		CapViewDetailedResults: true,
		CapManageAnyPoll:       true,
		CapManageUsers:         true,
		CapAnyBatch:            true,
	},
	RoleProfessor: {
		CapCreatePoll:          true,
		CapViewDetailedResults: true,
		CapAnyBatch:            true,
	},
	RoleStudent: {},
}

// Can reports whether the role grants the capability. Unknown roles grant nothing.
func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}

// Actor is the authenticated caller of a core operation. BatchID is the
// caller's own batch, nil when the user belongs to none.
type Actor struct {
	UserID  uuid.UUID
	Role    Role
	BatchID *uuid.UUID
}

func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil && a.Role.Valid()
}

func (a Actor) Can(c Capability) bool {
	return a.Authenticated() && a.Role.Can(c)
}
