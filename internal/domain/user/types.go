package user

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevel[r]
	minLevel, minOK := roleLevel[min]
	return ok && minOK && level >= minLevel
}

// IsElevated marks roles allowed to act on content they do not own.
func (r Role) IsElevated() bool {
	return r.AtLeast(RoleOperator)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
