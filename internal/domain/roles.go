package domain

// Role enumerates access levels for platform users.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// seniority orders roles; higher values outrank lower ones.
var seniority = map[Role]int{
	RoleUser:    1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	_, ok := seniority[r]
	return ok
}

// Allows reports whether a holder of r satisfies a requirement of required.
// The hierarchy is total: admin > manager > user. Unknown roles never allow
// anything and are never allowed.
func (r Role) Allows(required Role) bool {
	held, ok := seniority[r]
	if !ok {
		return false
	}
	want, ok := seniority[required]
	if !ok {
		return false
	}
	return held >= want
}
