package models

// Role identifies what a signed-in user may do. The portal runs two parallel
// realms with two roles each: alumni tracking (egresado/coordinador) and the
// job fair (estudiante/empresa).
type Role string

const (
	RoleEgresado    Role = "egresado"
	RoleCoordinador Role = "coordinador"
	RoleEstudiante  Role = "estudiante"
	RoleEmpresa     Role = "empresa"
)

// Valid returns true when the role is a supported value in either realm.
func (r Role) Valid() bool {
	switch r {
	case RoleEgresado, RoleCoordinador, RoleEstudiante, RoleEmpresa:
		return true
	default:
		return false
	}
}

// Credential is one row of the username/password table. Passwords are the
// demo plaintext set; the portal has no real account security.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session is the single current-session record persisted under the auth key.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Ts       int64  `json:"ts"`
}
