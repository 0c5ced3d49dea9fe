package models

// JobModality classifies the employment arrangement of a job record.
type JobModality string

const (
	JobModalityPracticas JobModality = "practicas"
	JobModalityJunior    JobModality = "junior"
	JobModalityFullTime  JobModality = "full-time"
	JobModalityPartTime  JobModality = "part-time"
)

// Valid returns true when the modality is a supported value.
func (m JobModality) Valid() bool {
	switch m {
	case JobModalityPracticas, JobModalityJunior, JobModalityFullTime, JobModalityPartTime:
		return true
	default:
		return false
	}
}

// JobRecord is the nested current-employment block of a graduate profile.
type JobRecord struct {
	Empresa   string      `json:"empresa"`
	Cargo     string      `json:"cargo"`
	Sector    *string     `json:"sector,omitempty"`
	Modalidad JobModality `json:"modalidad,omitempty"`
	Ciudad    *string     `json:"ciudad,omitempty"`
	Pais      *string     `json:"pais,omitempty"`
	Desde     *int64      `json:"desde,omitempty"`
}

// GraduateProfile holds the free-form profile of one graduate, keyed by the
// auth username. All fields beyond the key are optional.
type GraduateProfile struct {
	Username           string     `json:"username"`
	DNI                *string    `json:"dni,omitempty"`
	Nombres            *string    `json:"nombres,omitempty"`
	Apellidos          *string    `json:"apellidos,omitempty"`
	EmailInstitucional *string    `json:"emailInstitucional,omitempty"`
	EmailPersonal      *string    `json:"emailPersonal,omitempty"`
	Telefono           *string    `json:"telefono,omitempty"`
	Carrera            *string    `json:"carrera,omitempty"`
	AnioEgreso         *int       `json:"anioEgreso,omitempty"`
	Direccion          *string    `json:"direccion,omitempty"`
	LinkedIn           *string    `json:"linkedin,omitempty"`
	Skills             []string   `json:"skills,omitempty"`
	Intereses          []string   `json:"intereses,omitempty"`
	EmpleoActual       *JobRecord `json:"empleoActual,omitempty"`
}

// Surname returns the sort key for the graduate directory.
func (p GraduateProfile) Surname() string {
	if p.Apellidos == nil {
		return ""
	}
	return *p.Apellidos
}

// CompanyProfile holds the institutional sheet of one company, keyed by the
// auth username.
type CompanyProfile struct {
	Username      string  `json:"username"`
	NombreEmpresa string  `json:"nombreEmpresa"`
	Email         string  `json:"email"`
	Telefono      *string `json:"telefono,omitempty"`
	RUC           *string `json:"ruc,omitempty"`
	Descripcion   *string `json:"descripcion,omitempty"`
}
