package models

// EventModality says whether an event happens online or on site.
type EventModality string

const (
	EventModalityVirtual    EventModality = "virtual"
	EventModalityPresencial EventModality = "presencial"
)

// Valid returns true when the modality is a supported value.
func (m EventModality) Valid() bool {
	switch m {
	case EventModalityVirtual, EventModalityPresencial:
		return true
	default:
		return false
	}
}

// Event is one alumni event. FechaISO carries the date as YYYY-MM-DD, which
// also defines the calendar sort order.
type Event struct {
	ID          string        `json:"id"`
	Titulo      string        `json:"titulo"`
	FechaISO    string        `json:"fechaISO"`
	Modalidad   EventModality `json:"modalidad"`
	Link        *string       `json:"link,omitempty"`
	Lugar       *string       `json:"lugar,omitempty"`
	Descripcion *string       `json:"descripcion,omitempty"`
	CreadaEn    int64         `json:"creadaEn"`
}

// AttendanceStatus is a yes/no/maybe RSVP.
type AttendanceStatus string

const (
	AttendanceStatusSi     AttendanceStatus = "si"
	AttendanceStatusNo     AttendanceStatus = "no"
	AttendanceStatusTalvez AttendanceStatus = "talvez"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusSi, AttendanceStatusNo, AttendanceStatusTalvez:
		return true
	default:
		return false
	}
}

// EventAttendance is one user's RSVP for one event. The username is stored
// lowercased so repeat registrations land on the same record.
type EventAttendance struct {
	ID           string           `json:"id"`
	EventID      string           `json:"eventId"`
	Username     string           `json:"username"`
	Estado       AttendanceStatus `json:"estado"`
	Comentario   *string          `json:"comentario,omitempty"`
	RegistradoEn int64            `json:"registradoEn"`
}

// EventMessage is one chat entry in an event's open thread.
type EventMessage struct {
	ID           string `json:"id"`
	EventID      string `json:"eventId"`
	FromUsername string `json:"fromUsername"`
	FromRole     Role   `json:"fromRole"`
	Cuerpo       string `json:"cuerpo"`
	EnviadaEn    int64  `json:"enviadaEn"`
}

// Notice is one global announcement.
type Notice struct {
	ID       string `json:"id"`
	Titulo   string `json:"titulo"`
	Cuerpo   string `json:"cuerpo"`
	CreadaEn int64  `json:"creadaEn"`
}
