package models

// Offer is one job-fair posting owned by a company account. Append-only.
type Offer struct {
	ID              string      `json:"id"`
	Titulo          string      `json:"titulo"`
	Descripcion     string      `json:"descripcion"`
	Modalidad       JobModality `json:"modalidad"`
	EmpresaUsername string      `json:"empresaUsername"`
	CreadaEn        int64       `json:"creadaEn"`
}

// ApplicationStatus tracks the review pipeline of an application.
type ApplicationStatus string

const (
	ApplicationStatusEnviada    ApplicationStatus = "enviada"
	ApplicationStatusEnRevision ApplicationStatus = "en revisión"
	ApplicationStatusEntrevista ApplicationStatus = "entrevista"
	ApplicationStatusRechazada  ApplicationStatus = "rechazada"
	ApplicationStatusAceptada   ApplicationStatus = "aceptada"
)

// Valid returns true when the status is a supported value.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusEnviada, ApplicationStatusEnRevision, ApplicationStatusEntrevista,
		ApplicationStatusRechazada, ApplicationStatusAceptada:
		return true
	default:
		return false
	}
}

// Application links a student to an offer. The offer title and company are
// denormalised so listings render without a second lookup. At most one
// application exists per (offer, student) pair.
type Application struct {
	ID                 string            `json:"id"`
	OfferID            string            `json:"offerId"`
	OfferTitulo        string            `json:"offerTitulo"`
	EmpresaUsername    string            `json:"empresaUsername"`
	EstudianteUsername string            `json:"estudianteUsername"`
	Estado             ApplicationStatus `json:"estado"`
	CreadaEn           int64             `json:"creadaEn"`
}

// Message is one chat entry in a per-application thread.
type Message struct {
	ID           string `json:"id"`
	FromUsername string `json:"fromUsername"`
	FromRole     Role   `json:"fromRole"`
	Cuerpo       string `json:"cuerpo"`
	EnviadaEn    int64  `json:"enviadaEn"`
}
