package models

// Survey is one questionnaire published by the coordination office.
type Survey struct {
	ID        string   `json:"id"`
	Titulo    string   `json:"titulo"`
	Preguntas []string `json:"preguntas"`
	Activa    bool     `json:"activa"`
	CreadaEn  int64    `json:"creadaEn"`
}

// SurveyResponse is one graduate's submission. Answers correspond
// positionally to the survey questions. At most one response exists per
// (survey, username) pair.
type SurveyResponse struct {
	ID         string   `json:"id"`
	SurveyID   string   `json:"surveyId"`
	Username   string   `json:"username"`
	Respuestas []string `json:"respuestas"`
	EnviadaEn  int64    `json:"enviadaEn"`
}
