package export

import (
	"time"

	"github.com/untels-dev/portal-core/internal/models"
)

// SurveyResults builds a dataset with one row per response. Answers are laid
// out positionally under their question headers; short responses leave the
// remaining columns blank.
func SurveyResults(survey models.Survey, responses []models.SurveyResponse) Dataset {
	headers := append([]string{"Usuario", "Enviada"}, survey.Preguntas...)
	rows := make([][]string, 0, len(responses))
	for _, response := range responses {
		row := []string{response.Username, formatMillis(response.EnviadaEn)}
		for i := range survey.Preguntas {
			if i < len(response.Respuestas) {
				row = append(row, response.Respuestas[i])
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return Dataset{Headers: headers, Rows: rows}
}

// EventAttendance builds a dataset with one row per RSVP.
func EventAttendance(event models.Event, records []models.EventAttendance) Dataset {
	headers := []string{"Usuario", "Estado", "Comentario", "Registrado"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		comment := ""
		if record.Comentario != nil {
			comment = *record.Comentario
		}
		rows = append(rows, []string{
			record.Username,
			string(record.Estado),
			comment,
			formatMillis(record.RegistradoEn),
		})
	}
	return Dataset{Headers: headers, Rows: rows}
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
