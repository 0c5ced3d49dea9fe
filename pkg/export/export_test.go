package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/internal/models"
)

func TestSurveyResultsPadsShortResponses(t *testing.T) {
	survey := models.Survey{
		ID:        "survey_1",
		Titulo:    "Empleabilidad",
		Preguntas: []string{"¿Trabajas?", "Sector:", "Cargo:"},
	}
	responses := []models.SurveyResponse{
		{Username: "egresado1", Respuestas: []string{"Sí", "Tecnología", "Analista"}, EnviadaEn: 1756600000000},
		{Username: "egresado2", Respuestas: []string{"No"}, EnviadaEn: 1756600000000},
	}

	data := SurveyResults(survey, responses)
	require.Equal(t, []string{"Usuario", "Enviada", "¿Trabajas?", "Sector:", "Cargo:"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Analista", data.Rows[0][4])
	assert.Equal(t, "No", data.Rows[1][2])
	assert.Equal(t, "", data.Rows[1][3])
	assert.Equal(t, "", data.Rows[1][4])
}

func TestEventAttendanceDataset(t *testing.T) {
	comment := "Llegaré tarde"
	event := models.Event{ID: "event_1", Titulo: "Feria"}
	records := []models.EventAttendance{
		{Username: "egresado1", Estado: models.AttendanceStatusSi, RegistradoEn: 1756600000000},
		{Username: "egresado2", Estado: models.AttendanceStatusTalvez, Comentario: &comment, RegistradoEn: 1756600000000},
	}

	data := EventAttendance(event, records)
	require.Equal(t, []string{"Usuario", "Estado", "Comentario", "Registrado"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "si", data.Rows[0][1])
	assert.Equal(t, "", data.Rows[0][2])
	assert.Equal(t, "talvez", data.Rows[1][1])
	assert.Equal(t, comment, data.Rows[1][2])
}

func TestRenderCSV(t *testing.T) {
	data := Dataset{
		Headers: []string{"Usuario", "Estado"},
		Rows: [][]string{
			{"egresado1", "si"},
			{"egresado2"},
		},
	}

	raw, err := RenderCSV(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Usuario,Estado", lines[0])
	assert.Equal(t, "egresado1,si", lines[1])
	// Short rows are padded to the header width.
	assert.Equal(t, "egresado2,", lines[2])
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Dataset{})
	require.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	data := Dataset{
		Headers: []string{"Usuario", "Estado"},
		Rows:    [][]string{{"egresado1", "si"}},
	}

	raw, err := RenderPDF(data, "Asistencia")
	require.NoError(t, err)
	assert.True(t, len(raw) > 0)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestRenderPDFRequiresHeaders(t *testing.T) {
	_, err := RenderPDF(Dataset{}, "x")
	require.Error(t, err)
}
