// Package seed populates baseline demo content on an empty store. Each
// block is guarded by an is-the-collection-empty check, so running it again
// never duplicates rows or overwrites user data.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/internal/repository"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// Seeder inserts the default survey, event, notice, and demo profile.
type Seeder struct {
	graduates *repository.GraduateRepository
	surveys   *repository.SurveyRepository
	events    *repository.EventRepository
	notices   *repository.NoticeRepository
	logger    *zap.Logger
}

// New constructs a Seeder over the given store.
func New(store blobstore.Store, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		graduates: repository.NewGraduateRepository(store),
		surveys:   repository.NewSurveyRepository(store),
		events:    repository.NewEventRepository(store),
		notices:   repository.NewNoticeRepository(store),
		logger:    logger,
	}
}

// Run performs the idempotent population. Partial failures leave whatever
// already succeeded in place; there is no rollback.
func (s *Seeder) Run(ctx context.Context) error {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return err
	}
	if len(surveys) == 0 {
		if _, err := s.surveys.Create(ctx, repository.SurveyInput{
			Titulo: "Encuesta de Empleabilidad – Cohorte 2022",
			Preguntas: []string{
				"¿Te encuentras trabajando actualmente?",
				"Sector donde laboras:",
				"Cargo actual:",
				"Tiempo desde que iniciaste en el puesto (meses):",
				"¿Tu trabajo se relaciona con tu carrera?",
			},
			Activa: true,
		}); err != nil {
			return err
		}
		s.logger.Info("seeded default survey")
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		link := "https://meet.example/untels"
		description := "Reencuentro, networking y oportunidades laborales."
		if _, err := s.events.Create(ctx, repository.EventInput{
			Titulo:      "UNTELS · Jornada de Seguimiento de Egresados",
			FechaISO:    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			Modalidad:   models.EventModalityVirtual,
			Link:        &link,
			Descripcion: &description,
		}); err != nil {
			return err
		}
		s.logger.Info("seeded default event")
	}

	notices, err := s.notices.List(ctx)
	if err != nil {
		return err
	}
	if len(notices) == 0 {
		if _, err := s.notices.Create(ctx,
			"Bienvenidos al Sistema de Seguimiento de Egresados – UNTELS",
			"Actualiza tu perfil, participa en encuestas y entérate de los próximos eventos.",
		); err != nil {
			return err
		}
		s.logger.Info("seeded default notice")
	}

	// Demo profile: upsert by username is already idempotent.
	if _, err := s.graduates.Upsert(ctx, demoProfile()); err != nil {
		return err
	}

	return nil
}

func demoProfile() models.GraduateProfile {
	nombres := "Juan"
	apellidos := "Pérez"
	email := "egresado1@untels.edu.pe"
	carrera := "Ingeniería de Sistemas"
	anio := 2024
	telefono := "999-999-999"
	ciudad := "Lima"
	pais := "Perú"
	return models.GraduateProfile{
		Username:           "egresado1",
		Nombres:            &nombres,
		Apellidos:          &apellidos,
		EmailInstitucional: &email,
		Carrera:            &carrera,
		AnioEgreso:         &anio,
		Telefono:           &telefono,
		Skills:             []string{"SQL", "React", "Git"},
		Intereses:          []string{"Desarrollo web", "Cloud"},
		EmpleoActual: &models.JobRecord{
			Empresa:   "Tech Lima",
			Cargo:     "Practicante TI",
			Modalidad: models.JobModalityPracticas,
			Ciudad:    &ciudad,
			Pais:      &pais,
		},
	}
}
