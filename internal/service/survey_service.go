package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/internal/repository"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

type surveyRepository interface {
	Create(ctx context.Context, input repository.SurveyInput) (models.Survey, error)
	Get(ctx context.Context, id string) (*models.Survey, error)
	List(ctx context.Context) ([]models.Survey, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type responseRepository interface {
	Submit(ctx context.Context, username string, survey models.Survey, answers []string) (models.SurveyResponse, error)
	ListBySurvey(ctx context.Context, surveyID string) ([]models.SurveyResponse, error)
	HasResponded(ctx context.Context, username, surveyID string) (bool, error)
}

// SurveyService provides the coordinator and graduate survey use cases.
type SurveyService struct {
	surveys   surveyRepository
	responses responseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSurveyService constructs a SurveyService instance.
func NewSurveyService(surveys surveyRepository, responses responseRepository, validate *validator.Validate, logger *zap.Logger) *SurveyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SurveyService{surveys: surveys, responses: responses, validator: validate, logger: logger}
}

// CreateSurveyInput carries a new questionnaire.
type CreateSurveyInput struct {
	Titulo    string   `validate:"required"`
	Preguntas []string `validate:"required,min=1,dive,required"`
	Activa    bool
}

// CreateSurvey publishes a questionnaire.
func (s *SurveyService) CreateSurvey(ctx context.Context, input CreateSurveyInput) (models.Survey, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.Survey{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "survey needs a title and at least one question")
	}
	survey, err := s.surveys.Create(ctx, repository.SurveyInput{
		Titulo:    input.Titulo,
		Preguntas: input.Preguntas,
		Activa:    input.Activa,
	})
	if err != nil {
		return models.Survey{}, err
	}
	s.logger.Info("survey created", zap.String("survey_id", survey.ID), zap.Int("questions", len(survey.Preguntas)))
	return survey, nil
}

// SubmitResponseInput carries a graduate's answers.
type SubmitResponseInput struct {
	SurveyID   string `validate:"required"`
	Username   string `validate:"required"`
	Respuestas []string
}

// SubmitResponse records a graduate's answers. Answers correspond
// positionally to the survey questions; a second submission for the same
// (survey, user) pair returns the first response unchanged.
func (s *SurveyService) SubmitResponse(ctx context.Context, input SubmitResponseInput) (models.SurveyResponse, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.SurveyResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "survey id and username are required")
	}
	survey, err := s.surveys.Get(ctx, input.SurveyID)
	if err != nil {
		return models.SurveyResponse{}, err
	}
	if len(input.Respuestas) != len(survey.Preguntas) {
		return models.SurveyResponse{}, appErrors.Clone(appErrors.ErrValidation, "one answer per question is required")
	}
	return s.responses.Submit(ctx, input.Username, *survey, input.Respuestas)
}

// ToggleActive flips a survey's active flag.
func (s *SurveyService) ToggleActive(ctx context.Context, surveyID string, active bool) error {
	return s.surveys.SetActive(ctx, surveyID, active)
}

// HasResponded reports whether the user already answered the survey.
func (s *SurveyService) HasResponded(ctx context.Context, username, surveyID string) (bool, error) {
	return s.responses.HasResponded(ctx, username, surveyID)
}

// Results returns a survey together with every submitted response, for
// display or export.
func (s *SurveyService) Results(ctx context.Context, surveyID string) (models.Survey, []models.SurveyResponse, error) {
	survey, err := s.surveys.Get(ctx, surveyID)
	if err != nil {
		return models.Survey{}, nil, err
	}
	responses, err := s.responses.ListBySurvey(ctx, surveyID)
	if err != nil {
		return models.Survey{}, nil, err
	}
	return *survey, responses, nil
}
