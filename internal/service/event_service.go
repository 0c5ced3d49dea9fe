package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/internal/repository"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

type eventRepository interface {
	Create(ctx context.Context, input repository.EventInput) (models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

type attendanceRepository interface {
	Register(ctx context.Context, username, eventID string, status models.AttendanceStatus, comment *string) (models.EventAttendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.EventAttendance, error)
}

type eventMessageRepository interface {
	Append(ctx context.Context, input repository.EventMessageInput) (models.EventMessage, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.EventMessage, error)
}

// EventService provides the event calendar, RSVP, and event chat use cases.
type EventService struct {
	events     eventRepository
	attendance attendanceRepository
	messages   eventMessageRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewEventService constructs an EventService instance.
func NewEventService(events eventRepository, attendance attendanceRepository, messages eventMessageRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EventService{events: events, attendance: attendance, messages: messages, validator: validate, logger: logger}
}

// CreateEventInput carries a new calendar entry.
type CreateEventInput struct {
	Titulo      string `validate:"required"`
	FechaISO    string `validate:"required,datetime=2006-01-02"`
	Modalidad   models.EventModality
	Link        *string
	Lugar       *string
	Descripcion *string
}

// CreateEvent publishes a calendar entry.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (models.Event, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.Event{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "event needs a title and a YYYY-MM-DD date")
	}
	if !input.Modalidad.Valid() {
		return models.Event{}, appErrors.Clone(appErrors.ErrValidation, "unknown event modality")
	}
	event, err := s.events.Create(ctx, repository.EventInput{
		Titulo:      input.Titulo,
		FechaISO:    input.FechaISO,
		Modalidad:   input.Modalidad,
		Link:        input.Link,
		Lugar:       input.Lugar,
		Descripcion: input.Descripcion,
	})
	if err != nil {
		return models.Event{}, err
	}
	s.logger.Info("event created", zap.String("event_id", event.ID), zap.String("fecha", event.FechaISO))
	return event, nil
}

// RegisterAttendanceInput carries one RSVP.
type RegisterAttendanceInput struct {
	EventID    string `validate:"required"`
	Username   string `validate:"required"`
	Estado     models.AttendanceStatus
	Comentario *string
}

// RegisterAttendance upserts the user's RSVP for an existing event.
func (s *EventService) RegisterAttendance(ctx context.Context, input RegisterAttendanceInput) (models.EventAttendance, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.EventAttendance{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "event id and username are required")
	}
	if !input.Estado.Valid() {
		return models.EventAttendance{}, appErrors.Clone(appErrors.ErrValidation, "unknown attendance status")
	}
	if _, err := s.events.Get(ctx, input.EventID); err != nil {
		return models.EventAttendance{}, err
	}
	return s.attendance.Register(ctx, input.Username, input.EventID, input.Estado, input.Comentario)
}

// PostMessageInput carries one event chat entry.
type PostMessageInput struct {
	EventID      string `validate:"required"`
	FromUsername string `validate:"required"`
	FromRole     models.Role
	Cuerpo       string `validate:"required"`
}

// PostMessage appends a chat message to an existing event's thread.
func (s *EventService) PostMessage(ctx context.Context, input PostMessageInput) (models.EventMessage, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.EventMessage{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "event id, sender, and body are required")
	}
	if _, err := s.events.Get(ctx, input.EventID); err != nil {
		return models.EventMessage{}, err
	}
	return s.messages.Append(ctx, repository.EventMessageInput{
		EventID:      input.EventID,
		FromUsername: input.FromUsername,
		FromRole:     input.FromRole,
		Cuerpo:       input.Cuerpo,
	})
}

// Attendance returns an event's RSVPs in registration order.
func (s *EventService) Attendance(ctx context.Context, eventID string) ([]models.EventAttendance, error) {
	return s.attendance.ListByEvent(ctx, eventID)
}

// Messages returns an event's chat thread, oldest first.
func (s *EventService) Messages(ctx context.Context, eventID string) ([]models.EventMessage, error) {
	return s.messages.ListByEvent(ctx, eventID)
}
