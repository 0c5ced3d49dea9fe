package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

type noticeRepository interface {
	Create(ctx context.Context, title, body string) (models.Notice, error)
	List(ctx context.Context) ([]models.Notice, error)
}

// NoticeService publishes global announcements.
type NoticeService struct {
	notices   noticeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs a NoticeService instance.
func NewNoticeService(notices noticeRepository, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NoticeService{notices: notices, validator: validate, logger: logger}
}

// PublishNoticeInput carries one announcement.
type PublishNoticeInput struct {
	Titulo string `validate:"required"`
	Cuerpo string `validate:"required"`
}

// PublishNotice appends a global announcement.
func (s *NoticeService) PublishNotice(ctx context.Context, input PublishNoticeInput) (models.Notice, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.Notice{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "notice needs a title and a body")
	}
	notice, err := s.notices.Create(ctx, input.Titulo, input.Cuerpo)
	if err != nil {
		return models.Notice{}, err
	}
	s.logger.Info("notice published", zap.String("notice_id", notice.ID))
	return notice, nil
}

// List returns all announcements, newest first.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	return s.notices.List(ctx)
}
