package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/config"
	"venue/infras/kafka"
	"venue/infras/otel"
	"venue/internal/domains/notification/model"
	"venue/internal/domains/notification/model/dto"
	"venue/internal/domains/notification/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notifications interface {
	Send(ctx context.Context, req dto.SendNotificationRequest) error
	GetAll(ctx context.Context, accountID string, params gDto.QueryParams) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Notifications {
	return &serviceImpl{
		repo:  repo,
		kafka: kafkaClient,
		cfg:   cfg,
		otel:  otel,
	}
}

// Send stores the notification and relays it to the notification topic. The
// relay is best effort: a broker outage never fails the caller.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	notification := req.ToModel(user)

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to store notification")

		return fmt.Errorf("failed to store notification: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: notification.ID, Value: notification}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Notifications, message); err != nil {
			log.Error().Err(err).Str("notificationID", notification.ID).Msg("failed to publish notification")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, accountID string, params gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(accountID, model.FieldAccountID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldRead: true,
		"modified_by":   user,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}
