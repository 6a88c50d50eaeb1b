package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	kafkaMocks "venue/infras/kafka/mocks"
	"venue/infras/otel/mocks"
	notifMocks "venue/internal/domains/notification/mocks"
	"venue/internal/domains/notification/model"
	"venue/internal/domains/notification/model/dto"
	"venue/internal/domains/notification/service"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

func TestNotificationService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notifMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Notifications = "venue.notifications"

	svc := service.New(mockRepo, mockKafka, cfg, mocks.NewOtel())

	// The relay runs off the request path and must never fail the caller.
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "venue.notifications", gomock.Any()).
		Return(errors.New("broker unreachable")).
		AnyTimes()

	accountID := "7c3d9e2f-0000-4000-8000-000000000001"

	tests := []struct {
		name      string
		req       dto.SendNotificationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stored and relayed",
			req: dto.SendNotificationRequest{
				AccountID: &accountID,
				Title:     "Booking created",
				Message:   "Your event has been booked",
				Type:      model.TypeBookingCreated,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "store failure surfaces",
			req: dto.SendNotificationRequest{
				AccountID: &accountID,
				Title:     "Booking created",
				Message:   "Your event has been booked",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Send(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notifMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockKafka, &config.Config{}, mocks.NewOtel())

	accountID := "7c3d9e2f-0000-4000-8000-000000000001"

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Notification{
			{ID: "n-1", AccountID: &accountID, Title: "Booking created"},
			{ID: "n-2", AccountID: &accountID, Title: "Payment received"},
		}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.GetAll(ctx, accountID, gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Notifications, 2)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notifMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockKafka, &config.Config{}, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "marked as read",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "notification not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.MarkRead(ctx, "n-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
