package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	eventMocks "venue/internal/domains/event/mocks"
	eventModel "venue/internal/domains/event/model"
	reviewMocks "venue/internal/domains/review/mocks"
	"venue/internal/domains/review/model"
	"venue/internal/domains/review/model/dto"
	"venue/internal/domains/review/service"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const (
	testEventID   = "9d4e0f3a-0000-4000-8000-000000000001"
	testAccountID = "9d4e0f3a-0000-4000-8000-000000000002"
	testReviewID  = "9d4e0f3a-0000-4000-8000-000000000003"
	testRoomID    = "9d4e0f3a-0000-4000-8000-000000000004"
)

func newReviewService(ctrl *gomock.Controller) (service.Reviews, *reviewMocks.MockReview, *eventMocks.MockEvent) {
	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockEventRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockEventRepo
}

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEventRepo := newReviewService(ctrl)

	accountID := testAccountID
	comment := "Great venue"

	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "review recorded",
			req: dto.CreateReviewRequest{
				EventID:   testEventID,
				AccountID: &accountID,
				Rating:    5,
				Comment:   &comment,
			},
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(eventModel.Event{ID: testEventID, Status: eventModel.StatusCompleted}, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "anonymous review skips the duplicate check",
			req: dto.CreateReviewRequest{
				EventID: testEventID,
				Rating:  4,
			},
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(eventModel.Event{ID: testEventID, Status: eventModel.StatusCompleted}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "one review per account and event",
			req: dto.CreateReviewRequest{
				EventID:   testEventID,
				AccountID: &accountID,
				Rating:    3,
			},
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(eventModel.Event{ID: testEventID, Status: eventModel.StatusCompleted}, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "event does not exist",
			req: dto.CreateReviewRequest{
				EventID: testEventID,
				Rating:  5,
			},
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(eventModel.Event{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Rating, res.Rating)
		})
	}
}

func TestReviewService_GetAllByEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newReviewService(ctrl)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Review{
			{ID: testReviewID, EventID: testEventID, Rating: 5},
		}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.GetAllByEvent(ctx, testEventID, gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Reviews, 1)
}

func TestReviewService_GetAllByRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newReviewService(ctrl)

	mockRepo.EXPECT().
		CountByRoom(gomock.Any(), testRoomID).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAllByRoom(gomock.Any(), testRoomID, gomock.Any()).
		Return([]model.Review{
			{ID: testReviewID, EventID: testEventID, Rating: 5},
		}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.GetAllByRoom(ctx, testRoomID, gDto.QueryParams{Page: 1, Limit: 1})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Reviews, 1)
	assert.True(t, res.HasNext)
	assert.False(t, res.HasPrev)
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newReviewService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "review deleted",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "review not found",
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
			err := svc.Delete(ctx, testReviewID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
