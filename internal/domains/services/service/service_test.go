package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	servicesMocks "venue/internal/domains/services/mocks"
	"venue/internal/domains/services/model"
	"venue/internal/domains/services/model/dto"
	"venue/internal/domains/services/service"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	"venue/shared/failure"
)

const (
	testServiceID     = "4c8d5e6f-0000-4000-8000-000000000001"
	testServiceTypeID = "4c8d5e6f-0000-4000-8000-000000000002"
)

type catalogFixture struct {
	repo          *servicesMocks.MockService
	variationRepo *servicesMocks.MockVariation
	typeRepo      *servicesMocks.MockServiceType
	svc           service.Services
}

func newCatalogFixture(ctrl *gomock.Controller) *catalogFixture {
	f := &catalogFixture{
		repo:          servicesMocks.NewMockService(ctrl),
		variationRepo: servicesMocks.NewMockVariation(ctrl),
		typeRepo:      servicesMocks.NewMockServiceType(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.variationRepo, f.typeRepo, cfg, mockCache, mocks.NewOtel())

	return f
}

func TestServicesService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCatalogFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "service created",
			setupMock: func() {
				f.typeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "service type does not exist",
			setupMock: func() {
				f.typeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Create(ctx, dto.CreateServiceRequest{
				Name:          "Catering",
				ServiceTypeID: testServiceTypeID,
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestServicesService_CreateVariation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCatalogFixture(ctrl)

	activeService := model.Service{
		ID:          testServiceID,
		Name:        "Catering",
		IsAvailable: true,
		Active:      true,
	}

	tests := []struct {
		name      string
		req       dto.CreateVariationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "variation created under its service",
			req: dto.CreateVariationRequest{
				Name:      "Buffet",
				BasePrice: decimal.NewFromInt(200000),
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService, nil)
				f.variationRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "negative price",
			req: dto.CreateVariationRequest{
				Name:      "Buffet",
				BasePrice: decimal.NewFromInt(-1),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service not found",
			req: dto.CreateVariationRequest{
				Name:      "Buffet",
				BasePrice: decimal.NewFromInt(200000),
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Service{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive service refuses variations",
			req: dto.CreateVariationRequest{
				Name:      "Buffet",
				BasePrice: decimal.NewFromInt(200000),
			},
			setupMock: func() {
				inactive := activeService
				inactive.Active = false

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.CreateVariation(ctx, testServiceID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
