package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	invoiceMocks "venue/internal/domains/invoice/mocks"
	"venue/internal/domains/invoice/model"
	"venue/internal/domains/invoice/service"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const (
	testInvoiceID = "1e6f2a4b-0000-4000-8000-000000000001"
	testEventID   = "1e6f2a4b-0000-4000-8000-000000000002"
)

func newInvoiceService(ctrl *gomock.Controller) (service.Invoices, *invoiceMocks.MockInvoice, *cacheMocks.MockRedisCache) {
	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func storedInvoice() model.Invoice {
	return model.Invoice{
		ID:            testInvoiceID,
		EventID:       testEventID,
		InvoiceNumber: "INV-20260314-0a1b2c3d",
		TotalAmount:   decimal.NewFromInt(1900000),
		Status:        model.StatusPending,
	}
}

func TestInvoiceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newInvoiceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss falls back to the repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Invoice{storedInvoice()}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
		})
	}
}

func TestInvoiceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newInvoiceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "invoice with details",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedInvoice(), nil)
				mockRepo.EXPECT().
					GetDetails(gomock.Any(), testInvoiceID).
					Return([]model.InvoiceDetail{
						{
							ID:          "d-1",
							InvoiceID:   testInvoiceID,
							ItemType:    model.ItemTypeRoom,
							Description: "Room: Main Hall",
							Quantity:    1,
							UnitPrice:   decimal.NewFromInt(1000000),
							Subtotal:    decimal.NewFromInt(1000000),
						},
					}, nil)
			},
		},
		{
			name: "invoice not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Get(ctx, testInvoiceID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testInvoiceID, res.ID)
			assert.Len(t, res.Details, 1)
		})
	}
}

func TestInvoiceService_GetByEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newInvoiceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "invoice found for the event",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedInvoice(), nil)
				mockRepo.EXPECT().
					GetDetails(gomock.Any(), testInvoiceID).
					Return([]model.InvoiceDetail{}, nil)
			},
		},
		{
			name: "event has no invoice",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.GetByEvent(ctx, testEventID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testEventID, res.EventID)
		})
	}
}
