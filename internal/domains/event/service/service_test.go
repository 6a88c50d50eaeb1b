package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	accountMocks "venue/internal/domains/account/mocks"
	eventMocks "venue/internal/domains/event/mocks"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/internal/domains/event/service"
	invoiceMocks "venue/internal/domains/invoice/mocks"
	notifMocks "venue/internal/domains/notification/mocks"
	roomMocks "venue/internal/domains/room/mocks"
	roomModel "venue/internal/domains/room/model"
	servicesMocks "venue/internal/domains/services/mocks"
	servicesModel "venue/internal/domains/services/model"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/timezone"
)

const (
	testRoomID      = "3f1a9c2e-0000-4000-8000-000000000001"
	testServiceID   = "3f1a9c2e-0000-4000-8000-000000000002"
	testVariationID = "3f1a9c2e-0000-4000-8000-000000000003"
	testEventID     = "3f1a9c2e-0000-4000-8000-000000000004"
	testAccountID   = "3f1a9c2e-0000-4000-8000-000000000005"
)

type eventFixture struct {
	repo          *eventMocks.MockEvent
	serviceRepo   *eventMocks.MockEventService
	typeRepo      *eventMocks.MockEventType
	roomRepo      *roomMocks.MockRoom
	catalogRepo   *servicesMocks.MockService
	variationRepo *servicesMocks.MockVariation
	accountRepo   *accountMocks.MockAccount
	invoiceRepo   *invoiceMocks.MockInvoice
	notifier      *notifMocks.MockNotifications
	cache         *cacheMocks.MockRedisCache
	svc           service.Events
}

func newEventFixture(ctrl *gomock.Controller) *eventFixture {
	f := &eventFixture{
		repo:          eventMocks.NewMockEvent(ctrl),
		serviceRepo:   eventMocks.NewMockEventService(ctrl),
		typeRepo:      eventMocks.NewMockEventType(ctrl),
		roomRepo:      roomMocks.NewMockRoom(ctrl),
		catalogRepo:   servicesMocks.NewMockService(ctrl),
		variationRepo: servicesMocks.NewMockVariation(ctrl),
		accountRepo:   accountMocks.NewMockAccount(ctrl),
		invoiceRepo:   invoiceMocks.NewMockInvoice(ctrl),
		notifier:      notifMocks.NewMockNotifications(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.UpdateLockHours = 24
	cfg.Booking.InvoiceDueDays = 7

	f.svc = service.New(
		f.repo, f.serviceRepo, f.typeRepo,
		f.roomRepo, f.catalogRepo, f.variationRepo,
		f.accountRepo, f.invoiceRepo, f.notifier,
		cfg, f.cache, mocks.NewOtel(),
	)

	// Cache invalidation runs off the request path and is never the
	// subject of these tests.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func testContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func bookableRoom() roomModel.Room {
	return roomModel.Room{
		ID:        testRoomID,
		Name:      "Main Hall",
		BasePrice: decimal.NewFromInt(1000000),
		Status:    roomModel.StatusAvailable,
		Active:    true,
	}
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)
	fee := decimal.NewFromInt(500000)
	variationID := testVariationID

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantCost  decimal.Decimal
	}{
		{
			name: "room only",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.repo.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCost: decimal.NewFromInt(1000000),
		},
		{
			name: "room with services and fee",
			req: dto.CreateEventRequest{
				Name:           "Annual Gala",
				EventDate:      "2026-03-14",
				RoomID:         testRoomID,
				RoomServiceFee: &fee,
				Services: []dto.BookedServiceRequest{
					{ServiceID: testServiceID, VariationID: &variationID, Quantity: 2},
				},
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.catalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servicesModel.Service{
						ID:          testServiceID,
						Name:        "Catering",
						IsAvailable: true,
						Active:      true,
					}, nil)
				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servicesModel.Variation{
						ID:        testVariationID,
						ServiceID: testServiceID,
						Name:      "Buffet",
						BasePrice: decimal.NewFromInt(200000),
						Active:    true,
					}, nil)
				f.repo.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCost: decimal.NewFromInt(1900000),
		},
		{
			name: "room does not exist",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room under maintenance",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				room := bookableRoom()
				room.Status = roomModel.StatusMaintenance

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "variation belongs to another service",
			req: dto.CreateEventRequest{
				Name:      "Annual Gala",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
				Services: []dto.BookedServiceRequest{
					{ServiceID: testServiceID, VariationID: &variationID},
				},
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.catalogRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servicesModel.Service{
						ID:          testServiceID,
						Name:        "Catering",
						IsAvailable: true,
						Active:      true,
					}, nil)
				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servicesModel.Variation{
						ID:        testVariationID,
						ServiceID: "another-service",
						Name:      "Buffet",
						Active:    true,
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid event date",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "14-03-2026",
				RoomID:    testRoomID,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inactive room",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				room := bookableRoom()
				room.Active = false

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "room window already taken",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.repo.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("room is already booked for the requested window"))
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateEventRequest{
				Name:      "Board Meeting",
				EventDate: "2026-03-14",
				RoomID:    testRoomID,
			},
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.repo.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(testContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.wantCost.Equal(res.EstimatedCost),
				"estimated cost %s, want %s", res.EstimatedCost, tt.wantCost)
		})
	}
}

func TestEventService_Create_SendsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)
	accountID := testAccountID

	f.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookableRoom(), nil)
	f.accountRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(nil)
	f.notifier.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := f.svc.Create(testContext(), dto.CreateEventRequest{
		Name:      "Board Meeting",
		EventDate: "2026-03-14",
		RoomID:    testRoomID,
		AccountID: &accountID,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.Status)
}

func TestEventService_ToggleConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "pending becomes confirmed",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusPending}, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				f.serviceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.EventService{}, nil)
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "confirmed becomes pending",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusConfirmed}, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				f.serviceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.EventService{}, nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "completed events cannot toggle",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusCompleted}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "event not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.ToggleConfirmation(testContext(), testEventID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestEventService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	tests := []struct {
		name      string
		current   string
		target    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "confirmed to completed",
			current: model.StatusConfirmed,
			target:  model.StatusCompleted,
			setupMock: func() {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				f.serviceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.EventService{}, nil)
			},
		},
		{
			name:    "pending to cancelled",
			current: model.StatusPending,
			target:  model.StatusCancelled,
			setupMock: func() {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				f.serviceRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.EventService{}, nil)
			},
		},
		{
			name:      "completed events are final",
			current:   model.StatusCompleted,
			target:    model.StatusCancelled,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "cancelled events are final",
			current:   model.StatusCancelled,
			target:    model.StatusConfirmed,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Event{ID: testEventID, Name: "Gala", Status: tt.current}, nil)

			tt.setupMock()

			res, err := f.svc.SetStatus(testContext(), testEventID, dto.SetStatusRequest{Status: tt.target})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.target, res.Status)
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	tests := []struct {
		name        string
		force       bool
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantMsg     string
		wantMsgFree string
	}{
		{
			name: "clean event deletes",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusPending}, nil)
				f.repo.EXPECT().
					DependentCounts(gomock.Any(), testEventID).
					Return(model.Dependents{}, nil)
				f.repo.EXPECT().
					DeleteCascade(gomock.Any(), testEventID).
					Return(nil)
			},
		},
		{
			name: "dependents block the delete",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusPending}, nil)
				f.repo.EXPECT().
					DependentCounts(gomock.Any(), testEventID).
					Return(model.Dependents{EventServices: 2, HasInvoice: true}, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusConflict,
			wantMsg:     "2 booked service(s), an invoice",
			wantMsgFree: "payment",
		},
		{
			name:  "force overrides the dependents",
			force: true,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{ID: testEventID, Name: "Gala", Status: model.StatusPending}, nil)
				f.repo.EXPECT().
					DependentCounts(gomock.Any(), testEventID).
					Return(model.Dependents{EventServices: 2, Payments: 1, HasInvoice: true}, nil)
				f.repo.EXPECT().
					DeleteCascade(gomock.Any(), testEventID).
					Return(nil)
			},
		},
		{
			name: "event not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(testContext(), testEventID, tt.force)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}

				if tt.wantMsgFree != "" {
					assert.NotContains(t, err.Error(), tt.wantMsgFree)
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEventService_Update_LockWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	newName := "Renamed Gala"
	soon := timezone.Now().Add(2 * time.Hour)
	end := soon.Add(4 * time.Hour)
	current := model.Event{
		ID:        testEventID,
		Name:      "Gala",
		Status:    model.StatusConfirmed,
		StartTime: &soon,
		EndTime:   &end,
	}

	t.Run("owner is locked out near the start", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		_, err := f.svc.Update(testContext(), dto.UpdateEventRequest{Name: &newName}, testEventID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("staff may still modify", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-staff-id")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)
		f.repo.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any()).
			Return(nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)
		f.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.EventService{}, nil)

		_, err := f.svc.Update(ctx, dto.UpdateEventRequest{Name: &newName}, testEventID)

		assert.NoError(t, err)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := f.svc.Update(testContext(), dto.UpdateEventRequest{}, testEventID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestEventService_CheckRoomAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(4 * time.Hour)}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantAvailable bool
		wantReason    string
	}{
		{
			name: "room is free",
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.repo.EXPECT().
					RoomConflicts(gomock.Any(), testRoomID, window, "").
					Return([]model.Conflict{}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "room is taken",
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookableRoom(), nil)
				f.repo.EXPECT().
					RoomConflicts(gomock.Any(), testRoomID, window, "").
					Return([]model.Conflict{{EventID: testEventID, EventName: "Gala"}}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is already booked in the requested window",
		},
		{
			name: "room under maintenance is never available",
			setupMock: func() {
				room := bookableRoom()
				room.Status = roomModel.StatusMaintenance

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
				f.repo.EXPECT().
					RoomConflicts(gomock.Any(), testRoomID, window, "").
					Return([]model.Conflict{}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is not open for booking",
		},
		{
			name: "inactive room is never available",
			setupMock: func() {
				room := bookableRoom()
				room.Active = false

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
				f.repo.EXPECT().
					RoomConflicts(gomock.Any(), testRoomID, window, "").
					Return([]model.Conflict{}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is not open for booking",
		},
		{
			name: "room does not exist",
			setupMock: func() {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.CheckRoomAvailability(testContext(), testRoomID, window)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.wantReason, res.Reason)
		})
	}
}

func TestEventService_CheckVariationAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEventFixture(ctrl)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(4 * time.Hour)}

	activeVariation := servicesModel.Variation{
		ID:        testVariationID,
		ServiceID: testServiceID,
		Name:      "Buffet",
		Active:    true,
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantAvailable bool
		wantReason    string
	}{
		{
			name: "variation is free",
			setupMock: func() {
				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeVariation, nil)
				f.repo.EXPECT().
					VariationConflicts(gomock.Any(), testVariationID, window, "").
					Return([]model.Conflict{}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "inactive variation is never available",
			setupMock: func() {
				inactive := activeVariation
				inactive.Active = false

				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
				f.repo.EXPECT().
					VariationConflicts(gomock.Any(), testVariationID, window, "").
					Return([]model.Conflict{}, nil)
			},
			wantAvailable: false,
			wantReason:    "variation is not open for booking",
		},
		{
			name: "variation is taken",
			setupMock: func() {
				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeVariation, nil)
				f.repo.EXPECT().
					VariationConflicts(gomock.Any(), testVariationID, window, "").
					Return([]model.Conflict{{EventID: testEventID, EventName: "Gala"}}, nil)
			},
			wantAvailable: false,
			wantReason:    "variation is already booked in the requested window",
		},
		{
			name: "variation does not exist",
			setupMock: func() {
				f.variationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servicesModel.Variation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.CheckVariationAvailability(testContext(), testVariationID, window)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.wantReason, res.Reason)
		})
	}
}
