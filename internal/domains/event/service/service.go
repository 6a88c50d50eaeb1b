package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"venue/config"
	"venue/infras/otel"
	accountModel "venue/internal/domains/account/model"
	accountRepository "venue/internal/domains/account/repository"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/internal/domains/event/repository"
	invoiceRepository "venue/internal/domains/invoice/repository"
	notifModel "venue/internal/domains/notification/model"
	notifDto "venue/internal/domains/notification/model/dto"
	notifService "venue/internal/domains/notification/service"
	roomModel "venue/internal/domains/room/model"
	roomRepository "venue/internal/domains/room/repository"
	servicesModel "venue/internal/domains/services/model"
	servicesRepository "venue/internal/domains/services/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Events interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) (dto.EventResponse, error)
	Delete(ctx context.Context, id string, force bool) error
	ToggleConfirmation(ctx context.Context, id string) (dto.EventResponse, error)
	SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (dto.EventResponse, error)
	CheckRoomAvailability(ctx context.Context, roomID string, window model.Window) (dto.AvailabilityResponse, error)
	CheckVariationAvailability(ctx context.Context, variationID string, window model.Window) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo          repository.Event
	serviceRepo   repository.EventService
	typeRepo      repository.EventType
	roomRepo      roomRepository.Room
	catalogRepo   servicesRepository.Service
	variationRepo servicesRepository.Variation
	accountRepo   accountRepository.Account
	invoiceRepo   invoiceRepository.Invoice
	notifier      notifService.Notifications
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Event,
	serviceRepo repository.EventService,
	typeRepo repository.EventType,
	roomRepo roomRepository.Room,
	catalogRepo servicesRepository.Service,
	variationRepo servicesRepository.Variation,
	accountRepo accountRepository.Account,
	invoiceRepo invoiceRepository.Invoice,
	notifier notifService.Notifications,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Events {
	return &serviceImpl{
		repo:          repo,
		serviceRepo:   serviceRepo,
		typeRepo:      typeRepo,
		roomRepo:      roomRepo,
		catalogRepo:   catalogRepo,
		variationRepo: variationRepo,
		accountRepo:   accountRepo,
		invoiceRepo:   invoiceRepo,
		notifier:      notifier,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	eventDate, err := req.ParseEventDate()
	if err != nil {
		return res, failure.BadRequestFromString("invalid event_date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	start, end, err := req.ParseTimes()
	if err != nil {
		return res, failure.BadRequestFromString("invalid start_time or end_time, expected RFC3339") // nolint:wrapcheck
	}

	window, err := buildWindow(start, end)
	if err != nil {
		return res, err
	}

	if req.BaseCost != nil && req.BaseCost.IsNegative() {
		return res, failure.BadRequestFromString("base_cost must not be negative") // nolint:wrapcheck
	}

	if req.RoomServiceFee != nil && req.RoomServiceFee.IsNegative() {
		return res, failure.BadRequestFromString("room_service_fee must not be negative") // nolint:wrapcheck
	}

	room, err := s.resolveRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if err = s.assertAccountExists(ctx, req.AccountID); err != nil {
		return res, err
	}

	eventType, err := s.resolveEventType(ctx, req.EventTypeID)
	if err != nil {
		return res, err
	}

	items, err := s.resolveItems(ctx, req.Services)
	if err != nil {
		return res, err
	}

	status := model.StatusPending
	if req.Status != constant.Empty {
		status = req.Status
	}

	var hours float64
	if window != nil {
		hours = window.Hours()
	}

	lines := buildCostLines(&room, hours, req.BaseCost, req.RoomServiceFee, items)
	total := totalCost(lines)

	eventID := uuid.NewString()
	roomID := req.RoomID

	event := model.Event{
		ID:             eventID,
		Name:           req.Name,
		Description:    req.Description,
		EventDate:      eventDate,
		StartTime:      start,
		EndTime:        end,
		EstimatedCost:  total,
		RoomServiceFee: req.RoomServiceFee,
		Status:         status,
		AccountID:      req.AccountID,
		RoomID:         &roomID,
		EventTypeID:    req.EventTypeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	services := toEventServices(eventID, user, items)

	booking := model.Booking{
		Event:    event,
		Services: services,
	}

	if window != nil {
		booking.RoomLock = &model.RoomLock{RoomID: roomID, Window: *window}
	}

	for _, item := range items {
		if item.window != nil && item.variation != nil {
			booking.VariationLocks = append(booking.VariationLocks, model.VariationLock{
				VariationID: item.variation.ID,
				Window:      *item.window,
			})
		}
	}

	if total.IsPositive() {
		invoice := newInvoice(eventID, user, total, s.cfg.Booking.InvoiceDueDays)
		booking.Invoice = &invoice
		booking.Details = toInvoiceDetails(invoice.ID, user, lines)
	}

	if err = s.repo.CreateBooking(ctx, booking); err != nil {
		log.Error().Err(err).Str("eventID", eventID).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	s.notify(ctx, req.AccountID, notifModel.TypeBookingCreated, "Booking created",
		fmt.Sprintf("Your event %q has been booked", req.Name))
	s.invalidateEventCaches(ctx, eventID)

	event.RoomName = &room.Name
	if eventType != nil {
		event.EventTypeName = &eventType.Name
	}

	res.FromModel(event)
	res.WithServices(services)

	return res, nil
}

// resolveRoom loads the room and asserts it can accept a new booking.
func (s *serviceImpl) resolveRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return room, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if !room.Bookable() {
		return room, failure.UnprocessableEntity("room is not available for booking") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) assertAccountExists(ctx context.Context, accountID *string) error {
	if accountID == nil {
		return nil
	}

	exist, err := s.accountRepo.Exist(ctx, shared.FilterByID(*accountID, accountModel.FieldID, accountModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if account exists")

		return fmt.Errorf("failed to check if account exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("account does not exist") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) resolveEventType(ctx context.Context, eventTypeID *string) (*model.EventType, error) {
	if eventTypeID == nil {
		return nil, nil
	}

	eventType, err := s.typeRepo.Get(ctx, shared.FilterByID(*eventTypeID, model.EventTypeFieldID, model.EventTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type")

		return nil, fmt.Errorf("failed to get event type: %w", err)
	}

	if eventType.ID == constant.Empty {
		return nil, failure.BadRequestFromString("event type does not exist") // nolint:wrapcheck
	}

	if !eventType.Active {
		return nil, failure.BadRequestFromString("event type is inactive") // nolint:wrapcheck
	}

	return &eventType, nil
}

// resolveItems validates every booked item against the catalog and derives
// its occupancy window when it carries a schedule.
func (s *serviceImpl) resolveItems(ctx context.Context, requests []dto.BookedServiceRequest) ([]bookedItem, error) {
	items := make([]bookedItem, 0, len(requests))

	for _, req := range requests {
		if req.CustomPrice != nil && req.CustomPrice.IsNegative() {
			return nil, failure.BadRequestFromString("custom_price must not be negative") // nolint:wrapcheck
		}

		svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(req.ServiceID, servicesModel.FieldID, servicesModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get service for booking")

			return nil, fmt.Errorf("failed to get service for booking: %w", err)
		}

		if svc.ID == constant.Empty {
			return nil, failure.BadRequestFromString("service does not exist") // nolint:wrapcheck
		}

		if !svc.Bookable() {
			return nil, failure.UnprocessableEntity(fmt.Sprintf("service %q is not available for booking", svc.Name)) // nolint:wrapcheck
		}

		var variation *servicesModel.Variation

		if req.VariationID != nil {
			got, err := s.variationRepo.Get(ctx, shared.FilterByID(*req.VariationID, servicesModel.VariationFieldID, servicesModel.VariationTableName))
			if err != nil {
				log.Error().Err(err).Msg("failed to get variation for booking")

				return nil, fmt.Errorf("failed to get variation for booking: %w", err)
			}

			if got.ID == constant.Empty {
				return nil, failure.BadRequestFromString("variation does not exist") // nolint:wrapcheck
			}

			if got.ServiceID != req.ServiceID {
				return nil, failure.UnprocessableEntity(fmt.Sprintf("variation %q does not belong to service %q", got.Name, svc.Name)) // nolint:wrapcheck
			}

			if !got.Active {
				return nil, failure.UnprocessableEntity(fmt.Sprintf("variation %q is inactive", got.Name)) // nolint:wrapcheck
			}

			variation = &got
		}

		scheduled, err := req.ParseScheduledTime()
		if err != nil {
			return nil, failure.BadRequestFromString("invalid scheduled_time, expected RFC3339") // nolint:wrapcheck
		}

		var window *model.Window

		if scheduled != nil {
			duration := req.DurationHours
			if duration == nil && variation != nil {
				duration = variation.DurationHours
			}

			if duration != nil {
				derived, err := model.NewWindow(*scheduled, nil, duration)
				if err != nil {
					return nil, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
				}

				window = &derived
			}
		}

		items = append(items, bookedItem{
			request:   req,
			service:   svc,
			variation: variation,
			scheduled: scheduled,
			window:    window,
		})
	}

	return items, nil
}

// toEventServices maps the resolved items to booking rows. New bookings are
// confirmed; the derived duration falls back to the variation's default.
func toEventServices(eventID, user string, items []bookedItem) []model.EventService {
	services := make([]model.EventService, len(items))

	for i, item := range items {
		duration := item.request.DurationHours
		if duration == nil && item.variation != nil {
			duration = item.variation.DurationHours
		}

		services[i] = model.EventService{
			ID:            uuid.NewString(),
			EventID:       eventID,
			ServiceID:     item.service.ID,
			VariationID:   item.request.VariationID,
			Quantity:      item.quantity(),
			CustomPrice:   item.request.CustomPrice,
			Status:        model.BookingStatusConfirmed,
			ScheduledTime: item.scheduled,
			DurationHours: duration,
			Notes:         item.request.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return services
}

// buildWindow derives the event's room window. Both endpoints must be given
// together and in order.
func buildWindow(start, end *time.Time) (*model.Window, error) {
	if (start == nil) != (end == nil) {
		return nil, failure.BadRequestFromString("start_time and end_time must be provided together") // nolint:wrapcheck
	}

	if start == nil {
		return nil, nil
	}

	window, err := model.NewWindow(*start, end, nil)
	if err != nil {
		return nil, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	return &window, nil
}

// notify sends a booking notification when the event is tied to an account.
// Failures are logged, never surfaced.
func (s *serviceImpl) notify(ctx context.Context, accountID *string, notifType, title, message string) {
	if accountID == nil {
		return
	}

	req := notifDto.SendNotificationRequest{
		AccountID: accountID,
		Title:     title,
		Message:   message,
		Type:      notifType,
	}

	if err := s.notifier.Send(ctx, req); err != nil {
		log.Error().Err(err).Str("accountID", *accountID).Msg("failed to send booking notification")
	}
}

func (s *serviceImpl) invalidateEventCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()
}

func isStaff(role string) bool {
	return slices.Contains([]string{constant.RoleStaff, constant.RoleAdmin, constant.RoleSuperAdmin}, role)
}
