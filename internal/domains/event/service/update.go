package service

import (
	"context"
	"fmt"
	"time"

	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	invoiceModel "venue/internal/domains/invoice/model"
	notifModel "venue/internal/domains/notification/model"
	roomModel "venue/internal/domains/room/model"
	servicesModel "venue/internal/domains/services/model"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Update reworks an existing booking. Schedule, room, and service changes
// re-run the availability checks and the cost estimate; the invoice total and
// its line items follow the new estimate. Non-staff callers cannot touch an
// event once it is within the configured lock window of its start.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for update")

		return res, fmt.Errorf("failed to get event for update: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	if err = s.assertModifiable(current, role); err != nil {
		return res, err
	}

	if err = validateUpdateAmounts(req); err != nil {
		return res, err
	}

	newDate, err := req.ParseEventDate()
	if err != nil {
		return res, failure.BadRequestFromString("invalid event_date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	start, end, err := req.ParseTimes()
	if err != nil {
		return res, failure.BadRequestFromString("invalid start_time or end_time, expected RFC3339") // nolint:wrapcheck
	}

	mergedStart := current.StartTime
	if start != nil {
		mergedStart = start
	}

	mergedEnd := current.EndTime
	if end != nil {
		mergedEnd = end
	}

	window, err := buildWindow(mergedStart, mergedEnd)
	if err != nil {
		return res, err
	}

	roomID := current.RoomID
	roomChanged := false

	if req.RoomID != nil && (current.RoomID == nil || *req.RoomID != *current.RoomID) {
		roomChanged = true
		roomID = req.RoomID
	}

	var room roomModel.Room

	if roomID != nil {
		if roomChanged {
			room, err = s.resolveRoom(ctx, *roomID)
		} else {
			room, err = s.getRoom(ctx, *roomID)
		}

		if err != nil {
			return res, err
		}
	}

	if req.AccountID != nil {
		if err = s.assertAccountExists(ctx, req.AccountID); err != nil {
			return res, err
		}
	}

	if req.EventTypeID != nil {
		if _, err = s.resolveEventType(ctx, req.EventTypeID); err != nil {
			return res, err
		}
	}

	var items []bookedItem

	replaceServices := req.Services != nil
	if replaceServices {
		items, err = s.resolveItems(ctx, *req.Services)
		if err != nil {
			return res, err
		}
	}

	update := model.BookingUpdate{
		EventID:         id,
		Fields:          buildUpdateFields(req, newDate, start, end, user),
		ReplaceServices: replaceServices,
	}

	if replaceServices {
		update.Services = toEventServices(id, user, items)
	}

	scheduleChanged := start != nil || end != nil
	if window != nil && roomID != nil && (roomChanged || scheduleChanged) {
		update.RoomLock = &model.RoomLock{RoomID: *roomID, Window: *window, ExcludeEventID: id}
	}

	for _, item := range items {
		if item.window != nil && item.variation != nil {
			update.VariationLocks = append(update.VariationLocks, model.VariationLock{
				VariationID:    item.variation.ID,
				Window:         *item.window,
				ExcludeEventID: id,
			})
		}
	}

	reprice := replaceServices || roomChanged || scheduleChanged || req.BaseCost != nil || req.RoomServiceFee != nil
	if reprice {
		if err = s.applyRepricing(ctx, &update, current, req, room, roomID, window, items, user); err != nil {
			return res, err
		}
	}

	if err = s.repo.UpdateBooking(ctx, update); err != nil {
		log.Error().Err(err).Str("eventID", id).Msg("failed to update booking")

		return res, err //nolint:wrapcheck
	}

	accountID := current.AccountID
	if req.AccountID != nil {
		accountID = req.AccountID
	}

	s.notify(ctx, accountID, notifModel.TypeBookingUpdated, "Booking updated",
		fmt.Sprintf("Your event %q has been updated", current.Name))
	s.invalidateEventCaches(ctx, id)

	return s.freshResponse(ctx, id)
}

// assertModifiable enforces the modification lock: once the event is within
// the configured number of hours of its start, only staff may change it.
func (s *serviceImpl) assertModifiable(current model.Event, role string) error {
	if isStaff(role) || current.StartTime == nil {
		return nil
	}

	lock := time.Duration(s.cfg.Booking.UpdateLockHours) * time.Hour
	if timezone.Now().Add(lock).After(*current.StartTime) {
		return failure.Forbidden(fmt.Sprintf("event can no longer be modified within %d hours of its start", s.cfg.Booking.UpdateLockHours)) // nolint:wrapcheck
	}

	return nil
}

func validateUpdateAmounts(req dto.UpdateEventRequest) error {
	if req.BaseCost != nil && req.BaseCost.IsNegative() {
		return failure.BadRequestFromString("base_cost must not be negative") // nolint:wrapcheck
	}

	if req.FinalCost != nil && req.FinalCost.IsNegative() {
		return failure.BadRequestFromString("final_cost must not be negative") // nolint:wrapcheck
	}

	if req.RoomServiceFee != nil && req.RoomServiceFee.IsNegative() {
		return failure.BadRequestFromString("room_service_fee must not be negative") // nolint:wrapcheck
	}

	return nil
}

// getRoom loads a room that must exist but need not be bookable: the event
// already holds it.
func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return room, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	return room, nil
}

func buildUpdateFields(req dto.UpdateEventRequest, newDate, start, end *time.Time, user string) map[string]any {
	fields := map[string]any{
		constant.FieldModifiedBy: user,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if req.Name != nil {
		fields[model.FieldName] = *req.Name
	}

	if req.Description != nil {
		fields[model.FieldDescription] = *req.Description
	}

	if newDate != nil {
		fields[model.FieldEventDate] = *newDate
	}

	if start != nil {
		fields[model.FieldStartTime] = *start
	}

	if end != nil {
		fields[model.FieldEndTime] = *end
	}

	if req.Status != nil {
		fields[model.FieldStatus] = *req.Status
	}

	if req.AccountID != nil {
		fields[model.FieldAccountID] = *req.AccountID
	}

	if req.RoomID != nil {
		fields[model.FieldRoomID] = *req.RoomID
	}

	if req.EventTypeID != nil {
		fields[model.FieldEventTypeID] = *req.EventTypeID
	}

	if req.FinalCost != nil {
		fields[model.FieldFinalCost] = *req.FinalCost
	}

	if req.RoomServiceFee != nil {
		fields[model.FieldRoomServiceFee] = *req.RoomServiceFee
	}

	return fields
}

// applyRepricing recomputes the cost estimate over the merged booking state
// and stages the invoice changes: the total is patched and the line items
// replaced, or a new invoice is issued when the event had none.
func (s *serviceImpl) applyRepricing(
	ctx context.Context,
	update *model.BookingUpdate,
	current model.Event,
	req dto.UpdateEventRequest,
	room roomModel.Room,
	roomID *string,
	window *model.Window,
	items []bookedItem,
	user string,
) error {
	costItems := items

	if req.Services == nil {
		rows, err := s.getEventServices(ctx, current.ID)
		if err != nil {
			return err
		}

		costItems, err = s.itemsFromRows(ctx, rows)
		if err != nil {
			return err
		}
	}

	fee := req.RoomServiceFee
	if fee == nil {
		fee = current.RoomServiceFee
	}

	var hours float64
	if window != nil {
		hours = window.Hours()
	}

	var roomPtr *roomModel.Room
	if roomID != nil {
		roomPtr = &room
	}

	lines := buildCostLines(roomPtr, hours, req.BaseCost, fee, costItems)
	total := totalCost(lines)

	update.Fields[model.FieldEstimatedCost] = total

	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByID(current.ID, invoiceModel.FieldEventID, invoiceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice for repricing")

		return fmt.Errorf("failed to get invoice for repricing: %w", err)
	}

	switch {
	case invoice.ID != constant.Empty:
		update.InvoiceID = invoice.ID
		update.InvoiceFields = map[string]any{
			"total_amount":           total,
			constant.FieldModifiedBy: user,
			constant.FieldModifiedAt: timezone.Now(),
		}
		update.Details = toInvoiceDetails(invoice.ID, user, lines)
		update.ReplaceDetails = true
	case total.IsPositive():
		issued := newInvoice(current.ID, user, total, s.cfg.Booking.InvoiceDueDays)
		update.Invoice = &issued
		update.Details = toInvoiceDetails(issued.ID, user, lines)
		update.ReplaceDetails = true
	}

	return nil
}

// itemsFromRows rebuilds cost items from the persisted booking rows so an
// update that does not touch the services can still reprice the event.
// Cancelled rows do not contribute.
func (s *serviceImpl) itemsFromRows(ctx context.Context, rows []model.EventService) ([]bookedItem, error) {
	items := make([]bookedItem, 0, len(rows))

	for _, row := range rows {
		if row.Status == model.BookingStatusCancelled {
			continue
		}

		svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(row.ServiceID, servicesModel.FieldID, servicesModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get service for repricing")

			return nil, fmt.Errorf("failed to get service for repricing: %w", err)
		}

		var variation *servicesModel.Variation

		if row.VariationID != nil {
			got, err := s.variationRepo.Get(ctx, shared.FilterByID(*row.VariationID, servicesModel.VariationFieldID, servicesModel.VariationTableName))
			if err != nil {
				log.Error().Err(err).Msg("failed to get variation for repricing")

				return nil, fmt.Errorf("failed to get variation for repricing: %w", err)
			}

			if got.ID != constant.Empty {
				variation = &got
			}
		}

		items = append(items, bookedItem{
			request: dto.BookedServiceRequest{
				ServiceID:     row.ServiceID,
				VariationID:   row.VariationID,
				Quantity:      row.Quantity,
				CustomPrice:   row.CustomPrice,
				DurationHours: row.DurationHours,
			},
			service:   svc,
			variation: variation,
			scheduled: row.ScheduledTime,
		})
	}

	return items, nil
}

// freshResponse reads the event back after a write, bypassing the cache.
func (s *serviceImpl) freshResponse(ctx context.Context, id string) (res dto.EventResponse, err error) {
	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	services, err := s.getEventServices(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(event)
	res.WithServices(services)

	return res, nil
}
