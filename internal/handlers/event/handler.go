package event

import (
	"net/http"
	"time"

	"venue/infras/otel"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/internal/domains/event/service"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/validator"
	"venue/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Events
	otel    otel.Otel
}

func New(service service.Events, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.Patch("/{id}/toggle-confirmation", handler.ToggleConfirmation)
		routerGroup.Patch("/{id}/status", handler.SetStatus)
	})

	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms/{id}", handler.CheckRoomAvailability)
		routerGroup.Get("/variations/{id}", handler.CheckVariationAvailability)
	})
}

// CreateEvent books a new event.
// @Summary Create a new event
// @Description Book an event with a room and optional services; the cost estimate and invoice are generated atomically.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event booking payload"
// @Success 201 {object} response.Data[dto.EventResponse] "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	var req dto.CreateEventRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEvents retrieves all events based on query parameters.
// @Summary Get all events
// @Description Retrieve all events with optional filtering and pagination.
// @Tags Event
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Param account_id query string false "Filter by account"
// @Param date_from query string false "Events on or after this date (YYYY-MM-DD)"
// @Param date_to query string false "Events on or before this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetEventsResponse] "List of events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldStatus, model.FieldRoomID, model.FieldAccountID, model.FieldEventTypeID} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if from := r.URL.Query().Get(constant.RequestParamDateFrom); from != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEventDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get(constant.RequestParamDateTo); to != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEventDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID retrieves an event with its booked services.
// @Summary Get an event by ID
// @Description Retrieve an event and its booked services by its unique identifier.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse] "Event details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event retrieved successfully")

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent updates an existing event by its ID.
// @Summary Update an event by ID
// @Description Update a booking; schedule, room, and service changes re-run the availability checks and reprice the invoice.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event update payload"
// @Success 200 {object} response.Data[dto.EventResponse] "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateEventRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteEvent deletes an event by its ID.
// @Summary Delete an event by ID
// @Description Delete an event; dependent rows block the delete unless force=true.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param force query boolean false "Delete dependents too"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	force := false
	if forced := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamForce)); forced != nil {
		force = *forced
	}

	if err := handler.service.Delete(ctx, id, force); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// ToggleConfirmation flips an event between PENDING and CONFIRMED.
// @Summary Toggle event confirmation
// @Description Flip the event between PENDING and CONFIRMED.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse] "Event confirmation toggled"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/toggle-confirmation [patch]
// @Security BearerAuth
func (handler *Handler) ToggleConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleConfirmation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ToggleConfirmation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle event confirmation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event confirmation toggled successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SetStatus moves a pending or confirmed event into its lifecycle.
// @Summary Set event status
// @Description Move a PENDING or CONFIRMED event to one of the lifecycle statuses.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SetStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.EventResponse] "Event status changed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.SetStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set event status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event status changed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckRoomAvailability reports whether a room is free over a window.
// @Summary Check room availability
// @Description Report whether the room is free between start_time and end_time (or for duration_hours).
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param duration_hours query number false "Window length in hours"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rooms/{id} [get]
func (handler *Handler) CheckRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoomAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	window, err := windowFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability window")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckRoomAvailability(ctx, id, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckVariationAvailability reports whether a variation is free over a window.
// @Summary Check variation availability
// @Description Report whether the service variation is free between start_time and end_time (or for duration_hours).
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Variation ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param duration_hours query number false "Window length in hours"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/variations/{id} [get]
func (handler *Handler) CheckVariationAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckVariationAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	window, err := windowFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability window")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckVariationAvailability(ctx, id, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check variation availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Variation availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// windowFromQuery builds the availability window from start_time plus either
// end_time or duration_hours.
func windowFromQuery(r *http.Request) (model.Window, error) {
	query := r.URL.Query()

	start, err := time.Parse(time.RFC3339, query.Get(constant.RequestParamStartTime))
	if err != nil {
		return model.Window{}, failure.BadRequestFromString("invalid start_time, expected RFC3339") // nolint:wrapcheck
	}

	var end *time.Time

	if raw := query.Get(constant.RequestParamEndTime); raw != constant.Empty {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return model.Window{}, failure.BadRequestFromString("invalid end_time, expected RFC3339") // nolint:wrapcheck
		}

		end = &parsed
	}

	var duration *float64

	if raw := query.Get(constant.RequestParamDurationHours); raw != constant.Empty {
		parsed, err := shared.ConvertStringToFloat(raw)
		if err != nil {
			return model.Window{}, failure.BadRequestFromString("invalid duration_hours") // nolint:wrapcheck
		}

		duration = &parsed
	}

	window, err := model.NewWindow(start, end, duration)
	if err != nil {
		return model.Window{}, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	return window, nil
}
