package dto

import (
	"time"

	"venue/internal/domains/event/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"

	"github.com/shopspring/decimal"
)

type BookedServiceRequest struct {
	ServiceID     string           `json:"service_id"     validate:"required,uuid4"`
	VariationID   *string          `json:"variation_id"   validate:"omitempty,uuid4"`
	Quantity      int              `json:"quantity"       validate:"omitempty,min=1"`
	CustomPrice   *decimal.Decimal `json:"custom_price"   validate:"omitempty"`
	ScheduledTime *string          `json:"scheduled_time" validate:"omitempty"`
	DurationHours *float64         `json:"duration_hours" validate:"omitempty,gt=0"`
	Notes         *string          `json:"notes"          validate:"omitempty,max=500"`
}

// ParseScheduledTime parses the item's RFC3339 schedule, nil when absent.
func (b BookedServiceRequest) ParseScheduledTime() (*time.Time, error) {
	if b.ScheduledTime == nil || *b.ScheduledTime == constant.Empty {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, *b.ScheduledTime)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}

type CreateEventRequest struct {
	Name           string                 `json:"name"             validate:"required,min=3,max=150"`
	Description    *string                `json:"description"      validate:"omitempty,max=1000"`
	EventDate      string                 `json:"event_date"       validate:"required"`
	StartTime      *string                `json:"start_time"       validate:"omitempty"`
	EndTime        *string                `json:"end_time"         validate:"omitempty"`
	BaseCost       *decimal.Decimal       `json:"base_cost"        validate:"omitempty"`
	RoomServiceFee *decimal.Decimal       `json:"room_service_fee" validate:"omitempty"`
	Status         string                 `json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED RESCHEDULED"`
	AccountID      *string                `json:"account_id"       validate:"omitempty,uuid4"`
	RoomID         string                 `json:"room_id"          validate:"required,uuid4"`
	EventTypeID    *string                `json:"event_type_id"    validate:"omitempty,uuid4"`
	Services       []BookedServiceRequest `json:"services"         validate:"omitempty,dive"`
}

// ParseEventDate parses the calendar date of the event.
func (c CreateEventRequest) ParseEventDate() (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, c.EventDate) //nolint:wrapcheck
}

// ParseTimes parses the optional RFC3339 start and end instants.
func (c CreateEventRequest) ParseTimes() (start, end *time.Time, err error) {
	start, err = parseRFC3339(c.StartTime)
	if err != nil {
		return nil, nil, err
	}

	end, err = parseRFC3339(c.EndTime)
	if err != nil {
		return nil, nil, err
	}

	return start, end, nil
}

type UpdateEventRequest struct {
	Name           *string                 `json:"name"             validate:"omitempty,min=3,max=150"`
	Description    *string                 `json:"description"      validate:"omitempty,max=1000"`
	EventDate      *string                 `json:"event_date"       validate:"omitempty"`
	StartTime      *string                 `json:"start_time"       validate:"omitempty"`
	EndTime        *string                 `json:"end_time"         validate:"omitempty"`
	BaseCost       *decimal.Decimal        `json:"base_cost"        validate:"omitempty"`
	FinalCost      *decimal.Decimal        `json:"final_cost"       validate:"omitempty"`
	RoomServiceFee *decimal.Decimal        `json:"room_service_fee" validate:"omitempty"`
	Status         *string                 `json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED RESCHEDULED"`
	AccountID      *string                 `json:"account_id"       validate:"omitempty,uuid4"`
	RoomID         *string                 `json:"room_id"          validate:"omitempty,uuid4"`
	EventTypeID    *string                 `json:"event_type_id"    validate:"omitempty,uuid4"`
	Services       *[]BookedServiceRequest `json:"services"         validate:"omitempty,dive"`
}

// ParseEventDate parses the replacement calendar date, nil when absent.
func (u UpdateEventRequest) ParseEventDate() (*time.Time, error) {
	if u.EventDate == nil || *u.EventDate == constant.Empty {
		return nil, nil
	}

	parsed, err := time.Parse(constant.DateOnlyFormat, *u.EventDate)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}

// ParseTimes parses the replacement start and end instants, nil when absent.
func (u UpdateEventRequest) ParseTimes() (start, end *time.Time, err error) {
	start, err = parseRFC3339(u.StartTime)
	if err != nil {
		return nil, nil, err
	}

	end, err = parseRFC3339(u.EndTime)
	if err != nil {
		return nil, nil, err
	}

	return start, end, nil
}

// Empty reports whether the request carries no field at all.
func (u UpdateEventRequest) Empty() bool {
	return u.Name == nil && u.Description == nil && u.EventDate == nil &&
		u.StartTime == nil && u.EndTime == nil && u.BaseCost == nil &&
		u.FinalCost == nil && u.RoomServiceFee == nil && u.Status == nil &&
		u.AccountID == nil && u.RoomID == nil && u.EventTypeID == nil &&
		u.Services == nil
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}

type EventServiceResponse struct {
	ID            string           `json:"id"`
	ServiceID     string           `json:"service_id"`
	VariationID   *string          `json:"variation_id,omitempty"`
	Quantity      int              `json:"quantity"`
	CustomPrice   *decimal.Decimal `json:"custom_price,omitempty"`
	Status        string           `json:"status"`
	ScheduledTime *time.Time       `json:"scheduled_time,omitempty"`
	DurationHours *float64         `json:"duration_hours,omitempty"`
	EndTime       *time.Time       `json:"end_time,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *EventServiceResponse) FromModel(mod model.EventService) {
	r.ID = mod.ID
	r.ServiceID = mod.ServiceID
	r.VariationID = mod.VariationID
	r.Quantity = mod.Quantity
	r.CustomPrice = mod.CustomPrice
	r.Status = mod.Status
	r.ScheduledTime = mod.ScheduledTime
	r.DurationHours = mod.DurationHours
	r.EndTime = mod.EndTime
	r.Notes = mod.Notes
}

type EventResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    *string                `json:"description,omitempty"`
	EventDate      string                 `json:"event_date"`
	StartTime      *time.Time             `json:"start_time,omitempty"`
	EndTime        *time.Time             `json:"end_time,omitempty"`
	EstimatedCost  decimal.Decimal        `json:"estimated_cost"`
	FinalCost      *decimal.Decimal       `json:"final_cost,omitempty"`
	RoomServiceFee *decimal.Decimal       `json:"room_service_fee,omitempty"`
	Status         string                 `json:"status"`
	AccountID      *string                `json:"account_id,omitempty"`
	RoomID         *string                `json:"room_id,omitempty"`
	RoomName       *string                `json:"room_name,omitempty"`
	EventTypeID    *string                `json:"event_type_id,omitempty"`
	EventTypeName  *string                `json:"event_type_name,omitempty"`
	Services       []EventServiceResponse `json:"services,omitempty"`
	ServiceCount   int                    `json:"service_count"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(mod model.Event) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.EventDate = mod.EventDate.Format(constant.DateOnlyFormat)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.EstimatedCost = mod.EstimatedCost
	r.FinalCost = mod.FinalCost
	r.RoomServiceFee = mod.RoomServiceFee
	r.Status = mod.Status
	r.AccountID = mod.AccountID
	r.RoomID = mod.RoomID
	r.RoomName = mod.RoomName
	r.EventTypeID = mod.EventTypeID
	r.EventTypeName = mod.EventTypeName
	r.Metadata.FromModel(mod.Metadata)
}

// WithServices attaches the booked services to the response.
func (r *EventResponse) WithServices(services []model.EventService) {
	r.Services = make([]EventServiceResponse, len(services))
	for i, svc := range services {
		r.Services[i].FromModel(svc)
	}

	r.ServiceCount = len(services)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
	HasNext   bool            `json:"has_next"`
	HasPrev   bool            `json:"has_prev"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, serviceCounts map[string]int, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
		r.Events[i].ServiceCount = serviceCounts[mod.ID]
	}
}

type AvailabilityResponse struct {
	Available bool             `json:"available"`
	Reason    string           `json:"reason,omitempty"`
	Conflicts []model.Conflict `json:"conflicts,omitempty"`
}

func parseRFC3339(value *string) (*time.Time, error) {
	if value == nil || *value == constant.Empty {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}
