package dto

import (
	"mime/multipart"

	"venue/internal/domains/room/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Name       string                `json:"name"        validate:"required,max=100"`
	Location   string                `json:"location"    validate:"omitempty,max=100"`
	Capacity   int                   `json:"capacity"    validate:"omitempty,min=0"`
	BasePrice  decimal.Decimal       `json:"base_price"  validate:"omitempty"`
	HourlyRate *decimal.Decimal      `json:"hourly_rate" validate:"omitempty"`
	Status     string                `json:"status"      validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Location:   c.Location,
		Capacity:   c.Capacity,
		BasePrice:  c.BasePrice,
		HourlyRate: c.HourlyRate,
		Status:     status,
		Image:      imageURL,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name       string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location   string                `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Capacity   *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	BasePrice  *decimal.Decimal      `db:"base_price"  json:"base_price"  validate:"omitempty"`
	HourlyRate *decimal.Decimal      `db:"hourly_rate" json:"hourly_rate" validate:"omitempty"`
	Status     string                `db:"status"      json:"status"      validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED"`
	Image      *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Location      string           `json:"location"`
	Capacity      int              `json:"capacity"`
	BasePrice     decimal.Decimal  `json:"base_price"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	Status        string           `json:"status"`
	Image         string           `json:"image"`
	Active        bool             `json:"active"`
	ReviewCount   int              `json:"review_count"`
	AverageRating float64          `json:"average_rating"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.HourlyRate = model.HourlyRate
	r.Status = model.Status
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

func (r *RoomResponse) WithRating(summary model.RatingSummary) {
	r.ReviewCount = summary.ReviewCount
	r.AverageRating = summary.AverageRating
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
	HasNext   bool           `json:"has_next"`
	HasPrev   bool           `json:"has_prev"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
