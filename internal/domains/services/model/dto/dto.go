package dto

import (
	"venue/internal/domains/services/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name          string  `json:"name"            validate:"required,max=100"`
	Description   *string `json:"description"     validate:"omitempty,max=500"`
	ServiceTypeID string  `json:"service_type_id" validate:"required,uuid4"`
	IsAvailable   *bool   `json:"is_available"    validate:"omitempty"`
	Active        *bool   `json:"active"          validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Description:   c.Description,
		ServiceTypeID: c.ServiceTypeID,
		IsAvailable:   available,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name          string  `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   *string `db:"description"     json:"description"     validate:"omitempty,max=500"`
	ServiceTypeID string  `db:"service_type_id" json:"service_type_id" validate:"omitempty,uuid4"`
	IsAvailable   *bool   `db:"is_available"    json:"is_available"    validate:"omitempty"`
	Active        *bool   `db:"active"          json:"active"          validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	ServiceTypeID   string  `json:"service_type_id"`
	ServiceTypeName string  `json:"service_type_name"`
	IsAvailable     bool    `json:"is_available"`
	Active          bool    `json:"active"`
	VariationCount  int     `json:"variation_count"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.ServiceTypeID = model.ServiceTypeID
	r.ServiceTypeName = model.ServiceTypeName
	r.IsAvailable = model.IsAvailable
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
	HasNext   bool              `json:"has_next"`
	HasPrev   bool              `json:"has_prev"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, counts map[string]int, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
		r.Services[i].VariationCount = counts[mod.ID]
	}
}

type CreateVariationRequest struct {
	Name          string          `json:"name"           validate:"required,max=100"`
	BasePrice     decimal.Decimal `json:"base_price"     validate:"omitempty"`
	DurationHours *float64        `json:"duration_hours" validate:"omitempty,gt=0"`
	Active        *bool           `json:"active"         validate:"omitempty"`
}

func (c *CreateVariationRequest) ToModel(serviceID, user string) model.Variation {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Variation{
		ID:            uuid.NewString(),
		ServiceID:     serviceID,
		Name:          c.Name,
		BasePrice:     c.BasePrice,
		DurationHours: c.DurationHours,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVariationRequest struct {
	Name          string           `db:"name"           json:"name"           validate:"omitempty,max=100"`
	BasePrice     *decimal.Decimal `db:"base_price"     json:"base_price"     validate:"omitempty"`
	DurationHours *float64         `db:"duration_hours" json:"duration_hours" validate:"omitempty,gt=0"`
	Active        *bool            `db:"active"         json:"active"         validate:"omitempty"`
}

type VariationResponse struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"service_id"`
	Name          string          `json:"name"`
	BasePrice     decimal.Decimal `json:"base_price"`
	DurationHours *float64        `json:"duration_hours,omitempty"`
	Active        bool            `json:"active"`
	gDto.Metadata
}

func (r *VariationResponse) FromModel(model model.Variation) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.Name = model.Name
	r.BasePrice = model.BasePrice
	r.DurationHours = model.DurationHours
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetVariationsResponse struct {
	Variations []VariationResponse `json:"variations"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
	HasNext    bool                `json:"has_next"`
	HasPrev    bool                `json:"has_prev"`
}

func (r *GetVariationsResponse) FromModels(models []model.Variation, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Variations = make([]VariationResponse, len(models))
	for i, mod := range models {
		r.Variations[i].FromModel(mod)
	}
}
