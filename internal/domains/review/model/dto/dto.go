package dto

import (
	"venue/internal/domains/review/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	EventID   string  `json:"event_id"   validate:"required,uuid4"`
	AccountID *string `json:"account_id" validate:"omitempty,uuid4"`
	Rating    int     `json:"rating"     validate:"required,min=1,max=5"`
	Comment   *string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		EventID:   c.EventID,
		AccountID: c.AccountID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	AccountID *string `json:"account_id,omitempty"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.EventID = mod.EventID
	r.AccountID = mod.AccountID
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
	HasNext   bool             `json:"has_next"`
	HasPrev   bool             `json:"has_prev"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
