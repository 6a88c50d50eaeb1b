package dto

import (
	"time"

	"venue/internal/domains/notification/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
)

type SendNotificationRequest struct {
	AccountID *string `json:"account_id" validate:"omitempty,uuid4"`
	Title     string  `json:"title"      validate:"required,max=150"`
	Message   string  `json:"message"    validate:"required,max=1000"`
	Type      string  `json:"type"       validate:"omitempty,oneof=BOOKING_CREATED BOOKING_UPDATED BOOKING_CANCELLED STATUS_CHANGED PAYMENT_RECEIVED GENERIC"`
}

func (s *SendNotificationRequest) ToModel(user string) model.Notification {
	notificationType := model.TypeGeneric
	if s.Type != "" {
		notificationType = s.Type
	}

	return model.Notification{
		ID:        uuid.NewString(),
		AccountID: s.AccountID,
		Title:     s.Title,
		Message:   s.Message,
		Type:      notificationType,
		Read:      false,
		SentAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	AccountID *string   `json:"account_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	SentAt    time.Time `json:"sent_at"`
}

func (r *NotificationResponse) FromModel(mod model.Notification) {
	r.ID = mod.ID
	r.AccountID = mod.AccountID
	r.Title = mod.Title
	r.Message = mod.Message
	r.Type = mod.Type
	r.Read = mod.Read
	r.SentAt = mod.SentAt
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
	HasNext       bool                   `json:"has_next"`
	HasPrev       bool                   `json:"has_prev"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
