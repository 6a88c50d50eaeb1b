package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/config"
	"venue/infras/otel"
	eventModel "venue/internal/domains/event/model"
	eventRepository "venue/internal/domains/event/repository"
	"venue/internal/domains/review/model"
	"venue/internal/domains/review/model/dto"
	"venue/internal/domains/review/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"

	"github.com/rs/zerolog/log"
)

type Reviews interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAllByEvent(ctx context.Context, eventID string, params gDto.QueryParams) (dto.GetReviewsResponse, error)
	GetAllByRoom(ctx context.Context, roomID string, params gDto.QueryParams) (dto.GetReviewsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Review
	eventRepo eventRepository.Event
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Review, eventRepo eventRepository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reviews {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create records a review on a completed booking. An account may review an
// event once.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(req.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event for review")

		return res, fmt.Errorf("failed to get event for review: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.BadRequestFromString("event does not exist") // nolint:wrapcheck
	}

	if req.AccountID != nil {
		duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldEventID, Value: req.EventID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldAccountID, Value: *req.AccountID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to check for duplicate review")

			return res, fmt.Errorf("failed to check for duplicate review: %w", err)
		}

		if duplicate {
			return res, failure.Conflict("the account has already reviewed this event") // nolint:wrapcheck
		}
	}

	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidateRoomCaches(ctx)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAllByEvent(ctx context.Context, eventID string, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(eventID, model.FieldEventID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

func (s *serviceImpl) GetAllByRoom(ctx context.Context, roomID string, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.CountByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room reviews")

		return res, fmt.Errorf("failed to count room reviews: %w", err)
	}

	models, err := s.repo.GetAllByRoom(ctx, roomID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room reviews")

		return res, fmt.Errorf("failed to get room reviews: %w", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		return failure.NotFound("review not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidateRoomCaches(ctx)

	return nil
}

// Reviews feed the room rating aggregates, so room caches go stale on write.
func (s *serviceImpl) invalidateRoomCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "room:")
		shared.InvalidateCaches(c, s.cache, "event:get")
	}()
}
