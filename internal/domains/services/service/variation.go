package service

import (
	"context"
	"fmt"

	"venue/internal/domains/services/model"
	"venue/internal/domains/services/model/dto"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CreateVariation(ctx context.Context, serviceID string, req dto.CreateVariationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateVariation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.BasePrice.IsNegative() {
		return failure.BadRequestFromString("variation price must not be negative") // nolint:wrapcheck
	}

	svc, err := s.repo.Get(ctx, shared.FilterByID(serviceID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service for variation")

		return fmt.Errorf("failed to get service for variation: %w", err)
	}

	if svc.ID == constant.Empty {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	if !svc.Active {
		return failure.BadRequestFromString("service is inactive") // nolint:wrapcheck
	}

	if err = s.variationRepo.Insert(ctx, req.ToModel(serviceID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create variation")

		return fmt.Errorf("failed to create variation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetVariations)
		shared.InvalidateCaches(c, s.cache, cacheCountVariation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()

	return nil
}

func (s *serviceImpl) GetVariations(ctx context.Context, serviceID string, req gDto.QueryParams) (res dto.GetVariationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVariations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(serviceID, model.VariationFieldServiceID, model.VariationTableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetVariations, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for variations")

		return res, nil
	}

	total, err := s.variationRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count variations")

		return res, fmt.Errorf("failed to count variations: %w", err)
	}

	models, err := s.variationRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get variations")

		return res, fmt.Errorf("failed to get variations: %w", err)
	}

	res.FromModels(models, total, req)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save variations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetVariation(ctx context.Context, id string) (res dto.VariationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVariation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVariation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	variation, err := s.variationRepo.Get(ctx, shared.FilterByID(id, model.VariationFieldID, model.VariationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get variation")

		return res, fmt.Errorf("failed to get variation: %w", err)
	}

	if variation.ID == constant.Empty {
		return res, failure.NotFound("variation not found") // nolint:wrapcheck
	}

	res.FromModel(variation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save variation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateVariation(ctx context.Context, req dto.UpdateVariationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateVariation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateVariationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.BasePrice != nil && req.BasePrice.IsNegative() {
		return failure.BadRequestFromString("variation price must not be negative") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.VariationFieldID, model.VariationTableName)

	exist, err := s.variationRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if variation exists")

		return fmt.Errorf("failed to check if variation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("variation not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.variationRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update variation")

		return fmt.Errorf("failed to update variation: %w", err)
	}

	s.invalidateVariationCaches(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteVariation(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteVariation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.VariationFieldID, model.VariationTableName)

	exist, err := s.variationRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if variation exists")

		return fmt.Errorf("failed to check if variation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("variation not found") // nolint:wrapcheck
	}

	if err := s.variationRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete variation")

		return fmt.Errorf("failed to delete variation: %w", err)
	}

	s.invalidateVariationCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateVariationCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVariation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete variation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetVariations)
		shared.InvalidateCaches(c, s.cache, cacheCountVariation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()
}
