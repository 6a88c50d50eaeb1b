package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/config"
	"venue/infras/otel"
	"venue/internal/domains/invoice/model"
	"venue/internal/domains/invoice/model/dto"
	"venue/internal/domains/invoice/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInvoices = "invoice:gets"
)

type Invoices interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetByEvent(ctx context.Context, eventID string) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	repo  repository.Invoice
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Invoice, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Invoices {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetInvoices, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	return s.withDetails(ctx, invoice)
}

func (s *serviceImpl) GetByEvent(ctx context.Context, eventID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoiceByEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.repo.Get(ctx, shared.FilterByID(eventID, model.FieldEventID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice by event")

		return res, fmt.Errorf("failed to get invoice by event: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("the event has no invoice") // nolint:wrapcheck
	}

	return s.withDetails(ctx, invoice)
}

func (s *serviceImpl) withDetails(ctx context.Context, invoice model.Invoice) (res dto.InvoiceResponse, err error) {
	details, err := s.repo.GetDetails(ctx, invoice.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice details")

		return res, fmt.Errorf("failed to get invoice details: %w", err)
	}

	res.FromModel(invoice)
	res.WithDetails(details)

	return res, nil
}
