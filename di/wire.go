//go:build wireinject
// +build wireinject

package di

import (
	"venue/config"
	"venue/infras/jwt"
	"venue/infras/kafka"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/infras/redis"
	"venue/infras/s3"
	"venue/infras/stripe"
	"venue/permissions"
	"venue/shared/cache"
	"venue/transport/http"
	"venue/transport/http/middleware"
	"venue/transport/http/router"

	accountRepository "venue/internal/domains/account/repository"
	eventRepository "venue/internal/domains/event/repository"
	eventService "venue/internal/domains/event/service"
	invoiceRepository "venue/internal/domains/invoice/repository"
	invoiceService "venue/internal/domains/invoice/service"
	notificationRepository "venue/internal/domains/notification/repository"
	notificationService "venue/internal/domains/notification/service"
	paymentRepository "venue/internal/domains/payment/repository"
	paymentService "venue/internal/domains/payment/service"
	reviewRepository "venue/internal/domains/review/repository"
	reviewService "venue/internal/domains/review/service"
	roomRepository "venue/internal/domains/room/repository"
	roomService "venue/internal/domains/room/service"
	servicesRepository "venue/internal/domains/services/repository"
	servicesService "venue/internal/domains/services/service"

	eventHandler "venue/internal/handlers/event"
	invoiceHandler "venue/internal/handlers/invoice"
	notificationHandler "venue/internal/handlers/notification"
	paymentHandler "venue/internal/handlers/payment"
	reviewHandler "venue/internal/handlers/review"
	roomHandler "venue/internal/handlers/room"
	servicesHandler "venue/internal/handlers/services"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	stripe.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var servicesDomain = wire.NewSet(
	servicesRepository.New,
	servicesRepository.NewVariation,
	servicesRepository.NewServiceType,
	servicesService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventRepository.NewEventService,
	eventRepository.NewEventType,
	accountRepository.New,
	eventService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	servicesDomain,
	eventDomain,
	invoiceDomain,
	paymentDomain,
	reviewDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	servicesHandler.New,
	eventHandler.New,
	invoiceHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
