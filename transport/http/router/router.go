package router

import (
	"venue/internal/handlers/event"
	"venue/internal/handlers/invoice"
	"venue/internal/handlers/notification"
	"venue/internal/handlers/payment"
	"venue/internal/handlers/review"
	"venue/internal/handlers/room"
	"venue/internal/handlers/services"
	"venue/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room         room.Handler
	Services     services.Handler
	Event        event.Handler
	Invoice      invoice.Handler
	Payment      payment.Handler
	Review       review.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Services.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
