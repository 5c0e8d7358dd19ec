package router

import (
	"hostel/internal/handlers/guest"
	"hostel/internal/handlers/report"
	"hostel/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Guest  guest.Handler
	Room   room.Handler
	Report report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
