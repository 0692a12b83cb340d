// Package api assembles the request pipeline: the global stage chain, the
// route registry, and the handlers behind it.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/carmart/marketplace-api/internal/api/handler"
	"github.com/carmart/marketplace-api/internal/api/middleware"
	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/core/ports"
	"github.com/carmart/marketplace-api/internal/infrastructure/events"
)

// Dependencies carries everything the pipeline needs, injected at startup.
type Dependencies struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Cars   ports.CarService
	Broker *events.Broker
	Log    zerolog.Logger
}

// NewHandler builds the complete HTTP surface.
//
// Route resolution is first-match-wins in registration order, so the order
// below is load-bearing: a more specific path that a later pattern could
// also match must come first.
func NewHandler(deps Dependencies) http.Handler {
	userHandler := handler.NewUserHandler(deps.Auth, deps.Users)
	carHandler := handler.NewCarHandler(deps.Cars)
	sseHandler := handler.NewSSEHandler(deps.Broker)

	requireUser := middleware.Auth(deps.Auth)

	r := pipeline.NewRouter()
	r.Handle(http.MethodPost, "/register", userHandler.Register)
	r.Handle(http.MethodPost, "/login", userHandler.Login)
	r.Handle(http.MethodGet, "/users", requireUser, middleware.AdminOnly, userHandler.List)
	r.Handle(http.MethodPost, "/cars", requireUser, middleware.AdminOnly, carHandler.Create)
	r.Handle(http.MethodPost, "/cars/:id/buy", requireUser, carHandler.Buy)
	r.Handle(http.MethodPut, "/cars/:id", requireUser, middleware.AdminOnly, carHandler.Update)
	r.Handle(http.MethodDelete, "/cars/:id", requireUser, middleware.AdminOnly, carHandler.Delete)
	r.Handle(http.MethodPut, "/users/:id", requireUser, userHandler.Update)
	r.Handle(http.MethodDelete, "/users/:id", requireUser, userHandler.Delete)
	r.Handle(http.MethodPost, "/users/:id/fund", requireUser, middleware.AdminOnly, userHandler.Fund)
	r.Handle(http.MethodGet, "/users/me", requireUser, userHandler.Me)
	r.Handle(http.MethodGet, "/cars", carHandler.List)
	r.Handle(http.MethodGet, "/cars/:id", carHandler.Get)
	r.Handle(http.MethodGet, "/sse", sseHandler.Stream)
	r.Handle(http.MethodGet, "/health", handler.Health)
	r.Handle(http.MethodGet, "/metrics", metricsStage())

	global := []pipeline.Stage{
		middleware.Recover(deps.Log),
		middleware.Logging(deps.Log),
		middleware.Metrics(),
		middleware.CORS,
		middleware.BodyParser,
		r.Dispatch(),
	}

	return pipeline.Handler(deps.Log, global)
}

// metricsStage adapts the Prometheus exposition handler into a route stage.
func metricsStage() pipeline.Stage {
	prom := promhttp.Handler()
	return func(c *pipeline.Context, _ func()) {
		prom.ServeHTTP(c.Response, c.Request)
	}
}
