// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"projectforge/config"
	"projectforge/internal/delivery/api/middleware"
	"projectforge/internal/delivery/api/router/handler"
	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	EntityHandlers   *handler.EntityHandlers
	UserPrefHandler  *handler.UserPrefHandler
	JobHandler       *handler.JobHandler
	OrderInfoHandler *handler.OrderInfoHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Users            repository.UserRepository
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	entityHandlers   *handler.EntityHandlers
	userPrefHandler  *handler.UserPrefHandler
	jobHandler       *handler.JobHandler
	orderInfoHandler *handler.OrderInfoHandler
	authMiddleware   *middleware.AuthMiddleware
	users            repository.UserRepository
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		entityHandlers:   params.EntityHandlers,
		userPrefHandler:  params.UserPrefHandler,
		jobHandler:       params.JobHandler,
		orderInfoHandler: params.OrderInfoHandler,
		authMiddleware:   params.AuthMiddleware,
		users:            params.Users,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// Everything else requires authentication
	secured := apiV1.Group("")
	secured.Use(r.authMiddleware.Authenticate)
	secured.Use(middleware.UserLoader(r.users))

	eh := r.entityHandlers
	usersGroup := secured.Group("/users")
	{
		usersGroup.GET("/me", eh.Me)
		usersGroup.PUT("/:id/password", eh.ChangePassword)
		eh.Users.Register(usersGroup)
	}
	eh.Groups.Register(secured.Group("/groups"))
	eh.Customers.Register(secured.Group("/customers"))

	ordersGroup := secured.Group("/orders")
	{
		ordersGroup.GET("/toBeInvoiced", r.orderInfoHandler.ToBeInvoiced)
		ordersGroup.GET("/:id/info", r.orderInfoHandler.Info)
		eh.Orders.Register(ordersGroup)
	}
	eh.Invoices.Register(secured.Group("/invoices"))

	// User preference routes
	prefsGroup := secured.Group("/userprefs")
	{
		prefsGroup.GET("/:area/:name", r.userPrefHandler.Get)
		prefsGroup.PUT("/:area/:name", r.userPrefHandler.Put)
		prefsGroup.DELETE("/:area/:name", r.userPrefHandler.Delete)
	}

	// Job routes
	jobsGroup := secured.Group("/jobs")
	{
		jobsGroup.GET("", r.jobHandler.List)
		jobsGroup.GET("/:id", r.jobHandler.Get)
		jobsGroup.POST("/:id/cancel", r.jobHandler.Cancel)
	}

	// Admin routes require the admin group
	adminGroup := secured.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireGroup(constants.GroupAdmin))
	{
		adminGroup.POST("/reindex", r.jobHandler.Reindex)
	}
}
