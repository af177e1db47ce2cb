// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chalet/internal/delivery/http/middleware"
	"chalet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	RentalHandler  *handler.RentalHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	rentalHandler  *handler.RentalHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		rentalHandler:  params.RentalHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// User lookup requires authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Rental routes. Reads carry an optional token; whether anonymous reads
	// pass is decided in the usecase from configuration. Pictures are served
	// from their public URLs without a token.
	rentalGroup := api.Group("/rentals")
	{
		rentalGroup.GET("", r.rentalHandler.ListRentals, r.authMiddleware.OptionalAuthenticate)
		rentalGroup.GET("/images/:file", r.rentalHandler.GetPicture)
		rentalGroup.GET("/:id", r.rentalHandler.GetRental, r.authMiddleware.OptionalAuthenticate)
		rentalGroup.POST("", r.rentalHandler.CreateRental, r.authMiddleware.Authenticate)
		rentalGroup.PUT("/:id", r.rentalHandler.UpdateRental, r.authMiddleware.Authenticate)
	}

	// Message routes
	messageGroup := api.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.SendMessage)
	}
}
