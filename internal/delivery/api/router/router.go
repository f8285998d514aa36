// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler   *handler.StoreHandler
	ReviewHandler  *handler.ReviewHandler
	QRCodeHandler  *handler.QRCodeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler   *handler.StoreHandler
	reviewHandler  *handler.ReviewHandler
	qrCodeHandler  *handler.QRCodeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler:   params.StoreHandler,
		reviewHandler:  params.ReviewHandler,
		qrCodeHandler:  params.QRCodeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Storefront banner
	api.GET("/store/status", r.storeHandler.GetStatus)

	productsGroup := api.Group("/products/:id")
	{
		productsGroup.GET("/rating", r.reviewHandler.GetRating)
		productsGroup.GET("/reviews", r.reviewHandler.ListReviews)
		productsGroup.GET("/review-qr", r.qrCodeHandler.GetReviewQR)

		// Writing a review requires a signed-in customer
		productsGroup.POST("/reviews", r.reviewHandler.SubmitReview, r.authMiddleware.Authenticate)
	}
}
