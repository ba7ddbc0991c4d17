// Package router contains routing and server setup for the API delivery.
package router

import (
	"notifyd/internal/delivery/api/middleware"
	"notifyd/internal/delivery/api/router/handler"
	"notifyd/internal/domain/constants"
	"notifyd/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	PreferenceHandler   *handler.PreferenceHandler
	NotificationHandler *handler.NotificationHandler
	EventHandler        *handler.EventHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	preferenceHandler   *handler.PreferenceHandler
	notificationHandler *handler.NotificationHandler
	eventHandler        *handler.EventHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		preferenceHandler:   params.PreferenceHandler,
		notificationHandler: params.NotificationHandler,
		eventHandler:        params.EventHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// API v1 routes
	apiV1 := e.Group("/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Device registry routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.RevokeDevice)
	}

	// Preference routes
	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreferences)
		preferencesGroup.PATCH("", r.preferenceHandler.UpdatePreferences)
	}

	// Notification center routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/:id/dismiss", r.notificationHandler.Dismiss)
	}

	// Producer routes require the service role
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)                       // First, check the token
	internalGroup.Use(r.authMiddleware.RequireRole(constants.RoleService)) // Then, check for the role
	{
		internalGroup.POST("/events", r.eventHandler.EnqueueEvent)
	}
}
