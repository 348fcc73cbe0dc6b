// Package router contains routing and server setup for the device API delivery.
package router

import (
	"mdm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler *handler.DeviceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler *handler.DeviceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler: params.DeviceHandler,
	}
}

// RegisterRoutes sets up all the device API routes.
// The handset authenticates by what it knows: a single-use enrollment token
// on enroll, its hardware identifier plus an unlock code afterwards.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.POST("/enroll", r.deviceHandler.Enroll)

		devicesGroup := apiV1.Group("/devices")
		{
			devicesGroup.POST("/telemetry", r.deviceHandler.ReportTelemetry)
			devicesGroup.POST("/status", r.deviceHandler.ReportStatus)
			devicesGroup.POST("/unlock", r.deviceHandler.Unlock)
		}
	}
}
