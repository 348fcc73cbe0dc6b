// Package router contains routing and server setup for the console delivery.
package router

import (
	"mdm/internal/delivery/http/middleware"
	"mdm/internal/delivery/http/router/handler"
	"mdm/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	LicenseHandler    *handler.LicenseHandler
	DeviceHandler     *handler.DeviceHandler
	PolicyHandler     *handler.PolicyHandler
	EnrollmentHandler *handler.EnrollmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the console API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Reseller console routes: require authentication and the "reseller" role
	resellerGroup := e.Group("/reseller")
	resellerGroup.Use(r.params.AuthMiddleware.Authenticate)
	resellerGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleReseller))
	{
		resellerGroup.GET("/dashboard", r.params.AccountHandler.ResellerDashboard)

		resellerGroup.GET("/licenses", r.params.LicenseHandler.ListOwn)
		resellerGroup.GET("/licenses/summary", r.params.LicenseHandler.Summary)

		resellerGroup.POST("/enrollment/qr", r.params.EnrollmentHandler.IssueToken)

		resellerGroup.GET("/devices", r.params.DeviceHandler.ListOwn)
		resellerGroup.GET("/devices/:id", r.params.DeviceHandler.GetDetail)
		resellerGroup.POST("/devices/:id/lock", r.params.DeviceHandler.Lock)
		resellerGroup.GET("/devices/:id/unlock-code", r.params.DeviceHandler.UnlockCode)
		resellerGroup.POST("/devices/:id/unlock", r.params.DeviceHandler.Unlock)
		resellerGroup.POST("/devices/:id/release", r.params.DeviceHandler.Release)
		resellerGroup.PUT("/devices/:id/client", r.params.DeviceHandler.UpdateClientInfo)
		resellerGroup.GET("/devices/:id/frequent-places", r.params.DeviceHandler.FrequentPlaces)
		resellerGroup.POST("/devices/:id/request-location", r.params.DeviceHandler.RequestLocation)
		resellerGroup.POST("/devices/:id/reboot", r.params.DeviceHandler.Reboot)
		resellerGroup.PUT("/devices/:id/policy", r.params.DeviceHandler.AssignPolicy)

		resellerGroup.GET("/policies", r.params.PolicyHandler.List)
		resellerGroup.POST("/policies", r.params.PolicyHandler.Create)
		resellerGroup.GET("/policies/:id", r.params.PolicyHandler.Get)
		resellerGroup.PUT("/policies/:id", r.params.PolicyHandler.Update)
		resellerGroup.DELETE("/policies/:id", r.params.PolicyHandler.Delete)
		resellerGroup.POST("/policies/:id/duplicate", r.params.PolicyHandler.Duplicate)
	}

	// Admin console routes: require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.params.AccountHandler.AdminDashboard)

		adminGroup.GET("/resellers", r.params.AccountHandler.ListResellers)
		adminGroup.POST("/resellers", r.params.AccountHandler.CreateReseller)
		adminGroup.GET("/resellers/:id", r.params.AccountHandler.GetReseller)
		adminGroup.GET("/resellers/:id/dashboard", r.params.AccountHandler.ResellerDashboardByID)
		adminGroup.GET("/resellers/:id/licenses", r.params.LicenseHandler.ListByReseller)
		adminGroup.POST("/resellers/:id/licenses", r.params.LicenseHandler.GrantLicenses)
		adminGroup.GET("/resellers/:id/devices", r.params.DeviceHandler.ListByReseller)

		adminGroup.GET("/devices", r.params.DeviceHandler.ListAll)
	}
}
