package handler

import (
	"log/slog"
	"net/http"

	"mdm/internal/delivery/http/middleware"
	"mdm/internal/delivery/http/response"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for reseller account and dashboard handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type createResellerRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	ContactPhone string `json:"contact_phone"`
}

// CreateReseller registers a new tenant. Admin only.
func (h *AccountHandler) CreateReseller(c echo.Context) error {
	var req createResellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reseller input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reseller input")
	}

	reseller, err := h.uc.CreateReseller(c.Request().Context(), middleware.ActorFrom(c), usecase.CreateResellerInput{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     req.Password,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reseller, "Reseller created successfully")
}

// GetReseller retrieves one tenant.
func (h *AccountHandler) GetReseller(c echo.Context) error {
	resellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reseller ID")
	}

	reseller, err := h.uc.GetReseller(c.Request().Context(), middleware.ActorFrom(c), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reseller, "")
}

// ListResellers retrieves all tenants. Admin only.
func (h *AccountHandler) ListResellers(c echo.Context) error {
	resellers, err := h.uc.ListResellers(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resellers, "")
}

// ResellerDashboard aggregates the authenticated tenant's counters.
func (h *AccountHandler) ResellerDashboard(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	dashboard, err := h.uc.ResellerDashboard(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// ResellerDashboardByID aggregates one tenant's counters. Admin only.
func (h *AccountHandler) ResellerDashboardByID(c echo.Context) error {
	resellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reseller ID")
	}

	dashboard, err := h.uc.ResellerDashboard(c.Request().Context(), middleware.ActorFrom(c), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// AdminDashboard aggregates system-wide counters. Admin only.
func (h *AccountHandler) AdminDashboard(c echo.Context) error {
	dashboard, err := h.uc.AdminDashboard(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}
