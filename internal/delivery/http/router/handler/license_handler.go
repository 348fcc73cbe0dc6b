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

// LicenseHandler holds dependencies for license pool handlers.
type LicenseHandler struct {
	uc     usecase.LicenseUsecase
	logger *slog.Logger
}

// NewLicenseHandler is the constructor for LicenseHandler, injected by Fx.
func NewLicenseHandler(uc usecase.LicenseUsecase, logger *slog.Logger) *LicenseHandler {
	return &LicenseHandler{
		uc:     uc,
		logger: logger,
	}
}

type grantLicensesRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// GrantLicenses creates a batch of licenses for a tenant. Admin only.
func (h *LicenseHandler) GrantLicenses(c echo.Context) error {
	resellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reseller ID")
	}

	var req grantLicensesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}

	output, err := h.uc.GrantLicenses(c.Request().Context(), middleware.ActorFrom(c), usecase.GrantLicensesInput{
		ResellerID: resellerID,
		Count:      req.Count,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Licenses, "Licenses granted successfully")
}

// ListOwn retrieves the authenticated tenant's licenses.
func (h *LicenseHandler) ListOwn(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	licenses, err := h.uc.ListLicenses(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, licenses, "")
}

// ListByReseller retrieves one tenant's licenses. Admin only.
func (h *LicenseHandler) ListByReseller(c echo.Context) error {
	resellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reseller ID")
	}

	licenses, err := h.uc.ListLicenses(c.Request().Context(), middleware.ActorFrom(c), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, licenses, "")
}

// Summary returns the authenticated tenant's license counters.
func (h *LicenseHandler) Summary(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	summary, err := h.uc.GetSummary(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
