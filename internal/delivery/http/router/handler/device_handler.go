package handler

import (
	"log/slog"
	"net/http"

	"mdm/internal/delivery/http/middleware"
	"mdm/internal/delivery/http/response"
	"mdm/internal/domain/entity"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device lifecycle handlers.
type DeviceHandler struct {
	lifecycleUC usecase.DeviceLifecycleUsecase
	telemetryUC usecase.TelemetryUsecase
	policyUC    usecase.PolicyUsecase
	logger      *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(
	lifecycleUC usecase.DeviceLifecycleUsecase,
	telemetryUC usecase.TelemetryUsecase,
	policyUC usecase.PolicyUsecase,
	logger *slog.Logger,
) *DeviceHandler {
	return &DeviceHandler{
		lifecycleUC: lifecycleUC,
		telemetryUC: telemetryUC,
		policyUC:    policyUC,
		logger:      logger,
	}
}

func deviceIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// ListOwn retrieves the authenticated tenant's devices, newest first.
func (h *DeviceHandler) ListOwn(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	devices, err := h.lifecycleUC.ListDevices(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// ListAll retrieves devices across all tenants. Admin only.
func (h *DeviceHandler) ListAll(c echo.Context) error {
	devices, err := h.lifecycleUC.ListAllDevices(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// ListByReseller retrieves one tenant's devices. Admin only.
func (h *DeviceHandler) ListByReseller(c echo.Context) error {
	resellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reseller ID")
	}

	devices, err := h.lifecycleUC.ListDevices(c.Request().Context(), middleware.ActorFrom(c), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// GetDetail aggregates the device record, its license and its policy.
func (h *DeviceHandler) GetDetail(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	detail, err := h.lifecycleUC.GetDeviceDetail(c.Request().Context(), middleware.ActorFrom(c), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

type lockDeviceRequest struct {
	Message string `json:"message"`
}

// Lock transitions the device to LOCKED and returns the fresh unlock code.
func (h *DeviceHandler) Lock(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var req lockDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lock input")
	}

	code, err := h.lifecycleUC.LockDevice(c.Request().Context(), middleware.ActorFrom(c), usecase.LockDeviceInput{
		DeviceID: deviceID,
		Message:  req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, code, "Device locked")
}

// UnlockCode returns the outstanding unlock code for a LOCKED device.
func (h *DeviceHandler) UnlockCode(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	code, err := h.lifecycleUC.StaffUnlockCode(c.Request().Context(), middleware.ActorFrom(c), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, code, "")
}

// Unlock transitions the device back to ACTIVE from the console.
func (h *DeviceHandler) Unlock(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.lifecycleUC.StaffUnlock(c.Request().Context(), middleware.ActorFrom(c), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unlocked")
}

// Release retires the record and binds the license to the hardware identifier.
func (h *DeviceHandler) Release(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.lifecycleUC.ReleaseDevice(c.Request().Context(), middleware.ActorFrom(c), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device released")
}

type clientInfoRequest struct {
	ClientName  string `json:"client_name" validate:"required"`
	ClientPhone string `json:"client_phone"`
}

// UpdateClientInfo mutates the customer metadata attached to a device.
func (h *DeviceHandler) UpdateClientInfo(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var req clientInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client info input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client info input")
	}

	info := &entity.ClientInfo{
		Name:  req.ClientName,
		Phone: req.ClientPhone,
	}
	if err := h.lifecycleUC.UpdateClientInfo(c.Request().Context(), middleware.ActorFrom(c), deviceID, info); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client info updated")
}

// FrequentPlaces aggregates the device's retained location history.
func (h *DeviceHandler) FrequentPlaces(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	places, err := h.telemetryUC.GetFrequentPlaces(c.Request().Context(), middleware.ActorFrom(c), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, places, "")
}

// RequestLocation asks the device for a fresh location report.
func (h *DeviceHandler) RequestLocation(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.lifecycleUC.RequestLocation(c.Request().Context(), middleware.ActorFrom(c), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Location report requested")
}

// Reboot publishes a reboot intent to the management channel.
func (h *DeviceHandler) Reboot(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.lifecycleUC.RebootDevice(c.Request().Context(), middleware.ActorFrom(c), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Device reboot requested")
}

type assignPolicyRequest struct {
	PolicyID uuid.UUID `json:"policy_id" validate:"required"`
}

// AssignPolicy records a policy on the device and pushes it out.
func (h *DeviceHandler) AssignPolicy(c echo.Context) error {
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	var req assignPolicyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy assignment input")
	}

	if err := h.policyUC.AssignPolicy(c.Request().Context(), middleware.ActorFrom(c), deviceID, req.PolicyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Policy assigned")
}
