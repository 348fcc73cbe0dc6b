// Package handler contains the handlers of the device-facing API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mdm/internal/delivery/api/response"
	"mdm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// DeviceHandler holds dependencies for handlers the enrolled handsets call.
type DeviceHandler struct {
	enrollmentUC usecase.EnrollmentUsecase
	lifecycleUC  usecase.DeviceLifecycleUsecase
	telemetryUC  usecase.TelemetryUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(
	enrollmentUC usecase.EnrollmentUsecase,
	lifecycleUC usecase.DeviceLifecycleUsecase,
	telemetryUC usecase.TelemetryUsecase,
	logger *slog.Logger,
) *DeviceHandler {
	return &DeviceHandler{
		enrollmentUC: enrollmentUC,
		lifecycleUC:  lifecycleUC,
		telemetryUC:  telemetryUC,
		logger:       logger,
	}
}

type enrollRequest struct {
	Token       string `json:"token" validate:"required"`
	IMEI        string `json:"imei" validate:"required"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

// Enroll consumes a provisioning token and creates the device record.
func (h *DeviceHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment input")
	}

	output, err := h.enrollmentUC.Enroll(c.Request().Context(), usecase.EnrollInput{
		Token:       req.Token,
		IMEI:        req.IMEI,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

type telemetryRequest struct {
	IMEI       string    `json:"imei" validate:"required"`
	Battery    int       `json:"battery" validate:"min=0,max=100"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	ReportedAt time.Time `json:"reported_at" validate:"required"`
}

type reportAck struct {
	Applied bool `json:"applied"` // False when a newer report already landed.
}

// ReportTelemetry ingests a periodic device snapshot.
func (h *DeviceHandler) ReportTelemetry(c echo.Context) error {
	var req telemetryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid telemetry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid telemetry input")
	}

	applied, err := h.telemetryUC.ReportTelemetry(c.Request().Context(), usecase.TelemetryReportInput{
		IMEI:       req.IMEI,
		Battery:    req.Battery,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		ReportedAt: req.ReportedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reportAck{Applied: applied})
}

type statusRequest struct {
	IMEI       string    `json:"imei" validate:"required"`
	State      string    `json:"state" validate:"required"`
	ReportedAt time.Time `json:"reported_at" validate:"required"`
}

// ReportStatus ingests a management channel status callback.
func (h *DeviceHandler) ReportStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	applied, err := h.telemetryUC.ReportStatus(c.Request().Context(), usecase.StatusReportInput{
		IMEI:       req.IMEI,
		State:      req.State,
		ReportedAt: req.ReportedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reportAck{Applied: applied})
}

type unlockRequest struct {
	IMEI string `json:"imei" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// Unlock verifies an unlock code typed on the device.
func (h *DeviceHandler) Unlock(c echo.Context) error {
	var req unlockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unlock input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unlock input")
	}

	device, err := h.lifecycleUC.DeviceUnlock(c.Request().Context(), usecase.DeviceUnlockInput{
		IMEI: req.IMEI,
		Code: req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device)
}
