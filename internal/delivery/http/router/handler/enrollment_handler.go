package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"mdm/internal/delivery/http/middleware"
	"mdm/internal/delivery/http/response"
	"mdm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnrollmentHandler holds dependencies for enrollment token handlers.
type EnrollmentHandler struct {
	uc     usecase.EnrollmentUsecase
	logger *slog.Logger
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler, injected by Fx.
func NewEnrollmentHandler(uc usecase.EnrollmentUsecase, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		uc:     uc,
		logger: logger,
	}
}

type issueTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	QRPayload string    `json:"qr_payload"`
	QRImage   string    `json:"qr_image"` // PNG, base64 for inline rendering.
}

// IssueToken reserves a license and returns a provisioning QR for it.
func (h *EnrollmentHandler) IssueToken(c echo.Context) error {
	output, err := h.uc.IssueToken(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, issueTokenResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		QRPayload: output.QRPayload,
		QRImage:   base64.StdEncoding.EncodeToString(output.QRImage),
	}, "Enrollment token issued")
}
