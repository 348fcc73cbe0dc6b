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

// PolicyHandler holds dependencies for policy management handlers.
type PolicyHandler struct {
	uc     usecase.PolicyUsecase
	logger *slog.Logger
}

// NewPolicyHandler is the constructor for PolicyHandler, injected by Fx.
func NewPolicyHandler(uc usecase.PolicyUsecase, logger *slog.Logger) *PolicyHandler {
	return &PolicyHandler{
		uc:     uc,
		logger: logger,
	}
}

type policyRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	IsDefault   bool                `json:"is_default"`
	Config      entity.PolicyConfig `json:"config"`
}

// Create persists a new policy for the authenticated tenant.
func (h *PolicyHandler) Create(c echo.Context) error {
	var req policyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy input")
	}

	policy, err := h.uc.CreatePolicy(c.Request().Context(), middleware.ActorFrom(c), usecase.CreatePolicyInput{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
		Config:      req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, policy, "Policy created successfully")
}

// Get retrieves one policy.
func (h *PolicyHandler) Get(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid policy ID")
	}

	policy, err := h.uc.GetPolicy(c.Request().Context(), middleware.ActorFrom(c), policyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, policy, "")
}

// List retrieves the authenticated tenant's policies ordered by name.
func (h *PolicyHandler) List(c echo.Context) error {
	actor := middleware.ActorFrom(c)

	policies, err := h.uc.ListPolicies(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, policies, "")
}

// Update persists changes, bumps the version and pushes the policy out.
func (h *PolicyHandler) Update(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid policy ID")
	}

	var req policyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy input")
	}

	policy, err := h.uc.UpdatePolicy(c.Request().Context(), middleware.ActorFrom(c), usecase.UpdatePolicyInput{
		PolicyID:    policyID,
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
		Config:      req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, policy, "Policy updated successfully")
}

// Duplicate copies a policy under a derived name.
func (h *PolicyHandler) Duplicate(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid policy ID")
	}

	policy, err := h.uc.DuplicatePolicy(c.Request().Context(), middleware.ActorFrom(c), policyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, policy, "Policy duplicated successfully")
}

// Delete removes a non-default policy.
func (h *PolicyHandler) Delete(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid policy ID")
	}

	if err := h.uc.DeletePolicy(c.Request().Context(), middleware.ActorFrom(c), policyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Policy deleted successfully")
}
