package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mdm/internal/delivery/context"
	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/domain/service"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// duplicateSuffix is appended to the name of a duplicated policy, matching
// what the console labels copies with.
const duplicateSuffix = " (Copia)"

type policyService struct {
	txManager   repository.TransactionManager
	policyRepo  repository.PolicyRepository
	deviceRepo  repository.DeviceRepository
	mgmtChannel service.ManagementChannel
	logger      *slog.Logger
}

// PolicyServiceParams holds dependencies for PolicyService, injected by Fx.
type PolicyServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PolicyRepo  repository.PolicyRepository
	DeviceRepo  repository.DeviceRepository
	MgmtChannel service.ManagementChannel
	Logger      *slog.Logger
}

// NewPolicyService creates a new policy service instance
func NewPolicyService(params PolicyServiceParams) usecase.PolicyUsecase {
	return &policyService{
		txManager:   params.TxManager,
		policyRepo:  params.PolicyRepo,
		deviceRepo:  params.DeviceRepo,
		mgmtChannel: params.MgmtChannel,
		logger:      params.Logger,
	}
}

// CreatePolicy persists a new policy.
func (s *policyService) CreatePolicy(ctx context.Context, actor usecase.Actor, input usecase.CreatePolicyInput) (*entity.Policy, error) {
	if actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("policies belong to reseller tenants")
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("policy name is required")
	}

	policy := &entity.Policy{
		ResellerID:  actor.ID,
		Name:        input.Name,
		Description: input.Description,
		Version:     1,
		IsDefault:   input.IsDefault,
		Config:      input.Config,
	}

	// A tenant's first policy becomes the default regardless of the request,
	// so every tenant always has one.
	existing, err := s.policyRepo.ListByReseller(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policies")
	}
	if len(existing) == 0 {
		policy.IsDefault = true
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if policy.IsDefault {
			if err := repoFactory.PolicyRepo().ClearDefault(ctx, actor.ID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		if err := repoFactory.PolicyRepo().Create(ctx, policy); err != nil {
			if errors.Is(err, repository.ErrDuplicatePolicy) {
				return domainerrors.ErrDuplicatePolicyName
			}

			return errors.Wrap(err, "failed to create policy")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return policy, nil
}

// GetPolicy retrieves one policy of the actor's tenant.
func (s *policyService) GetPolicy(ctx context.Context, actor usecase.Actor, policyID uuid.UUID) (*entity.Policy, error) {
	return s.findPolicy(ctx, actor, policyID)
}

// ListPolicies retrieves the tenant's policies ordered by name.
func (s *policyService) ListPolicies(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) ([]*entity.Policy, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	policies, err := s.policyRepo.ListByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policies")
	}

	return policies, nil
}

// UpdatePolicy persists changes, bumps the version and publishes an apply
// intent to every device assigned to the policy.
func (s *policyService) UpdatePolicy(ctx context.Context, actor usecase.Actor, input usecase.UpdatePolicyInput) (*entity.Policy, error) {
	policy, err := s.findPolicy(ctx, actor, input.PolicyID)
	if err != nil {
		return nil, err
	}

	// The default marking is never removed by an update, only moved by
	// marking another policy.
	if policy.IsDefault && !input.IsDefault {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("the default policy cannot be unmarked")
	}

	policy.Name = input.Name
	policy.Description = input.Description
	policy.Config = input.Config

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.IsDefault && !policy.IsDefault {
			if err := repoFactory.PolicyRepo().ClearDefault(ctx, policy.ResellerID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
			policy.IsDefault = true
		}

		if err := repoFactory.PolicyRepo().Update(ctx, policy); err != nil {
			if errors.Is(err, repository.ErrDuplicatePolicy) {
				return domainerrors.ErrDuplicatePolicyName
			}
			if errors.Is(err, repository.ErrPolicyNotFound) {
				return domainerrors.ErrPolicyNotFound
			}

			return errors.Wrap(err, "failed to update policy")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishToAssignedDevices(ctx, policy)

	return policy, nil
}

// DuplicatePolicy copies a policy under a derived name.
func (s *policyService) DuplicatePolicy(ctx context.Context, actor usecase.Actor, policyID uuid.UUID) (*entity.Policy, error) {
	source, err := s.findPolicy(ctx, actor, policyID)
	if err != nil {
		return nil, err
	}

	copied := &entity.Policy{
		ResellerID:  source.ResellerID,
		Name:        source.Name + duplicateSuffix,
		Description: source.Description,
		Version:     1,
		IsDefault:   false,
		Config:      source.Config,
	}

	if err := s.policyRepo.Create(ctx, copied); err != nil {
		if errors.Is(err, repository.ErrDuplicatePolicy) {
			return nil, domainerrors.ErrDuplicatePolicyName
		}

		return nil, errors.Wrap(err, "failed to duplicate policy")
	}

	return copied, nil
}

// DeletePolicy removes a non-default policy, reassigning its devices to the
// tenant default in the same transaction.
func (s *policyService) DeletePolicy(ctx context.Context, actor usecase.Actor, policyID uuid.UUID) error {
	policy, err := s.findPolicy(ctx, actor, policyID)
	if err != nil {
		return err
	}

	if policy.IsDefault {
		return domainerrors.ErrCannotDeleteDefault
	}

	fallback, err := s.policyRepo.FindDefault(ctx, policy.ResellerID)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return domainerrors.ErrNoDefaultPolicy
		}

		return errors.Wrap(err, "failed to find default policy")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceRepo().ReassignPolicy(ctx, policy.ID, fallback.ID); err != nil {
			return errors.Wrap(err, "failed to reassign devices")
		}

		if err := repoFactory.PolicyRepo().Delete(ctx, policy.ID); err != nil {
			if errors.Is(err, repository.ErrPolicyNotFound) {
				return domainerrors.ErrPolicyNotFound
			}

			return errors.Wrap(err, "failed to delete policy")
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Inherited devices receive the fallback configuration.
	s.publishToAssignedDevices(ctx, fallback)

	return nil
}

// AssignPolicy records a policy on a device and publishes an apply intent.
func (s *policyService) AssignPolicy(ctx context.Context, actor usecase.Actor, deviceID, policyID uuid.UUID) error {
	policy, err := s.findPolicy(ctx, actor, policyID)
	if err != nil {
		return err
	}

	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device")
	}

	// Policies never cross tenants.
	if device.ResellerID != policy.ResellerID || !actor.CanAccess(device.ResellerID) {
		return domainerrors.ErrForbidden
	}
	if !device.IsManaged() {
		return domainerrors.ErrDeviceReleased
	}

	if err := s.deviceRepo.AssignPolicy(ctx, deviceID, policyID); err != nil {
		return errors.Wrap(err, "failed to assign policy")
	}

	s.publishApply(ctx, device, policy)

	return nil
}

// findPolicy loads a policy and checks tenant scope.
func (s *policyService) findPolicy(ctx context.Context, actor usecase.Actor, policyID uuid.UUID) (*entity.Policy, error) {
	policy, err := s.policyRepo.FindByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy")
	}

	if !actor.CanAccess(policy.ResellerID) {
		return nil, domainerrors.ErrForbidden
	}

	return policy, nil
}

// publishToAssignedDevices fans one apply intent out to every managed device
// currently assigned to the policy.
func (s *policyService) publishToAssignedDevices(ctx context.Context, policy *entity.Policy) {
	devices, err := s.deviceRepo.ListByReseller(ctx, policy.ResellerID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to list devices for policy fan-out",
			slog.String("policy_id", policy.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	for _, device := range devices {
		if device.PolicyID == nil || *device.PolicyID != policy.ID || !device.IsManaged() {
			continue
		}
		s.publishApply(ctx, device, policy)
	}
}

func (s *policyService) publishApply(ctx context.Context, device *entity.Device, policy *entity.Policy) {
	intent := &service.ManagementIntent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Intent:    service.IntentApplyPolicy,
		DeviceID:  device.ID.String(),
		IMEI:      device.IMEI,
		PolicyRef: policy.Ref(),
		IssuedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	// Fire and forget: outcome reaches us through status callbacks.
	if err := s.mgmtChannel.PublishIntent(ctx, intent); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish apply-policy intent",
			slog.String("device_id", device.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
