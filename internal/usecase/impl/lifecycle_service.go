package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mdm/config"
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

type lifecycleService struct {
	txManager     repository.TransactionManager
	deviceRepo    repository.DeviceRepository
	licenseRepo   repository.LicenseRepository
	codeRepo      repository.UnlockCodeRepository
	policyRepo    repository.PolicyRepository
	codeGenerator service.CodeGenerator
	mgmtChannel   service.ManagementChannel
	config        *config.Config
	logger        *slog.Logger
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DeviceRepo    repository.DeviceRepository
	LicenseRepo   repository.LicenseRepository
	CodeRepo      repository.UnlockCodeRepository
	PolicyRepo    repository.PolicyRepository
	CodeGenerator service.CodeGenerator
	MgmtChannel   service.ManagementChannel
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLifecycleService creates a new device lifecycle service instance
func NewLifecycleService(params LifecycleServiceParams) usecase.DeviceLifecycleUsecase {
	return &lifecycleService{
		txManager:     params.TxManager,
		deviceRepo:    params.DeviceRepo,
		licenseRepo:   params.LicenseRepo,
		codeRepo:      params.CodeRepo,
		policyRepo:    params.PolicyRepo,
		codeGenerator: params.CodeGenerator,
		mgmtChannel:   params.MgmtChannel,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// LockDevice transitions ACTIVE to LOCKED, issues a fresh unlock code and
// publishes a lock intent. The transition, the supersession of any previous
// code and the new code's insert commit atomically.
func (s *lifecycleService) LockDevice(ctx context.Context, actor usecase.Actor, input usecase.LockDeviceInput) (*usecase.UnlockCodeOutput, error) {
	device, err := s.authorizeDevice(ctx, actor, input.DeviceID)
	if err != nil {
		return nil, err
	}

	code, err := s.newUnlockCode(device.ID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceRepo().Lock(ctx, device.ID, input.Message); err != nil {
			return mapDeviceTransitionErr(err, device)
		}

		if err := repoFactory.CodeRepo().SupersedeIssued(ctx, device.ID); err != nil {
			return errors.Wrap(err, "failed to supersede unlock codes")
		}

		return repoFactory.CodeRepo().Create(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	s.publishIntent(ctx, device, service.IntentLock, func(intent *service.ManagementIntent) {
		intent.Message = input.Message
	})

	return &usecase.UnlockCodeOutput{Code: code.Code, ExpiresAt: code.ExpiresAt}, nil
}

// StaffUnlockCode returns the outstanding unlock code for a LOCKED device,
// issuing a fresh one when the outstanding code expired or none exists.
func (s *lifecycleService) StaffUnlockCode(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) (*usecase.UnlockCodeOutput, error) {
	device, err := s.authorizeDevice(ctx, actor, deviceID)
	if err != nil {
		return nil, err
	}

	if device.State != entity.DeviceStateLocked {
		return nil, domainerrors.ErrInvalidDeviceState.WrapMessage("device is not locked")
	}

	outstanding, err := s.codeRepo.FindIssuedByDevice(ctx, deviceID)
	if err == nil && !outstanding.Expired(time.Now()) {
		return &usecase.UnlockCodeOutput{Code: outstanding.Code, ExpiresAt: outstanding.ExpiresAt}, nil
	}
	if err != nil && !errors.Is(err, repository.ErrUnlockCodeNotFound) {
		return nil, errors.Wrap(err, "failed to find issued unlock code")
	}

	code, err := s.newUnlockCode(deviceID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CodeRepo().SupersedeIssued(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to supersede unlock codes")
		}

		return repoFactory.CodeRepo().Create(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.UnlockCodeOutput{Code: code.Code, ExpiresAt: code.ExpiresAt}, nil
}

// DeviceUnlock verifies a code submitted by the device itself, consumes it
// and transitions LOCKED back to ACTIVE atomically.
func (s *lifecycleService) DeviceUnlock(ctx context.Context, input usecase.DeviceUnlockInput) (*entity.Device, error) {
	device, err := s.deviceRepo.FindManagedByIMEI(ctx, input.IMEI)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by IMEI")
	}

	if device.State != entity.DeviceStateLocked {
		return nil, domainerrors.ErrInvalidDeviceState.WrapMessage("device is not locked")
	}

	outstanding, err := s.codeRepo.FindIssuedByDevice(ctx, device.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUnlockCodeNotFound) {
			return nil, domainerrors.ErrInvalidUnlockCode
		}

		return nil, errors.Wrap(err, "failed to find issued unlock code")
	}

	// Case-insensitive match; expiry beats an exact match.
	if !strings.EqualFold(outstanding.Code, input.Code) {
		return nil, domainerrors.ErrInvalidUnlockCode
	}
	if outstanding.Expired(time.Now()) {
		return nil, domainerrors.ErrInvalidUnlockCode.WrapMessage("unlock code expired")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CodeRepo().Consume(ctx, outstanding.ID); err != nil {
			if errors.Is(err, repository.ErrUnlockCodeStateConflict) {
				return domainerrors.ErrInvalidUnlockCode
			}

			return errors.Wrap(err, "failed to consume unlock code")
		}

		if err := repoFactory.DeviceRepo().Unlock(ctx, device.ID); err != nil {
			return mapDeviceTransitionErr(err, device)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	device.State = entity.DeviceStateActive
	device.LockMessage = ""

	return device, nil
}

// StaffUnlock transitions LOCKED back to ACTIVE from the console.
func (s *lifecycleService) StaffUnlock(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) error {
	device, err := s.authorizeDevice(ctx, actor, deviceID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceRepo().Unlock(ctx, deviceID); err != nil {
			return mapDeviceTransitionErr(err, device)
		}

		// Outstanding codes die with the lock.
		return repoFactory.CodeRepo().SupersedeIssued(ctx, deviceID)
	})
	if err != nil {
		return err
	}

	s.publishIntent(ctx, device, service.IntentUnlock, nil)

	return nil
}

// ReleaseDevice transitions the record to RELEASED and binds the license
// permanently to the hardware identifier, in one transaction.
func (s *lifecycleService) ReleaseDevice(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) error {
	device, err := s.authorizeDevice(ctx, actor, deviceID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DeviceRepo().Release(ctx, deviceID); err != nil {
			return mapDeviceTransitionErr(err, device)
		}

		if err := repoFactory.CodeRepo().SupersedeIssued(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to supersede unlock codes")
		}

		if err := repoFactory.LicenseRepo().BindToDevice(ctx, device.LicenseID, device.IMEI); err != nil {
			return errors.Wrap(err, "failed to bind license")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publishIntent(ctx, device, service.IntentRelease, nil)

	return nil
}

// ListDevices retrieves the reseller's devices, newest first.
func (s *lifecycleService) ListDevices(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) ([]*entity.Device, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	devices, err := s.deviceRepo.ListByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// ListAllDevices retrieves devices across all tenants. Admin only.
func (s *lifecycleService) ListAllDevices(ctx context.Context, actor usecase.Actor) ([]*entity.Device, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	devices, err := s.deviceRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all devices")
	}

	return devices, nil
}

// GetDeviceDetail aggregates the device, its license and its policy.
func (s *lifecycleService) GetDeviceDetail(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) (*usecase.DeviceDetailOutput, error) {
	device, err := s.findDevice(ctx, actor, deviceID)
	if err != nil {
		return nil, err
	}

	license, err := s.licenseRepo.FindByID(ctx, device.LicenseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device license")
	}

	detail := &usecase.DeviceDetailOutput{Device: device, License: license}

	if device.PolicyID != nil {
		policy, err := s.policyRepo.FindByID(ctx, *device.PolicyID)
		if err != nil && !errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, errors.Wrap(err, "failed to find device policy")
		}
		detail.Policy = policy
	}

	return detail, nil
}

// UpdateClientInfo mutates the customer metadata attached to a device.
func (s *lifecycleService) UpdateClientInfo(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID, info *entity.ClientInfo) error {
	if _, err := s.findDevice(ctx, actor, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateClientInfo(ctx, deviceID, info); err != nil {
		return errors.Wrap(err, "failed to update client info")
	}

	return nil
}

// RequestLocation publishes a location report request to the management channel.
func (s *lifecycleService) RequestLocation(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) error {
	device, err := s.authorizeDevice(ctx, actor, deviceID)
	if err != nil {
		return err
	}

	s.publishIntent(ctx, device, service.IntentRequestLocation, nil)

	return nil
}

// RebootDevice publishes a reboot intent to the management channel.
func (s *lifecycleService) RebootDevice(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) error {
	device, err := s.authorizeDevice(ctx, actor, deviceID)
	if err != nil {
		return err
	}

	s.publishIntent(ctx, device, service.IntentReboot, nil)

	return nil
}

// findDevice loads a device and checks tenant scope.
func (s *lifecycleService) findDevice(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if !actor.CanAccess(device.ResellerID) {
		return nil, domainerrors.ErrForbidden
	}

	return device, nil
}

// authorizeDevice loads a device, checks tenant scope and rejects RELEASED records.
func (s *lifecycleService) authorizeDevice(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.findDevice(ctx, actor, deviceID)
	if err != nil {
		return nil, err
	}

	if !device.IsManaged() {
		return nil, domainerrors.ErrDeviceReleased
	}

	return device, nil
}

func (s *lifecycleService) newUnlockCode(deviceID uuid.UUID) (*entity.UnlockCode, error) {
	value, err := s.codeGenerator.UnlockCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate unlock code")
	}

	return &entity.UnlockCode{
		DeviceID:  deviceID,
		Code:      value,
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(s.config.UnlockCode.TTL),
	}, nil
}

func (s *lifecycleService) publishIntent(ctx context.Context, device *entity.Device, kind service.IntentType, customize func(*service.ManagementIntent)) {
	intent := &service.ManagementIntent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Intent:    kind,
		DeviceID:  device.ID.String(),
		IMEI:      device.IMEI,
		IssuedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if customize != nil {
		customize(intent)
	}

	// Fire and forget: outcome reaches us through status callbacks.
	if err := s.mgmtChannel.PublishIntent(ctx, intent); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish management intent",
			slog.String("intent", string(kind)),
			slog.String("device_id", device.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// mapDeviceTransitionErr converts repository transition errors into the
// domain taxonomy, using the state observed before the attempt for the message.
func mapDeviceTransitionErr(err error, device *entity.Device) error {
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrDeviceStateConflict):
		if device != nil && device.State == entity.DeviceStateReleased {
			return domainerrors.ErrDeviceReleased
		}

		return domainerrors.ErrInvalidDeviceState
	default:
		return errors.Wrap(err, "device transition failed")
	}
}
