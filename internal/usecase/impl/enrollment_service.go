package impl

import (
	"context"
	"log/slog"
	"time"

	"mdm/config"
	deliverycontext "mdm/internal/delivery/context"
	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/domain/service"
	"mdm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type enrollmentService struct {
	txManager     repository.TransactionManager
	licenseRepo   repository.LicenseRepository
	tokenRepo     repository.EnrollmentTokenRepository
	policyRepo    repository.PolicyRepository
	codeGenerator service.CodeGenerator
	qrcodeService service.QRCodeService
	mgmtChannel   service.ManagementChannel
	config        *config.Config
	logger        *slog.Logger
}

// EnrollmentServiceParams holds dependencies for EnrollmentService, injected by Fx.
type EnrollmentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	LicenseRepo   repository.LicenseRepository
	TokenRepo     repository.EnrollmentTokenRepository
	PolicyRepo    repository.PolicyRepository
	CodeGenerator service.CodeGenerator
	QRCodeService service.QRCodeService
	MgmtChannel   service.ManagementChannel
	Config        *config.Config
	Logger        *slog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(params EnrollmentServiceParams) usecase.EnrollmentUsecase {
	return &enrollmentService{
		txManager:     params.TxManager,
		licenseRepo:   params.LicenseRepo,
		tokenRepo:     params.TokenRepo,
		policyRepo:    params.PolicyRepo,
		codeGenerator: params.CodeGenerator,
		qrcodeService: params.QRCodeService,
		mgmtChannel:   params.MgmtChannel,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// IssueToken reserves one license and returns a provisioning QR embedding the
// new single-use token. The claim and the token insert commit atomically so a
// crash between them cannot strand a reservation.
func (s *enrollmentService) IssueToken(ctx context.Context, actor usecase.Actor) (*usecase.IssueTokenOutput, error) {
	if actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("tokens are issued by reseller staff")
	}

	tokenValue, err := s.codeGenerator.EnrollmentToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate enrollment token")
	}

	token := &entity.EnrollmentToken{
		Token:      tokenValue,
		ResellerID: actor.ID,
		State:      entity.EnrollmentTokenStatePending,
		ExpiresAt:  time.Now().Add(s.config.Enrollment.TokenTTL),
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		license, err := repoFactory.LicenseRepo().ClaimAvailable(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNoAvailableLicense) {
				return domainerrors.ErrNoLicenseAvailable
			}

			return errors.Wrap(err, "failed to claim license")
		}

		token.LicenseID = license.ID

		return repoFactory.TokenRepo().Create(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	qr, err := s.qrcodeService.GenerateEnrollmentQR(token.Token)
	if err != nil {
		// The reservation stands; the console can retry rendering via a new token.
		return nil, errors.Wrap(err, "failed to render provisioning QR")
	}

	return &usecase.IssueTokenOutput{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		QRPayload: qr.Payload,
		QRImage:   qr.PNG,
	}, nil
}

// Enroll consumes a PENDING token and creates the device record.
func (s *enrollmentService) Enroll(ctx context.Context, input usecase.EnrollInput) (*usecase.EnrollOutput, error) {
	if input.Token == "" || input.IMEI == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("token and IMEI are required")
	}

	token, err := s.tokenRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment token")
	}

	switch token.State {
	case entity.EnrollmentTokenStateConsumed:
		return nil, domainerrors.ErrTokenAlreadyConsumed
	case entity.EnrollmentTokenStateExpired:
		return nil, domainerrors.ErrTokenExpired
	case entity.EnrollmentTokenStatePending:
		// Proceed.
	}

	// Lazy expiry: a PENDING token past its TTL is expired on touch, before
	// the sweeper gets to it. Both paths converge on the same guarded updates.
	if token.Expired(time.Now()) {
		if err := s.expireToken(ctx, token); err != nil {
			return nil, err
		}

		return nil, domainerrors.ErrTokenExpired
	}

	var device *entity.Device
	var appliedPolicy *entity.Policy

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Consuming first serializes concurrent uses of the same token: the
		// loser's guarded update matches nothing and the whole tx rolls back.
		if err := repoFactory.TokenRepo().Consume(ctx, token.ID); err != nil {
			if errors.Is(err, repository.ErrTokenStateConflict) {
				return domainerrors.ErrTokenAlreadyConsumed
			}

			return errors.Wrap(err, "failed to consume enrollment token")
		}

		licenseID := token.LicenseID

		// A released handset re-enrolling keeps its BOUND license; the
		// token's reservation goes back to the pool.
		bound, err := repoFactory.LicenseRepo().FindBoundByIMEI(ctx, token.ResellerID, input.IMEI)
		switch {
		case err == nil:
			if err := repoFactory.LicenseRepo().Reactivate(ctx, bound.ID, input.IMEI); err != nil {
				if errors.Is(err, repository.ErrLicenseStateConflict) {
					return domainerrors.ErrDeviceMismatch
				}

				return errors.Wrap(err, "failed to reactivate bound license")
			}
			if err := repoFactory.LicenseRepo().ReleaseReservation(ctx, token.LicenseID); err != nil {
				return errors.Wrap(err, "failed to return reserved license")
			}
			licenseID = bound.ID
		case errors.Is(err, repository.ErrLicenseNotFound):
			if err := repoFactory.LicenseRepo().AssignIMEI(ctx, token.LicenseID, input.IMEI); err != nil {
				return errors.Wrap(err, "failed to assign hardware to license")
			}
		default:
			return errors.Wrap(err, "failed to look up bound license")
		}

		device = &entity.Device{
			ResellerID:  token.ResellerID,
			LicenseID:   licenseID,
			IMEI:        input.IMEI,
			State:       entity.DeviceStateActive,
			ClientName:  input.ClientName,
			ClientPhone: input.ClientPhone,
		}

		// New enrollments start on the tenant default policy when one exists.
		defaultPolicy, err := repoFactory.PolicyRepo().FindDefault(ctx, token.ResellerID)
		if err == nil {
			device.PolicyID = &defaultPolicy.ID
			appliedPolicy = defaultPolicy
		} else if !errors.Is(err, repository.ErrPolicyNotFound) {
			return errors.Wrap(err, "failed to find default policy")
		}

		if err := repoFactory.DeviceRepo().Create(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDuplicateDevice) {
				return domainerrors.ErrDeviceAlreadyEnrolled
			}

			return errors.Wrap(err, "failed to create device")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if appliedPolicy != nil {
		s.publishApplyPolicy(ctx, device, appliedPolicy)
	}

	return &usecase.EnrollOutput{Device: device, Policy: appliedPolicy}, nil
}

// ExpireStaleTokens sweeps PENDING tokens past their TTL.
func (s *enrollmentService) ExpireStaleTokens(ctx context.Context) (int, error) {
	tokens, err := s.tokenRepo.ListExpiredPending(ctx, time.Now(), s.config.Enrollment.SweepBatchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired tokens")
	}

	swept := 0
	for _, token := range tokens {
		if err := s.expireToken(ctx, token); err != nil {
			// A conflict means another worker or a lazy touch got there
			// first. Keep sweeping.
			s.logger.WarnContext(ctx, "Skipping token during expiry sweep",
				slog.String("token_id", token.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		swept++
	}

	return swept, nil
}

// expireToken marks one PENDING token EXPIRED and returns its reserved
// license to the pool, atomically.
func (s *enrollmentService) expireToken(ctx context.Context, token *entity.EnrollmentToken) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TokenRepo().MarkExpired(ctx, token.ID); err != nil {
			return errors.Wrap(err, "failed to mark token expired")
		}

		if err := repoFactory.LicenseRepo().ReleaseReservation(ctx, token.LicenseID); err != nil {
			return errors.Wrap(err, "failed to release license reservation")
		}

		return nil
	})
}

func (s *enrollmentService) publishApplyPolicy(ctx context.Context, device *entity.Device, policy *entity.Policy) {
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
