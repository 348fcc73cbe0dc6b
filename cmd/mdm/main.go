package main

import (
	"context"
	"log/slog"
	"os"

	"mdm/config"
	"mdm/internal/delivery"
	"mdm/internal/delivery/api"
	apihandler "mdm/internal/delivery/api/router/handler"
	"mdm/internal/delivery/http"
	"mdm/internal/delivery/http/middleware"
	"mdm/internal/delivery/http/router/handler"
	"mdm/internal/delivery/worker"
	"mdm/internal/domain/service"
	"mdm/internal/infra/auth"
	logs "mdm/internal/infra/log"
	"mdm/internal/infra/mgmtchannel"
	"mdm/internal/infra/persistence/postgres"
	"mdm/internal/infra/qrcode"
	"mdm/internal/infra/unlockcode"
	"mdm/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewResellerRepository,
			postgres.NewLicenseRepository,
			postgres.NewDeviceRepository,
			postgres.NewUnlockCodeRepository,
			postgres.NewEnrollmentTokenRepository,
			postgres.NewPolicyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			unlockcode.New,
			newQRCodeService,
			mgmtchannel.NewManagementChannel,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewLicenseService,
			impl.NewEnrollmentService,
			impl.NewLifecycleService,
			impl.NewPolicyService,
			impl.NewTelemetryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewLicenseHandler,
			handler.NewDeviceHandler,
			handler.NewPolicyHandler,
			handler.NewEnrollmentHandler,
			apihandler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shut down", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
