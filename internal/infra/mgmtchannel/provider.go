package mgmtchannel

import (
	"context"
	"log/slog"

	"mdm/config"
	"mdm/internal/domain/constants"
	"mdm/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopChannel is a no-op implementation when the management channel is disabled
type noopChannel struct {
	logger *slog.Logger
}

func (p *noopChannel) PublishIntent(ctx context.Context, intent *service.ManagementIntent) error {
	p.logger.Debug("[NoopMgmtChannel] Intent publishing disabled, skipping",
		slog.String("intent", string(intent.Intent)),
		slog.String("device_id", intent.DeviceID),
	)

	return nil
}

func (p *noopChannel) Close() error {
	return nil
}

// ChannelParams holds dependencies for ManagementChannel, injected by Fx
type ChannelParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewManagementChannel creates a ManagementChannel based on configuration
func NewManagementChannel(params ChannelParams) (service.ManagementChannel, error) {
	cfg := params.Config.MgmtChannel
	logger := params.Logger

	// If the channel is not configured, return a no-op implementation
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Management channel not configured, using no-op channel")

		return &noopChannel{logger: logger}, nil
	}

	var channel service.ManagementChannel
	var err error

	switch cfg.Provider {
	case constants.MgmtChannelProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP management channel",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		channel = NewLocalHTTPChannel(cfg.LocalEndpoint, logger)

	case constants.MgmtChannelProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub management channel",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		channel, err = NewGooglePubSubChannel(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown management channel provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the channel on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ManagementChannel")

			return channel.Close()
		},
	})

	return channel, nil
}

// Module provides the management channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewManagementChannel),
)
