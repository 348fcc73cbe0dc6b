package mgmtchannel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mdm/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubChannel implements ManagementChannel using Google Cloud Pub/Sub
type googlePubSubChannel struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubChannel creates a new Google Pub/Sub management channel
func NewGooglePubSubChannel(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.ManagementChannel, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub management channel initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubChannel{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishIntent publishes a management intent to Google Pub/Sub
func (p *googlePubSubChannel) PublishIntent(ctx context.Context, intent *service.ManagementIntent) error {
	// Serialize the intent to JSON
	data, err := json.Marshal(intent)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create Pub/Sub message with attributes for filtering and tracing
	attributes := map[string]string{
		"intent":    string(intent.Intent),
		"device_id": intent.DeviceID,
	}
	if intent.RequestID != "" {
		attributes["request_id"] = intent.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing intent",
		slog.String("intent", string(intent.Intent)),
		slog.String("device_id", intent.DeviceID),
	)

	// Publish message
	result := p.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Intent published successfully",
		slog.String("intent", string(intent.Intent)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubChannel) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
