package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client. When an emulator host is configured it
// connects without credentials and makes sure the note topic and subscription exist.
type InitClient struct {
	Logger         *log.Logger `resolve:""`
	ProjectID      string      `config:"PUBSUB_PROJECT_ID"`
	EmulatorHost   string      `config:"PUBSUB_EMULATOR_HOST" default:""`
	SubscriptionID string      `config:"PUBSUB_SUBSCRIPTION_ID" default:"note-activity"`
	client         *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID, i.clientOptions()...)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.EmulatorHost != "" {
		if err := EnsureTopics(ctx, i.client, i.ProjectID, domain.OutboxTopic_Notes); err != nil {
			return ctx, err
		}
		if err := EnsureSubscription(ctx, i.client, i.ProjectID, i.SubscriptionID, domain.OutboxTopic_Notes); err != nil {
			return ctx, err
		}
		i.Logger.Printf("InitClient: using pubsub emulator at %s", i.EmulatorHost)
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) clientOptions() []option.ClientOption {
	if i.EmulatorHost == "" {
		return nil
	}
	return []option.ClientOption{
		option.WithEndpoint(i.EmulatorHost),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient:failed to close pubsub client: %v", err)
	}
}

// EnsureTopics creates the given topics, ignoring the ones that already exist.
func EnsureTopics(ctx context.Context, client *pubsubV2.Client, projectID string, topics ...domain.OutboxTopic) error {
	for _, topic := range topics {
		_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: fmt.Sprintf("projects/%s/topics/%s", projectID, topic),
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
	}
	return nil
}

// EnsureSubscription creates a pull subscription on topic unless it already exists.
func EnsureSubscription(ctx context.Context, client *pubsubV2.Client, projectID, subscriptionID string, topic domain.OutboxTopic) error {
	_, err := client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:                  fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID),
		Topic:                 fmt.Sprintf("projects/%s/topics/%s", projectID, topic),
		EnableMessageOrdering: true,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create subscription %s: %w", subscriptionID, err)
	}
	return nil
}
