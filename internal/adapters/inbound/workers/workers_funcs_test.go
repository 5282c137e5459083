package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// setupPubSubServer creates a pstest server with topic and subscription.
func setupPubSubServer(t *testing.T, ctx context.Context, topicID, subscriptionID string) (*pubsubV2.Client, string) {
	server := pstest.NewServer()
	t.Cleanup(func() {
		server.Close() //nolint:errcheck
	})

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	assert.NoError(t, err)
	t.Cleanup(func() {
		conn.Close() //nolint:errcheck
	})

	projectID := "test-project"
	client, err := pubsubV2.NewClient(ctx, projectID, option.WithGRPCConn(conn))
	assert.NoError(t, err)
	t.Cleanup(func() {
		client.Close() //nolint:errcheck
	})

	topicName := "projects/" + projectID + "/topics/" + topicID
	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	assert.NoError(t, err)

	subName := "projects/" + projectID + "/subscriptions/" + subscriptionID
	_, err = client.SubscriptionAdminClient.CreateSubscription(
		ctx,
		&pubsubpb.Subscription{
			Name:  subName,
			Topic: topic.GetName(),
		},
	)
	assert.NoError(t, err)

	return client, topicName
}

// publishMessages sends the payloads to the topic and waits for each publish result.
func publishMessages(ctx context.Context, client *pubsubV2.Client, topicName string, payloads [][]byte) error {
	for _, payload := range payloads {
		result := client.Publisher(topicName).Publish(ctx, &pubsubV2.Message{
			Data: payload,
		})
		if _, err := result.Get(ctx); err != nil {
			return err
		}
	}
	return nil
}

// run starts the runnable and returns a cancel function and done channel.
func run(
	t *testing.T,
	ctx context.Context,
	runnable symbiont.Runnable,
) (context.CancelFunc, chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	doneChan := make(chan struct{}, 1)

	go func() {
		err := runnable.Run(runCtx)
		assert.NoError(t, err)
		doneChan <- struct{}{}
	}()

	return cancel, doneChan
}

// waitRunnableStop waits until the runnable goroutine exits.
func waitRunnableStop(t *testing.T, doneChan chan struct{}) {
	t.Helper()

	select {
	case <-doneChan:
	case <-time.After(1 * time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitRunnableStopDraining waits for the runnable to exit while consuming late batch signals,
// so a tick that raced with the cancellation cannot block it.
func waitRunnableStopDraining(t *testing.T, doneChan chan struct{}, signalChan chan struct{}) {
	t.Helper()

	timeout := time.After(1 * time.Second)
	for {
		select {
		case <-signalChan:
		case <-doneChan:
			return
		case <-timeout:
			t.Fatal("runnable did not shut down in time")
		}
	}
}

// waitForBatchSignals waits for the expected number of batch processing signals or timeout.
func waitForBatchSignals(t *testing.T, signalChan chan struct{}, expectedBatches int, timeout time.Duration) int {
	batchesProcessed := 0

	for batchesProcessed < expectedBatches {
		select {
		case <-signalChan:
			batchesProcessed++
		case <-time.After(timeout):
			t.Fatalf("timeout waiting for batch processing; got %d batches, expected %d", batchesProcessed, expectedBatches)
		}
	}
	return batchesProcessed
}

// noteEventPayload marshals a NoteEvent the way the outbox stores it.
func noteEventPayload(t *testing.T, event domain.NoteEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	assert.NoError(t, err)
	return data
}
