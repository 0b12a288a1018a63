package pubsub

import (
	"io"
	"log/slog"
	"testing"

	"bluecarbon/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.Config) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewEventPublisher_DefaultsToNoop(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, &config.Config{}))

	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
}

func TestNewEventPublisher_Local(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{
			Provider:      ProviderLocal,
			LocalEndpoint: "http://localhost:9999/push",
		},
	}

	publisher, err := NewEventPublisher(newPublisherParams(t, cfg))

	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_LocalRequiresEndpoint(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: ProviderLocal},
	}

	_, err := NewEventPublisher(newPublisherParams(t, cfg))

	assert.Error(t, err)
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "rabbitmq"},
	}

	_, err := NewEventPublisher(newPublisherParams(t, cfg))

	assert.Error(t, err)
}
