package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bluecarbon/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishRegistryEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	event := &service.RegistryEvent{
		RequestID:     "req-42",
		Type:          service.EventCreditIssued,
		SiteID:        "site-1",
		RecordID:      "record-1",
		CreditID:      "credit-1",
		CreditsIssued: "750.00",
	}

	err := publisher.PublishRegistryEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, service.EventCreditIssued, received.Message.Attributes["event_type"])
	assert.Equal(t, "record-1", received.Message.Attributes["record_id"])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.RegistryEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_SubscriberFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	err := publisher.PublishRegistryEvent(context.Background(), &service.RegistryEvent{
		Type:     service.EventRecordVerified,
		RecordID: "record-1",
	})

	assert.Error(t, err)
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1", logger)

	err := publisher.PublishRegistryEvent(context.Background(), &service.RegistryEvent{
		Type:     service.EventRecordVerified,
		RecordID: "record-1",
	})

	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := &noopPublisher{logger: logger}

	err := publisher.PublishRegistryEvent(context.Background(), &service.RegistryEvent{
		Type: service.EventRecordVerified,
	})

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}
