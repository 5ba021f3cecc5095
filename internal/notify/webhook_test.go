package notify_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleComplaint() *models.Complaint {
	fileURL := "https://blob.test/complaint-images/leak.jpg"
	return &models.Complaint{
		ID:          3,
		Title:       "Leaking pipe",
		Description: "Water pooling in the hallway",
		Type:        "Facilities",
		FileURL:     &fileURL,
		Status:      models.StatusSubmitted,
		StudentName: "Dana",
		Email:       "dana@example.edu",
		Priority:    models.PriorityHigh,
	}
}

func TestWebhookPayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := notify.NewWebhookNotifier(server.URL, zap.NewNop().Sugar())
	n.ComplaintSubmitted(sampleComplaint())

	require.NotNil(t, got)
	assert.Equal(t, "Leaking pipe", got["title"])
	assert.Equal(t, "Water pooling in the hallway", got["description"])
	assert.Equal(t, "Facilities", got["type"])
	assert.Equal(t, models.PriorityHigh, got["priority"])
	assert.Equal(t, "https://blob.test/complaint-images/leak.jpg", got["file_url"])
	assert.Equal(t, models.StatusSubmitted, got["status"])
	assert.Equal(t, "Dana", got["student_name"])
	assert.Equal(t, "dana@example.edu", got["email"])
}

func TestWebhookEmptyURLIsNoop(t *testing.T) {
	n := notify.NewWebhookNotifier("", zap.NewNop().Sugar())
	// Must not attempt a request, let alone panic.
	n.ComplaintSubmitted(sampleComplaint())
}

func TestWebhookRejectionIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := notify.NewWebhookNotifier(server.URL, zap.NewNop().Sugar())
	n.ComplaintSubmitted(sampleComplaint())
}

func TestWebhookUnreachableEndpointIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	n := notify.NewWebhookNotifier(server.URL, zap.NewNop().Sugar())
	n.ComplaintSubmitted(sampleComplaint())
}

type countingNotifier struct{ calls int }

func (c *countingNotifier) ComplaintSubmitted(*models.Complaint) { c.calls++ }

func TestMultiFansOutInOrder(t *testing.T) {
	first := &countingNotifier{}
	second := &countingNotifier{}

	notify.Multi{first, second}.ComplaintSubmitted(sampleComplaint())

	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}
