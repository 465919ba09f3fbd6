package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"guidelight/internal/assistant/domain"
	"guidelight/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	os.Exit(m.Run())
}

func TestGoogleSearchClientParsesItems(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]string{
				{"title": "MIT OpenCourseWare", "link": "https://ocw.mit.edu/x", "snippet": "Free courses.", "displayLink": "ocw.mit.edu"},
				{"title": "No display link", "link": "https://example.org/page", "snippet": "..."},
			},
		})
	}))
	defer srv.Close()

	client := &googleSearchClient{
		apiKey:  "k",
		cxID:    "cx",
		baseURL: srv.URL,
		client:  srv.Client(),
	}

	results, err := client.Search(context.Background(), "computer science")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "ocw.mit.edu", results[0].Source)
	// source falls back to the link hostname
	assert.Equal(t, "example.org", results[1].Source)
	assert.Equal(t, "computer science education college course details reviews", gotQuery)
}

func TestGoogleSearchClientDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &googleSearchClient{apiKey: "k", cxID: "cx", baseURL: srv.URL, client: srv.Client()}
	results, err := client.Search(context.Background(), "anything")

	assert.NoError(t, err)
	assert.Empty(t, results)

	// Missing keys skip the call entirely.
	noKeys := &googleSearchClient{baseURL: srv.URL, client: srv.Client()}
	results, err = noKeys.Search(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestGroqClientSendsTunedRequest(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&payload)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "an answer"}},
			},
		})
	}))
	defer srv.Close()

	client := &groqClient{
		apiKey:  "test-key",
		model:   "llama-3.3-70b-versatile",
		baseURL: srv.URL,
		client:  srv.Client(),
	}

	answer, err := client.Complete(context.Background(), []domain.ChatTurn{
		{Role: "user", Content: "hello"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "an answer", answer)
	assert.Equal(t, "llama-3.3-70b-versatile", payload["model"])
	assert.Equal(t, 0.7, payload["temperature"])
	assert.Equal(t, float64(1000), payload["max_tokens"])
}

func TestGroqClientErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &groqClient{apiKey: "k", model: "m", baseURL: srv.URL, client: srv.Client()}
	_, err := client.Complete(context.Background(), nil)
	assert.Error(t, err)

	noKey := &groqClient{baseURL: srv.URL, client: srv.Client(), model: "m"}
	_, err = noKey.Complete(context.Background(), nil)
	assert.Error(t, err)
}
