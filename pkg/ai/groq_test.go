package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lethanhdat/meeting-extractor/pkg/config"
)

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.GroqConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "llama-3.1-70b-versatile",
		Timeout: 5 * time.Second,
	})
}

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"summary":"ok"}`}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	content, err := client.Complete(context.Background(), "extract this")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if content != `{"summary":"ok"}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestComplete_UpstreamErrorCarriesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded for org"}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Complete(context.Background(), "extract this")
	if err == nil {
		t.Fatal("expected error")
	}

	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	// The classifier depends on the upstream failure text surviving into
	// the error message.
	if !strings.Contains(err.Error(), "quota") {
		t.Fatalf("error message lost upstream body: %q", err.Error())
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.Complete(context.Background(), "extract this"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
