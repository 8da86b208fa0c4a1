package review

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testInput() Input {
	return Input{
		Date:             "2024-01-15",
		Asset:            "AAPL",
		Amount:           "10",
		Price:            "150",
		Strategy:         "swing",
		Reasons:          "Strong earnings momentum",
		Risks:            "Broad market pullback",
		ExpectedReturn:   "12%",
		ExitPlan:         "Sell half at +10%",
		MarketConditions: "Risk-on",
		EmotionalState:   "Calm",
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	client := NewClient("http://127.0.0.1:1", "deepseek-v3", 8192, time.Second)
	_, err := client.Generate(context.Background(), testInput())

	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateSuccess(t *testing.T) {
	t.Setenv(apiKeyEnv, "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "solid entry, sloppy exit"}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "deepseek-v3", 8192, time.Second)
	got, err := client.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "solid entry, sloppy exit" {
		t.Errorf("expected verbatim content, got %q", got)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	t.Setenv(apiKeyEnv, "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "deepseek-v3", 8192, time.Second)
	_, err := client.Generate(context.Background(), testInput())

	if err == nil {
		t.Fatal("expected error from failing upstream")
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Error("upstream failure must not look like a missing credential")
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	t.Setenv(apiKeyEnv, "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "deepseek-v3", 8192, time.Second)
	_, err := client.Generate(context.Background(), testInput())

	if err == nil {
		t.Fatal("expected error for empty completion")
	}
}

func TestGenerateTimeout(t *testing.T) {
	t.Setenv(apiKeyEnv, "test-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "deepseek-v3", 8192, 20*time.Millisecond)
	_, err := client.Generate(context.Background(), testInput())

	if err == nil {
		t.Fatal("expected timeout error")
	}
	if errors.Is(err, ErrNotConfigured) {
		t.Error("timeout must not look like a missing credential")
	}
}
