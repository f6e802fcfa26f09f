package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewService_Defaults(t *testing.T) {
	cfg := &Config{
		Provider: "openai",
		Model:    "gpt-4",
		APIKey:   "test-key",
	}

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("NewService() returned nil service")
	}

	s, ok := svc.(*service)
	if !ok {
		t.Fatal("NewService() did not return *service type")
	}
	if s.timeout != 120 {
		t.Errorf("timeout = %v, want default 120", s.timeout)
	}
	if s.model != "gpt-4" {
		t.Errorf("model = %v, want gpt-4", s.model)
	}
}

func TestNewService_BaseURLOverride(t *testing.T) {
	cfg := &Config{
		Provider: "deepseek",
		Model:    "deepseek-chat",
		APIKey:   "test-key",
		BaseURL:  "https://api.deepseek.com",
		Timeout:  30,
	}

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	s := svc.(*service)
	if s.timeout != 30 {
		t.Errorf("timeout = %v, want 30", s.timeout)
	}
}

// fakeCompletionServer serves a minimal chat-completion response.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func TestGenerate_TrimsCompletion(t *testing.T) {
	ts := fakeCompletionServer(t, "  A short summary.\n")
	defer ts.Close()

	svc, err := NewService(&Config{
		Provider: "openai",
		Model:    "gpt-4",
		APIKey:   "test-key",
		BaseURL:  ts.URL,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	got, err := svc.Generate(context.Background(), "You are a helpful assistant.", "Summarize the following text:\nhello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "A short summary." {
		t.Errorf("Generate() = %q, want trimmed %q", got, "A short summary.")
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer ts.Close()

	svc, err := NewService(&Config{
		Provider: "openai",
		Model:    "gpt-4",
		APIKey:   "test-key",
		BaseURL:  ts.URL,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	_, err = svc.Generate(context.Background(), "system", "user")
	if err != ErrEmptyResponse {
		t.Errorf("Generate() error = %v, want ErrEmptyResponse", err)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"provider exploded","type":"server_error"}}`))
	}))
	defer ts.Close()

	svc, err := NewService(&Config{
		Provider: "openai",
		Model:    "gpt-4",
		APIKey:   "test-key",
		BaseURL:  ts.URL,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	_, err = svc.Generate(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("Generate() expected error on provider failure")
	}
}
