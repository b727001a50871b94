package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

func TestResolveModel(t *testing.T) {
	cases := []struct {
		requested string
		want      string
	}{
		{"gpt-4o-mini", "gpt-4o-mini"},
		{" gpt-4o-mini ", "gpt-4o-mini"},
		{"tngtech/deepseek-r1t2-chimera:free", "tngtech/deepseek-r1t2-chimera:free"},
		{"gpt-5-ultra", DefaultModel},
		{"", DefaultModel},
	}
	for _, tc := range cases {
		if got := ResolveModel(tc.requested); got != tc.want {
			t.Fatalf("ResolveModel(%q) = %q, want %q", tc.requested, got, tc.want)
		}
	}
}

func TestGenerateChatSendsAuthAndPayload(t *testing.T) {
	var capturedAuth string
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		capturedAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" ответ "}}]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	answer, err := client.GenerateChat(context.Background(), []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "s"},
		{Role: domain.RoleUser, Content: "q"},
	}, 512, "unknown-model", "sk-test")
	if err != nil {
		t.Fatalf("GenerateChat() error = %v", err)
	}
	if answer != "ответ" {
		t.Fatalf("GenerateChat() = %q", answer)
	}
	if capturedAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", capturedAuth)
	}
	if captured["model"] != DefaultModel {
		t.Fatalf("expected default model fallback, got %v", captured["model"])
	}
	if captured["max_tokens"] != float64(512) {
		t.Fatalf("expected max_tokens=512, got %v", captured["max_tokens"])
	}
}

func TestGenerateChatRequiresAPIKey(t *testing.T) {
	client := New()
	_, err := client.GenerateChat(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}, 0, "", "  ")
	if !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestGenerateChatMapsStatusCodes(t *testing.T) {
	status := http.StatusUnauthorized
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", status)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.GenerateChat(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}, 0, "", "sk-test")
	if !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for 401, got %v", err)
	}

	status = http.StatusServiceUnavailable
	_, err = client.GenerateChat(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}, 0, "", "sk-test")
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected temporary for 503, got %v", err)
	}
}

func TestGenerateChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.GenerateChat(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}, 0, "", "sk-test")
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
