package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interview-service/internal/models"
)

type scriptedProvider struct {
	calls    int
	failures int
	reply    string
}

func (p *scriptedProvider) Complete(ctx context.Context, messages []models.Message) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", errors.New("provider unavailable")
	}
	return p.reply, nil
}

func newTestGateway(p Completer, retries int) (*Gateway, *[]time.Duration) {
	g := NewGateway(p, retries, time.Second)
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }
	return g, &slept
}

func TestGatewayFirstAttemptSuccess(t *testing.T) {
	provider := &scriptedProvider{reply: "looks good"}
	g, slept := newTestGateway(provider, 3)

	got := g.Complete(context.Background(), nil)
	if got != "looks good" {
		t.Errorf("Complete = %q, want provider reply", got)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %d times on immediate success", len(*slept))
	}
}

func TestGatewayRetriesWithLinearBackoff(t *testing.T) {
	provider := &scriptedProvider{failures: 2, reply: "recovered"}
	g, slept := newTestGateway(provider, 3)

	got := g.Complete(context.Background(), nil)
	if got != "recovered" {
		t.Errorf("Complete = %q, want reply after retries", got)
	}
	if provider.calls != 3 {
		t.Errorf("provider called %d times, want 3", provider.calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*slept), len(want))
	}
	for i, d := range want {
		if (*slept)[i] != d {
			t.Errorf("backoff %d = %s, want %s", i, (*slept)[i], d)
		}
	}
}

func TestGatewayExhaustedRetriesServeFallback(t *testing.T) {
	provider := &scriptedProvider{failures: 100}
	g, slept := newTestGateway(provider, 3)

	messages := []models.Message{
		{Role: models.RoleUser, Content: "Can I get a hint please?"},
	}
	got := g.Complete(context.Background(), messages)
	if got == "" {
		t.Fatal("Complete returned empty text after exhausting retries")
	}
	if got != Fallback(messages) {
		t.Errorf("Complete = %q, want the deterministic fallback", got)
	}
	if provider.calls != 3 {
		t.Errorf("provider called %d times, want 3", provider.calls)
	}
	// No sleep after the final attempt.
	if len(*slept) != 2 {
		t.Errorf("slept %d times, want 2", len(*slept))
	}
}

func TestGatewayClampsRetryBudget(t *testing.T) {
	provider := &scriptedProvider{failures: 100}
	g, _ := newTestGateway(provider, 0)

	g.Complete(context.Background(), nil)
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want clamp to 1", provider.calls)
	}
}

func TestFallbackBranches(t *testing.T) {
	tests := []struct {
		name     string
		lastUser string
		want     string
	}{
		{"code fence", "```go\nfunc main() {}\n```", "walk me through your approach"},
		{"solution keyword", "here is my solution", "walk me through your approach"},
		{"hint request", "could I have a hint", "data structure"},
		{"question", "is the array sorted?", "good question"},
		{"default", "working on it", "elaborate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := []models.Message{
				{Role: models.RoleSystem, Content: "persona"},
				{Role: models.RoleUser, Content: tt.lastUser},
			}
			got := Fallback(messages)
			if !strings.Contains(strings.ToLower(got), tt.want) {
				t.Errorf("Fallback = %q, want mention of %q", got, tt.want)
			}
		})
	}
}

func TestClientParsesChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello candidate"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 5*time.Second)
	got, err := client.Complete(context.Background(), []models.Message{
		{Role: models.RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "hello candidate" {
		t.Errorf("Complete = %q", got)
	}
}

func TestClientErrorsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 5*time.Second)
	if _, err := client.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestClientErrorsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 5*time.Second)
	if _, err := client.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
