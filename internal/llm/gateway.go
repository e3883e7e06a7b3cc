package llm

import (
	"context"
	"log"
	"time"

	"interview-service/internal/metrics"
	"interview-service/internal/models"
)

// Gateway wraps a Completer with bounded retries and a deterministic local
// fallback. It is the system's single reliability boundary: Complete always
// returns usable text, never an error.
type Gateway struct {
	provider    Completer
	maxRetries  int
	backoffBase time.Duration
	sleep       func(time.Duration)
}

// NewGateway builds a gateway over the provider. maxRetries below 1 is
// clamped to 1; backoffBase is the linear backoff unit between attempts.
func NewGateway(provider Completer, maxRetries int, backoffBase time.Duration) *Gateway {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Gateway{
		provider:    provider,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		sleep:       time.Sleep,
	}
}

// Complete attempts the provider up to the retry budget with linear backoff,
// then serves the local fallback. Availability over fidelity.
func (g *Gateway) Complete(ctx context.Context, messages []models.Message) string {
	timer := time.Now()
	defer func() {
		metrics.CompletionDuration.Observe(time.Since(timer).Seconds())
	}()

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		text, err := g.provider.Complete(ctx, messages)
		if err == nil {
			metrics.CompletionAttempts.WithLabelValues("success").Inc()
			return text
		}

		metrics.CompletionAttempts.WithLabelValues("failure").Inc()
		log.Printf("Completion attempt %d/%d failed: %v", attempt, g.maxRetries, err)

		if attempt < g.maxRetries {
			g.sleep(g.backoffBase * time.Duration(attempt))
		}
	}

	metrics.CompletionFallbacks.Inc()
	log.Println("Completion provider unavailable, serving local fallback")
	return Fallback(messages)
}
