package ai

import (
	"fmt"

	"go-tailoresume-backend/config"
	"go-tailoresume-backend/pkg/logger"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

// CollaboratorBreaker wraps generate-content calls with a circuit breaker so
// a failing AI backend sheds load instead of queueing slow requests.
type CollaboratorBreaker struct {
	cb *gobreaker.CircuitBreaker[*genai.GenerateContentResponse]
}

// NewCollaboratorBreaker builds a breaker for one operation type. Returns nil
// when breaking is disabled; a nil breaker executes calls directly.
func NewCollaboratorBreaker(operation string, cfg *config.AIConfig) *CollaboratorBreaker {
	if !cfg.BreakerEnabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        fmt.Sprintf("ai-%s", operation),
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.BreakerMinRequests &&
				failureRatio >= cfg.BreakerFailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Info("AI circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &CollaboratorBreaker{
		cb: gobreaker.NewCircuitBreaker[*genai.GenerateContentResponse](settings),
	}
}

// Execute runs fn under the breaker, or directly when breaking is disabled.
func (b *CollaboratorBreaker) Execute(fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// Healthy reports whether the breaker is closed (or absent).
func (b *CollaboratorBreaker) Healthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

// Stats exposes breaker counters for health endpoints.
func (b *CollaboratorBreaker) Stats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"enabled": true,
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
	}
}
