package ai

import (
	"context"
	"errors"

	"go-tailoresume-backend/internal/domain"
)

// Typed collaborator failures. Callers map ErrMalformedResponse to their
// fail-closed defaults; anything else surfaces as a gateway failure.
var (
	ErrUnavailable       = errors.New("ai: collaborator unavailable")
	ErrMalformedResponse = errors.New("ai: collaborator returned malformed response")
)

// GenerationContext carries the full prompt context for constrained
// generation: the databank is the only permitted source of facts.
type GenerationContext struct {
	Databank            *domain.Databank
	Requirements        *domain.JobRequirements
	Coverage            *domain.CoverageReport
	MaximizeUtilization bool
}

// Provider is the boundary to the external generative-AI collaborator.
// Implementations own their timeout, retry, and circuit-breaker policy; the
// usecases above never retry.
type Provider interface {
	// ExtractJobRequirements turns free-text job descriptions into the fixed
	// JobRequirements shape. Responses missing the shape fail with
	// ErrMalformedResponse rather than guessed fields.
	ExtractJobRequirements(ctx context.Context, jobDescription string) (*domain.JobRequirements, error)

	// GenerateResumeContent produces the fixed generation sections under the
	// anti-fabrication directive. Output traceability is enforced by the
	// caller, not trusted from the model.
	GenerateResumeContent(ctx context.Context, gc GenerationContext) (*domain.GeneratedResume, error)

	Close() error
}
