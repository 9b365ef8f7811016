package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"go-tailoresume-backend/config"
	"go-tailoresume-backend/pkg/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"go-tailoresume-backend/internal/domain"
)

// GeminiProvider implements Provider on top of Google Gemini with
// schema-constrained JSON responses.
type GeminiProvider struct {
	client  *genai.Client
	cfg     *config.AIConfig
	breaker *CollaboratorBreaker
}

var _ Provider = (*GeminiProvider)(nil)

func NewGeminiProvider(ctx context.Context, cfg *config.AIConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating gemini client: %v", ErrUnavailable, err)
	}

	return &GeminiProvider{
		client:  client,
		cfg:     cfg,
		breaker: NewCollaboratorBreaker("generate", cfg),
	}, nil
}

func (g *GeminiProvider) ExtractJobRequirements(ctx context.Context, jobDescription string) (*domain.JobRequirements, error) {
	var out domain.JobRequirements
	err := g.generateJSON(ctx, "extract_job_requirements",
		extractSystemPrompt, buildExtractPrompt(jobDescription), requirementsSchema(), &out)
	if err != nil {
		return nil, err
	}

	// A response without a title or any requirement lists does not satisfy
	// the fixed shape; callers must not receive guessed fields.
	if out.JobTitle == "" || (len(out.RequiredSkills) == 0 && len(out.PreferredSkills) == 0) {
		return nil, fmt.Errorf("%w: requirement extraction returned empty shape", ErrMalformedResponse)
	}
	return &out, nil
}

func (g *GeminiProvider) GenerateResumeContent(ctx context.Context, gc GenerationContext) (*domain.GeneratedResume, error) {
	var out domain.GeneratedResume
	err := g.generateJSON(ctx, "generate_resume_content",
		generateSystemPrompt, buildGenerationPrompt(gc), generationSchema(), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiProvider) Close() error {
	// The genai client holds no resources needing explicit release in
	// single-shot usage
	return nil
}

// generateJSON runs one schema-constrained content call under the timeout,
// breaker, and retry envelope, then decodes the response into out.
func (g *GeminiProvider) generateJSON(ctx context.Context, operation, systemPrompt, userPrompt string, schema *genai.Schema, out any) error {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	if g.cfg.Temperature > 0 {
		temp := g.cfg.Temperature
		genCfg.Temperature = &temp
	}

	result, err := g.breaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(callCtx, operation, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(callCtx, g.cfg.Model, genai.Text(userPrompt), genCfg)
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, operation, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, operation, err)
	}
	return nil
}

// executeWithRetry retries transient failures with exponential backoff and
// jitter. Non-retryable errors (auth, invalid input) stop immediately.
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			logger.Log.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", g.cfg.MaxRetries,
				"error", lastErr.Error())

			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			backoff := min(baseDelay+time.Duration(jitterBig.Int64()), 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			break
		}
	}

	return nil, fmt.Errorf("operation %q failed after %d attempts: %w", operation, g.cfg.MaxRetries+1, lastErr)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// requirementsSchema constrains extraction output to the fixed
// JobRequirements shape.
func requirementsSchema() *genai.Schema {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"job_title":              {Type: genai.TypeString},
			"required_skills":        stringArray,
			"preferred_skills":       stringArray,
			"experience_level":       {Type: genai.TypeString},
			"education_requirements": stringArray,
			"key_responsibilities":   stringArray,
			"industry":               {Type: genai.TypeString},
			"keywords":               stringArray,
		},
		Required: []string{
			"job_title", "required_skills", "preferred_skills", "experience_level",
			"education_requirements", "key_responsibilities", "industry", "keywords",
		},
	}
}

// generationSchema constrains constrained-generation output to the fixed
// section schema.
func generationSchema() *genai.Schema {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"professional_summary": {Type: genai.TypeString},
			"skills_section": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":      {Type: genai.TypeString},
						"highlight": {Type: genai.TypeString},
					},
					Required: []string{"name", "highlight"},
				},
			},
			"experience_section": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"company": {Type: genai.TypeString},
						"title":   {Type: genai.TypeString},
						"bullets": stringArray,
					},
					Required: []string{"company", "title", "bullets"},
				},
			},
			"education_section": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"institution": {Type: genai.TypeString},
						"degree":      {Type: genai.TypeString},
						"detail":      {Type: genai.TypeString},
					},
					Required: []string{"institution", "degree", "detail"},
				},
			},
			"certifications_section": stringArray,
			"utilization_report": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"databank_items_total":   {Type: genai.TypeInteger},
					"databank_items_used":    {Type: genai.TypeInteger},
					"utilization_percentage": {Type: genai.TypeNumber},
					"unused_items":           stringArray,
					"gaps":                   stringArray,
				},
				Required: []string{"databank_items_total", "databank_items_used", "utilization_percentage", "unused_items", "gaps"},
			},
		},
		Required: []string{
			"professional_summary", "skills_section", "experience_section",
			"education_section", "certifications_section", "utilization_report",
		},
	}
}
