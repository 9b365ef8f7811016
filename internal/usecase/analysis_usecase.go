package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-tailoresume-backend/internal/ai"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/logger"
)

const maxJobDescriptionLen = 20000

type analysisUsecase struct {
	databank domain.DatabankBuilder
	provider ai.Provider
	now      func() time.Time
}

func NewAnalysisUsecase(databank domain.DatabankBuilder, provider ai.Provider) domain.AnalysisUsecase {
	return &analysisUsecase{
		databank: databank,
		provider: provider,
		now:      time.Now,
	}
}

func validateJobDescription(jobDescription string) error {
	trimmed := strings.TrimSpace(jobDescription)
	if trimmed == "" {
		return apperror.BadRequest("Job description is required")
	}
	if len(jobDescription) > maxJobDescriptionLen {
		return apperror.BadRequest("Job description exceeds the maximum length")
	}
	return nil
}

// AnalyzeJob is the requirement-extraction passthrough. It has no
// fail-closed default: a collaborator failure surfaces as a gateway error.
func (u *analysisUsecase) AnalyzeJob(ctx context.Context, jobDescription string) (*domain.JobRequirements, error) {
	if _, err := ownerFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := validateJobDescription(jobDescription); err != nil {
		return nil, err
	}

	req, err := u.provider.ExtractJobRequirements(ctx, jobDescription)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			return nil, apperror.BadGateway("Job analysis returned an unusable response", err)
		}
		return nil, apperror.BadGateway("Job analysis service is unavailable", err)
	}
	return req, nil
}

// ValidateDatabankCoverage extracts requirements and matches them against the
// user's databank. A malformed extraction degrades to a zero-coverage report
// instead of guessed requirement fields.
func (u *analysisUsecase) ValidateDatabankCoverage(ctx context.Context, jobDescription string) (*domain.CoverageReport, *domain.JobRequirements, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := validateJobDescription(jobDescription); err != nil {
		return nil, nil, err
	}

	d, err := u.databank.Build(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	req, err := u.provider.ExtractJobRequirements(ctx, jobDescription)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			logger.Log.Warn("Requirement extraction malformed, failing closed",
				"user_id", userID, "error", err.Error())
			return ZeroCoverageReport("Job requirements could not be extracted; no coverage can be claimed"),
				&domain.JobRequirements{}, nil
		}
		return nil, nil, apperror.BadGateway("Job analysis service is unavailable", err)
	}

	return BuildCoverageReport(d, req, u.now()), req, nil
}

// SuggestDatabankEnhancements converts coverage gaps into prioritized,
// concrete databank additions.
func (u *analysisUsecase) SuggestDatabankEnhancements(ctx context.Context, jobDescription string) ([]domain.GapRecommendation, error) {
	report, req, err := u.ValidateDatabankCoverage(ctx, jobDescription)
	if err != nil {
		return nil, err
	}
	return RecommendDatabankEnhancements(report, req), nil
}

// GenerateConstrainedResume runs the full anti-fabrication pipeline: snapshot,
// extraction, coverage, constrained generation, then traceability enforcement
// over the returned experience entries.
func (u *analysisUsecase) GenerateConstrainedResume(ctx context.Context, jobDescription string, maximizeUtilization bool) (*domain.GeneratedResume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateJobDescription(jobDescription); err != nil {
		return nil, err
	}

	d, err := u.databank.Build(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d.TotalRecords() == 0 {
		return nil, apperror.UnprocessableInput("Your databank is empty; add skills and experience before generating a resume")
	}

	req, err := u.provider.ExtractJobRequirements(ctx, jobDescription)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			return emptyGeneratedResume(d, "Job requirements could not be extracted; no content was generated"), nil
		}
		return nil, apperror.BadGateway("Job analysis service is unavailable", err)
	}

	coverage := BuildCoverageReport(d, req, u.now())

	generated, err := u.provider.GenerateResumeContent(ctx, ai.GenerationContext{
		Databank:            d,
		Requirements:        req,
		Coverage:            coverage,
		MaximizeUtilization: maximizeUtilization,
	})
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			logger.Log.Warn("Resume generation malformed, failing closed",
				"user_id", userID, "error", err.Error())
			return emptyGeneratedResume(d, "The generated content could not be parsed; no content was kept"), nil
		}
		return nil, apperror.BadGateway("Resume generation service is unavailable", err)
	}

	enforceTraceability(generated, d)
	normalizeUtilization(generated, d)

	return generated, nil
}

// enforceTraceability drops every experience entry whose company and title
// pair does not match a databank record, and records each removal. The model
// is never trusted to police itself.
func enforceTraceability(g *domain.GeneratedResume, d *domain.Databank) {
	known := make(map[string]bool, len(d.WorkExperiences))
	for _, w := range d.WorkExperiences {
		known[experienceKey(w.Company, w.JobTitle)] = true
	}

	kept := g.ExperienceSection[:0]
	for _, entry := range g.ExperienceSection {
		if known[experienceKey(entry.Company, entry.Title)] {
			kept = append(kept, entry)
			continue
		}
		g.UtilizationReport.RemovedUntraceable = append(g.UtilizationReport.RemovedUntraceable,
			fmt.Sprintf("%s at %s", entry.Title, entry.Company))
	}
	g.ExperienceSection = kept
}

func experienceKey(company, title string) string {
	return strings.ToLower(strings.TrimSpace(company)) + "\x00" + strings.ToLower(strings.TrimSpace(title))
}

// normalizeUtilization fixes the audit numbers the model cannot be trusted
// with: the databank total is ours, and the percentage must follow from it.
func normalizeUtilization(g *domain.GeneratedResume, d *domain.Databank) {
	r := &g.UtilizationReport
	r.DatabankItemsTotal = d.TotalRecords()
	if r.DatabankItemsUsed < 0 {
		r.DatabankItemsUsed = 0
	}
	if r.DatabankItemsUsed > r.DatabankItemsTotal {
		r.DatabankItemsUsed = r.DatabankItemsTotal
	}
	if r.DatabankItemsTotal > 0 {
		r.UtilizationPercentage = float64(r.DatabankItemsUsed) / float64(r.DatabankItemsTotal) * 100
	} else {
		r.UtilizationPercentage = 0
	}
}

func emptyGeneratedResume(d *domain.Databank, gapNote string) *domain.GeneratedResume {
	return &domain.GeneratedResume{
		SkillsSection:         []domain.GeneratedSkill{},
		ExperienceSection:     []domain.GeneratedExperience{},
		EducationSection:      []domain.GeneratedEducation{},
		CertificationsSection: []string{},
		UtilizationReport: domain.UtilizationReport{
			DatabankItemsTotal: d.TotalRecords(),
			Gaps:               []string{gapNote},
		},
	}
}
