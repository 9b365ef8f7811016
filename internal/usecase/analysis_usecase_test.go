package usecase_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"go-tailoresume-backend/internal/ai"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/internal/usecase"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// --- Mocks ---

type MockDatabankBuilder struct {
	mock.Mock
}

func (m *MockDatabankBuilder) Build(ctx context.Context, userID int64) (*domain.Databank, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Databank), args.Error(1)
}

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) ExtractJobRequirements(ctx context.Context, jobDescription string) (*domain.JobRequirements, error) {
	args := m.Called(ctx, jobDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobRequirements), args.Error(1)
}

func (m *MockAIProvider) GenerateResumeContent(ctx context.Context, gc ai.GenerationContext) (*domain.GeneratedResume, error) {
	args := m.Called(ctx, gc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedResume), args.Error(1)
}

func (m *MockAIProvider) Close() error {
	args := m.Called()
	return args.Error(0)
}

func authedCtx(userID int64) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

const testJobDescription = "We are hiring a backend engineer with Python and Kubernetes experience."

func TestAnalyzeJob(t *testing.T) {
	t.Run("Should fail when context carries no user", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(new(MockDatabankBuilder), new(MockAIProvider))

		_, err := uc.AnalyzeJob(context.Background(), testJobDescription)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should reject empty job description", func(t *testing.T) {
		uc := usecase.NewAnalysisUsecase(new(MockDatabankBuilder), new(MockAIProvider))

		_, err := uc.AnalyzeJob(authedCtx(1), "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job description is required")
	})

	t.Run("Should pass extracted requirements through", func(t *testing.T) {
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(coverageRequirements(), nil)
		uc := usecase.NewAnalysisUsecase(new(MockDatabankBuilder), provider)

		req, err := uc.AnalyzeJob(authedCtx(1), testJobDescription)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", req.JobTitle)
		provider.AssertExpectations(t)
	})

	t.Run("Should surface collaborator failure as bad gateway", func(t *testing.T) {
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(nil, fmt.Errorf("%w: request timed out", ai.ErrUnavailable))
		uc := usecase.NewAnalysisUsecase(new(MockDatabankBuilder), provider)

		_, err := uc.AnalyzeJob(authedCtx(1), testJobDescription)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 502, appErr.Code)
	})
}

func TestValidateDatabankCoverage(t *testing.T) {
	t.Run("Should build a report from extracted requirements", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(coverageRequirements(), nil)
		uc := usecase.NewAnalysisUsecase(builder, provider)

		report, req, err := uc.ValidateDatabankCoverage(authedCtx(1), testJobDescription)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", req.JobTitle)
		assert.Equal(t, []string{"Kubernetes"}, report.Skills.Missing)
	})

	t.Run("Should fail closed on malformed extraction", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(nil, fmt.Errorf("%w: not json", ai.ErrMalformedResponse))
		uc := usecase.NewAnalysisUsecase(builder, provider)

		report, req, err := uc.ValidateDatabankCoverage(authedCtx(1), testJobDescription)
		require.NoError(t, err)
		assert.Equal(t, &domain.JobRequirements{}, req)
		assert.Zero(t, report.Skills.Covered)
		assert.Zero(t, report.DatabankUtilizationPercentage)
		assert.Equal(t, []string{"Job requirements could not be extracted; no coverage can be claimed"}, report.CriticalGaps)
	})

	t.Run("Should surface unavailable collaborator", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(nil, fmt.Errorf("%w: connection refused", ai.ErrUnavailable))
		uc := usecase.NewAnalysisUsecase(builder, provider)

		_, _, err := uc.ValidateDatabankCoverage(authedCtx(1), testJobDescription)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 502, appErr.Code)
	})
}

func TestSuggestDatabankEnhancements(t *testing.T) {
	builder := new(MockDatabankBuilder)
	builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
	provider := new(MockAIProvider)
	provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
		Return(coverageRequirements(), nil)
	uc := usecase.NewAnalysisUsecase(builder, provider)

	recs, err := uc.SuggestDatabankEnhancements(authedCtx(1), testJobDescription)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, "Document your experience with Kubernetes as a skill", recs[0].Suggestion)
}

func TestGenerateConstrainedResume(t *testing.T) {
	t.Run("Should refuse when databank is empty", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(&domain.Databank{}, nil)
		provider := new(MockAIProvider)
		uc := usecase.NewAnalysisUsecase(builder, provider)

		_, err := uc.GenerateConstrainedResume(authedCtx(1), testJobDescription, false)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 422, appErr.Code)
		assert.Contains(t, err.Error(), "databank is empty")
		provider.AssertNotCalled(t, "ExtractJobRequirements", mock.Anything, mock.Anything)
	})

	t.Run("Should return empty content when extraction is malformed", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(nil, fmt.Errorf("%w: truncated", ai.ErrMalformedResponse))
		uc := usecase.NewAnalysisUsecase(builder, provider)

		generated, err := uc.GenerateConstrainedResume(authedCtx(1), testJobDescription, false)
		require.NoError(t, err)
		assert.Empty(t, generated.ExperienceSection)
		assert.Empty(t, generated.SkillsSection)
		assert.Equal(t, 6, generated.UtilizationReport.DatabankItemsTotal)
		assert.Equal(t, []string{"Job requirements could not be extracted; no content was generated"}, generated.UtilizationReport.Gaps)
		provider.AssertNotCalled(t, "GenerateResumeContent", mock.Anything, mock.Anything)
	})

	t.Run("Should return empty content when generation is malformed", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(coverageRequirements(), nil)
		provider.On("GenerateResumeContent", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: not json", ai.ErrMalformedResponse))
		uc := usecase.NewAnalysisUsecase(builder, provider)

		generated, err := uc.GenerateConstrainedResume(authedCtx(1), testJobDescription, false)
		require.NoError(t, err)
		assert.Empty(t, generated.ExperienceSection)
		assert.Equal(t, []string{"The generated content could not be parsed; no content was kept"}, generated.UtilizationReport.Gaps)
	})

	t.Run("Should strip untraceable experience entries", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(coverageRequirements(), nil)
		provider.On("GenerateResumeContent", mock.Anything, mock.Anything).
			Return(&domain.GeneratedResume{
				ProfessionalSummary: "Backend engineer with documented Python experience.",
				ExperienceSection: []domain.GeneratedExperience{
					{Company: "babbage ltd", Title: "BACKEND ENGINEER", Bullets: []string{"Built Python services"}},
					{Company: "Google", Title: "CTO", Bullets: []string{"Ran everything"}},
				},
				UtilizationReport: domain.UtilizationReport{
					DatabankItemsTotal: 99, // the model's own count is never trusted
					DatabankItemsUsed:  4,
				},
			}, nil)
		uc := usecase.NewAnalysisUsecase(builder, provider)

		generated, err := uc.GenerateConstrainedResume(authedCtx(1), testJobDescription, true)
		require.NoError(t, err)

		require.Len(t, generated.ExperienceSection, 1)
		assert.Equal(t, "babbage ltd", generated.ExperienceSection[0].Company)
		assert.Equal(t, []string{"CTO at Google"}, generated.UtilizationReport.RemovedUntraceable)

		assert.Equal(t, 6, generated.UtilizationReport.DatabankItemsTotal)
		assert.Equal(t, 4, generated.UtilizationReport.DatabankItemsUsed)
		assert.InDelta(t, 66.67, generated.UtilizationReport.UtilizationPercentage, 0.01)
	})

	t.Run("Should clamp claimed usage to the databank total", func(t *testing.T) {
		builder := new(MockDatabankBuilder)
		builder.On("Build", mock.Anything, int64(1)).Return(coverageDatabank(), nil)
		provider := new(MockAIProvider)
		provider.On("ExtractJobRequirements", mock.Anything, testJobDescription).
			Return(coverageRequirements(), nil)
		provider.On("GenerateResumeContent", mock.Anything, mock.Anything).
			Return(&domain.GeneratedResume{
				UtilizationReport: domain.UtilizationReport{DatabankItemsUsed: 40},
			}, nil)
		uc := usecase.NewAnalysisUsecase(builder, provider)

		generated, err := uc.GenerateConstrainedResume(authedCtx(1), testJobDescription, false)
		require.NoError(t, err)
		assert.Equal(t, 6, generated.UtilizationReport.DatabankItemsUsed)
		assert.InDelta(t, 100, generated.UtilizationReport.UtilizationPercentage, 0.01)
	})
}
