package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/internal/usecase"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResumeUsecase() (domain.ResumeUsecase, *MockResumeRepo, *MockUserRepo, *MockProfileRepo) {
	resumes := new(MockResumeRepo)
	users := new(MockUserRepo)
	profiles := new(MockProfileRepo)

	validate := validator.New()
	validation.RegisterValidators(validate)

	return usecase.NewResumeUsecase(resumes, users, profiles, validate), resumes, users, profiles
}

func createResumeInput(format string) domain.CreateResumeInput {
	return domain.CreateResumeInput{
		Title:  "Backend Engineer Resume",
		Format: format,
		Config: domain.ResumeConfiguration{
			IncludeSummary:    true,
			IncludeSkills:     true,
			IncludeExperience: true,
			IncludeEducation:  true,
			SkillIDs:          []int64{1},
			ExperienceIDs:     []int64{2},
			EducationIDs:      []int64{3},
		},
	}
}

func stubSelectedRecords(t *testing.T, users *MockUserRepo, profiles *MockProfileRepo) {
	t.Helper()
	in := fullSchemaInput(t)
	in.User.ID = 1

	users.On("GetByID", mock.Anything, int64(1)).Return(&in.User, nil)
	profiles.On("ListSkillsByIDs", mock.Anything, int64(1), []int64{1}).Return(in.Skills, nil)
	profiles.On("ListWorkExperiencesByIDs", mock.Anything, int64(1), []int64{2}).Return(in.WorkExperiences, nil)
	profiles.On("ListEducationsByIDs", mock.Anything, int64(1), []int64{3}).Return(in.Educations, nil)
}

func TestCreateResume(t *testing.T) {
	t.Run("Should fail without authentication", func(t *testing.T) {
		uc, _, _, _ := newResumeUsecase()

		_, err := uc.CreateResume(context.Background(), createResumeInput(domain.FormatHTML))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should reject invalid input", func(t *testing.T) {
		uc, _, _, _ := newResumeUsecase()

		input := createResumeInput(domain.FormatHTML)
		input.Title = ""

		_, err := uc.CreateResume(authedCtx(1), input)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 422, appErr.Code)
		assert.Contains(t, err.Error(), "Resume Title is required")
	})

	t.Run("Should reject unsupported format", func(t *testing.T) {
		uc, _, _, _ := newResumeUsecase()

		_, err := uc.CreateResume(authedCtx(1), createResumeInput("docx"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Output Format must be one of")
	})

	t.Run("Should compile, score, and persist an html resume", func(t *testing.T) {
		uc, resumes, users, profiles := newResumeUsecase()
		stubSelectedRecords(t, users, profiles)
		resumes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil)

		resume, err := uc.CreateResume(authedCtx(1), createResumeInput(domain.FormatHTML))
		require.NoError(t, err)

		assert.Equal(t, int64(1), resume.UserID)
		assert.True(t, strings.HasPrefix(resume.Identifier, "resume-"))

		var schema domain.ResumeSchema
		require.NoError(t, json.Unmarshal([]byte(resume.SchemaJSON), &schema))
		assert.Equal(t, "https://schema.org/", schema.Context)
		assert.Equal(t, resume.Identifier, schema.Identifier)
		assert.Len(t, schema.Skills, 1)

		assert.Contains(t, resume.Content, `<script type="application/ld+json">`)

		require.NotNil(t, resume.ATSScore)
		assert.Equal(t, 100, *resume.ATSScore)
		assert.Equal(t, "Great job! Your resume has excellent ATS compatibility.", resume.ATSFeedback)

		resumes.AssertExpectations(t)
	})

	t.Run("Should persist a JSON envelope for non-html formats", func(t *testing.T) {
		uc, resumes, users, profiles := newResumeUsecase()
		stubSelectedRecords(t, users, profiles)
		resumes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil)

		resume, err := uc.CreateResume(authedCtx(1), createResumeInput(domain.FormatPDF))
		require.NoError(t, err)

		assert.Contains(t, resume.Content, `"format":"pdf"`)
		assert.Contains(t, resume.Content, `"template":"default"`)
		assert.NotContains(t, resume.Content, "<html")
	})

	t.Run("Should map missing user to not found", func(t *testing.T) {
		uc, _, users, _ := newResumeUsecase()
		users.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

		_, err := uc.CreateResume(authedCtx(1), createResumeInput(domain.FormatHTML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}

func TestGetResume(t *testing.T) {
	t.Run("Should scope lookup to the authenticated user", func(t *testing.T) {
		uc, resumes, _, _ := newResumeUsecase()
		stored := &domain.Resume{ID: 7, UserID: 1, Title: "Backend Engineer Resume"}
		resumes.On("GetByID", mock.Anything, int64(1), int64(7)).Return(stored, nil)

		resume, err := uc.GetResume(authedCtx(1), 7)
		require.NoError(t, err)
		assert.Equal(t, stored, resume)
		resumes.AssertExpectations(t)
	})

	t.Run("Should map ErrNotFound", func(t *testing.T) {
		uc, resumes, _, _ := newResumeUsecase()
		resumes.On("GetByID", mock.Anything, int64(1), int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetResume(authedCtx(1), 7)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Contains(t, err.Error(), "Resume not found")
	})
}

func TestDeleteResume(t *testing.T) {
	t.Run("Should map ErrNotFound", func(t *testing.T) {
		uc, resumes, _, _ := newResumeUsecase()
		resumes.On("Delete", mock.Anything, int64(1), int64(7)).Return(domain.ErrNotFound)

		err := uc.DeleteResume(authedCtx(1), 7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Resume not found")
	})

	t.Run("Should delete owned resume", func(t *testing.T) {
		uc, resumes, _, _ := newResumeUsecase()
		resumes.On("Delete", mock.Anything, int64(1), int64(7)).Return(nil)

		assert.NoError(t, uc.DeleteResume(authedCtx(1), 7))
		resumes.AssertExpectations(t)
	})
}

func TestListResumes(t *testing.T) {
	uc, resumes, _, _ := newResumeUsecase()
	resumes.On("ListByUser", mock.Anything, int64(1)).Return([]domain.Resume{{ID: 1}, {ID: 2}}, nil)

	list, err := uc.ListResumes(authedCtx(1))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
