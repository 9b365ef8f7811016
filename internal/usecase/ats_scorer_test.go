package usecase_test

import (
	"encoding/json"
	"testing"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateATSScore(t *testing.T) {
	t.Run("complete schema scores 100 with positive feedback", func(t *testing.T) {
		schema := usecase.CompileResumeSchema(fullSchemaInput(t))
		score, feedback := usecase.CalculateATSScore(schema, "any job description")

		assert.Equal(t, 100, score)
		require.Len(t, feedback, 1)
		assert.Equal(t, "Great job! Your resume has excellent ATS compatibility.", feedback[0])
	})

	t.Run("empty schema clamps at zero", func(t *testing.T) {
		score, feedback := usecase.CalculateATSScore(domain.ResumeSchema{}, "")

		assert.Equal(t, 0, score)
		assert.Len(t, feedback, 10)
		assert.Contains(t, feedback, "Missing schema context")
		assert.Contains(t, feedback, "Missing person name")
		assert.Contains(t, feedback, "No professional profiles linked (LinkedIn, GitHub, etc.)")
		assert.Contains(t, feedback, "No skills listed")
	})

	t.Run("current position costs the endDate deduction", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.WorkExperiences[0].IsCurrent = true
		in.WorkExperiences[0].EndDate = nil

		score, feedback := usecase.CalculateATSScore(usecase.CompileResumeSchema(in), "")
		assert.Equal(t, 98, score)
		assert.Contains(t, feedback, "Add endDate to work experience #1")
	})

	t.Run("per entry deductions stack", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.WorkExperiences[0].Description = ""
		in.WorkExperiences[0].Responsibilities = ""
		in.Educations[0].FieldOfStudy = ""

		score, feedback := usecase.CalculateATSScore(usecase.CompileResumeSchema(in), "")
		assert.Equal(t, 94, score)
		assert.Contains(t, feedback, "Add description to work experience #1")
		assert.Contains(t, feedback, "Add responsibilities to work experience #1")
		assert.Contains(t, feedback, "Add credentialCategory to education #1")
	})
}

func TestValidateStoredSchema(t *testing.T) {
	t.Run("unparseable JSON is a hard failure", func(t *testing.T) {
		score, critical, recommendations := usecase.ValidateStoredSchema("{not json")

		assert.Equal(t, 0, score)
		assert.Equal(t, []string{"Invalid JSON-LD schema"}, critical)
		assert.Nil(t, recommendations)
	})

	t.Run("complete schema validates clean", func(t *testing.T) {
		raw, err := json.Marshal(usecase.CompileResumeSchema(fullSchemaInput(t)))
		require.NoError(t, err)

		score, critical, recommendations := usecase.ValidateStoredSchema(string(raw))
		assert.Equal(t, 100, score)
		assert.Empty(t, critical)
		assert.Empty(t, recommendations)
	})

	t.Run("missing essentials and recommendations are split", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.User.Email = ""
		in.User.Phone = ""
		in.Resume.Config.IncludeSkills = false
		raw, err := json.Marshal(usecase.CompileResumeSchema(in))
		require.NoError(t, err)

		score, critical, recommendations := usecase.ValidateStoredSchema(string(raw))
		// email -15, skills section -15, telephone -5
		assert.Equal(t, 65, score)
		assert.Contains(t, critical, "Missing essential person property: email")
		assert.Contains(t, critical, "Missing or empty skills section")
		assert.Contains(t, recommendations, "Add telephone to improve ATS compatibility")
	})
}

func TestImprovementSteps(t *testing.T) {
	t.Run("prefixes and ordering", func(t *testing.T) {
		steps := usecase.ImprovementSteps(80, []string{"Missing essential property: name"}, []string{"Add telephone to improve ATS compatibility"})

		require.Len(t, steps, 3)
		assert.Equal(t, "CRITICAL: Missing essential property: name", steps[0])
		assert.Equal(t, "RECOMMENDED: Add telephone to improve ATS compatibility", steps[1])
		assert.Equal(t, "Your resume has good ATS compatibility", steps[2])
	})

	t.Run("score bands", func(t *testing.T) {
		low := usecase.ImprovementSteps(30, nil, nil)
		assert.Equal(t, []string{"Your resume needs significant improvements for ATS compatibility"}, low)

		mid := usecase.ImprovementSteps(60, nil, nil)
		assert.Equal(t, []string{"Your resume meets basic ATS requirements but could be improved"}, mid)

		high := usecase.ImprovementSteps(75, nil, nil)
		assert.Equal(t, []string{"Your resume has good ATS compatibility"}, high)
	})
}
