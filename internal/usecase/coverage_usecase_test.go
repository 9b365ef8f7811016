package usecase_test

import (
	"testing"
	"time"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coverageNow = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func coverageDatabank() *domain.Databank {
	return &domain.Databank{
		User: domain.User{ID: 1, Username: "ada"},
		Skills: []domain.Skill{
			{Name: "Python", Keywords: "django, apis"},
			{Name: "PostgreSQL"},
		},
		WorkExperiences: []domain.WorkExperience{
			{Company: "Babbage Ltd", JobTitle: "Backend Engineer", StartDate: "2019-01-01", EndDate: strPtr("2022-01-01"), Description: "Python services"},
			{Company: "Lovelace Labs", JobTitle: "Platform Engineer", StartDate: "2023-06-01", IsCurrent: true},
		},
		Educations: []domain.Education{
			{Institution: "University of London", Degree: "BSc", FieldOfStudy: "Computer Science"},
		},
		Certifications: []domain.Certification{
			{Name: "AWS Certified Solutions Architect"},
		},
	}
}

func coverageRequirements() *domain.JobRequirements {
	return &domain.JobRequirements{
		JobTitle:              "Backend Engineer",
		RequiredSkills:        []string{"Python", "Kubernetes"},
		PreferredSkills:       []string{"SQL"},
		ExperienceLevel:       "5+ years",
		EducationRequirements: []string{"Computer Science"},
		Keywords:              []string{"AWS Certified"},
	}
}

func TestBuildCoverageReport(t *testing.T) {
	report := usecase.BuildCoverageReport(coverageDatabank(), coverageRequirements(), coverageNow)

	t.Run("skills combine required and preferred", func(t *testing.T) {
		assert.Equal(t, 3, report.Skills.Required)
		assert.Equal(t, 2, report.Skills.Covered)
		// Missing entries are verbatim requirement strings
		assert.Equal(t, []string{"Kubernetes"}, report.Skills.Missing)
	})

	t.Run("experience covers the required years", func(t *testing.T) {
		assert.Equal(t, 5, report.Experience.Required)
		assert.Equal(t, 5, report.Experience.Covered)
		assert.InDelta(t, 100, report.Experience.Percentage, 0.01)
		assert.Empty(t, report.Experience.Missing)
	})

	t.Run("education matched on field of study", func(t *testing.T) {
		assert.Equal(t, 1, report.Education.Covered)
		assert.Empty(t, report.Education.Missing)
	})

	t.Run("certification requirement inferred from keywords", func(t *testing.T) {
		assert.Equal(t, 1, report.Certifications.Required)
		assert.Equal(t, 1, report.Certifications.Covered)
	})

	t.Run("only required skill gaps are critical", func(t *testing.T) {
		assert.Equal(t, []string{"Missing required skill: Kubernetes"}, report.CriticalGaps)
	})

	t.Run("utilization counts matched records", func(t *testing.T) {
		// 2 skills + 1 experience + 1 education + 1 certification matched of 6 records
		assert.InDelta(t, 83.33, report.DatabankUtilizationPercentage, 0.01)
	})
}

func TestBuildCoverageReportExperienceShortfall(t *testing.T) {
	d := coverageDatabank()
	d.WorkExperiences = d.WorkExperiences[:1] // 3 documented years
	req := coverageRequirements()

	report := usecase.BuildCoverageReport(d, req, coverageNow)

	assert.Equal(t, 3, report.Experience.Covered)
	assert.Equal(t, []string{"5+ years"}, report.Experience.Missing)
	assert.Contains(t, report.CriticalGaps, "Experience shortfall: 3 of 5 required years documented")
}

func TestBuildCoverageReportTransferableSkills(t *testing.T) {
	d := coverageDatabank()
	d.Skills = append(d.Skills, domain.Skill{Name: "REST API design"})
	req := coverageRequirements()
	req.RequiredSkills = append(req.RequiredSkills, "GraphQL API federation")

	report := usecase.BuildCoverageReport(d, req, coverageNow)

	assert.Contains(t, report.Skills.Missing, "GraphQL API federation")
	require.Len(t, report.TransferableSkills, 1)
	mapping := report.TransferableSkills[0]
	assert.Equal(t, "REST API design", mapping.DatabankSkill)
	assert.Equal(t, "GraphQL API federation", mapping.Requirement)
	assert.Equal(t, `Shares "api" with an existing skill`, mapping.Reason)
}

func TestZeroCoverageReport(t *testing.T) {
	report := usecase.ZeroCoverageReport("Job requirements could not be extracted; no coverage can be claimed")

	assert.Zero(t, report.Skills.Covered)
	assert.Zero(t, report.Skills.Percentage)
	assert.Zero(t, report.Experience.Percentage)
	assert.Zero(t, report.DatabankUtilizationPercentage)
	assert.Equal(t, []string{"Job requirements could not be extracted; no coverage can be claimed"}, report.CriticalGaps)
	assert.Empty(t, report.TransferableSkills)
}

func TestTotalExperienceYears(t *testing.T) {
	t.Run("sums closed and current entries", func(t *testing.T) {
		experiences := []domain.WorkExperience{
			{StartDate: "2019-01-01", EndDate: strPtr("2022-01-01")},
			{StartDate: "2023-06-01", IsCurrent: true},
		}
		assert.Equal(t, 6, usecase.TotalExperienceYears(experiences, coverageNow))
	})

	t.Run("partial years round down", func(t *testing.T) {
		experiences := []domain.WorkExperience{
			{StartDate: "2020-06-15", EndDate: strPtr("2021-06-14")},
		}
		assert.Equal(t, 0, usecase.TotalExperienceYears(experiences, coverageNow))
	})

	t.Run("unparseable start date contributes zero", func(t *testing.T) {
		experiences := []domain.WorkExperience{
			{StartDate: "yesterday", EndDate: strPtr("2022-01-01")},
		}
		assert.Equal(t, 0, usecase.TotalExperienceYears(experiences, coverageNow))
	})

	t.Run("end before start contributes zero", func(t *testing.T) {
		experiences := []domain.WorkExperience{
			{StartDate: "2022-01-01", EndDate: strPtr("2019-01-01")},
		}
		assert.Equal(t, 0, usecase.TotalExperienceYears(experiences, coverageNow))
	})
}

func TestRequiredYears(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"5+ years", 5},
		{"10+ years of experience", 10},
		{"3-5 years", 3},
		{"Senior Engineer", 5},
		{"Lead", 5},
		{"Principal", 5},
		{"Mid-level", 3},
		{"Entry level", 0},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.RequiredYears(tc.level))
		})
	}
}
