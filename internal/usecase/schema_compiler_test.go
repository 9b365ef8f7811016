package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func fullSchemaInput(t *testing.T) usecase.SchemaInput {
	t.Helper()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return usecase.SchemaInput{
		User: domain.User{
			ID:       1,
			Email:    "ada@example.com",
			Username: "ada",
			FullName: "Ada Lovelace",
			Phone:    "+44 20 7946 0857",
			Website:  "https://ada.example.com",
			LinkedIn: "https://linkedin.com/in/ada",
			GitHub:   "https://github.com/ada",
			City:     "London",
			Country:  "United Kingdom",
			Summary:  "Engineer with a focus on analytical systems.",
		},
		Resume: &domain.Resume{
			Title:      "Analytical Engine Engineer",
			Identifier: "resume-test-1",
			CreatedAt:  now,
			Config: domain.ResumeConfiguration{
				IncludeSummary:        true,
				IncludeSkills:         true,
				IncludeExperience:     true,
				IncludeEducation:      true,
				IncludeProjects:       true,
				IncludeCertifications: true,
				IncludeLanguages:      true,
			},
		},
		Now: now,
		Skills: []domain.Skill{
			{Name: "Go", Category: "Programming", ExperienceLevel: domain.LevelExpert, YearsExperience: intPtr(6), Keywords: "golang, backend"},
		},
		WorkExperiences: []domain.WorkExperience{
			{
				Company: "Babbage Ltd", JobTitle: "Engineer",
				StartDate: "2019-01-01", EndDate: strPtr("2022-01-01"),
				City: "London", Country: "United Kingdom",
				Description:      "Built computation pipelines.",
				Responsibilities: `["Designed modules","Reviewed designs"]`,
				Achievements:     "Shipped the difference engine",
			},
		},
		Educations: []domain.Education{
			{
				Institution: "University of London", Degree: "BSc", FieldOfStudy: "Mathematics",
				StartDate: "2012-09-01", EndDate: strPtr("2015-06-30"), GPA: "3.9",
			},
		},
		Projects: []domain.Project{
			{Name: "Notes", Description: "Annotated translation", Technologies: "analysis, computation"},
		},
		Certifications: []domain.Certification{
			{Name: "Chartered Engineer", IssuingOrganization: "Royal Society", IssueDate: "2020-05-01", ExpirationDate: strPtr("2030-05-01")},
		},
		Languages: []domain.Language{
			{Name: "English", Proficiency: "Native"},
			{Name: "French", Proficiency: "Fluent"},
		},
	}
}

func TestCompileResumeSchemaFullDocument(t *testing.T) {
	in := fullSchemaInput(t)
	schema := usecase.CompileResumeSchema(in)

	assert.Equal(t, "https://schema.org/", schema.Context)
	assert.Equal(t, "Resume", schema.Type)
	assert.Equal(t, "resume-test-1", schema.Identifier)
	assert.Equal(t, "Analytical Engine Engineer", schema.Name)
	assert.Equal(t, "Engineer with a focus on analytical systems.", schema.Description)

	assert.Equal(t, "Person", schema.Person.Type)
	assert.Equal(t, "Ada Lovelace", schema.Person.Name)
	require.NotNil(t, schema.Person.Address)
	assert.Equal(t, "London", schema.Person.Address.AddressLocality)
	require.Len(t, schema.Person.SameAs, 2)
	assert.Equal(t, "LinkedIn", schema.Person.SameAs[0].Name)
	assert.Equal(t, "GitHub", schema.Person.SameAs[1].Name)

	require.Len(t, schema.Skills, 1)
	assert.Equal(t, "DefinedTerm", schema.Skills[0].Type)
	assert.Equal(t, "Programming", schema.Skills[0].TermCode)
	assert.Equal(t, domain.FlexibleList{"golang", "backend"}, schema.Skills[0].Keywords)

	require.Len(t, schema.WorkExperience, 1)
	role := schema.WorkExperience[0]
	assert.Equal(t, "OrganizationRole", role.Type)
	assert.Equal(t, "Engineer", role.Name)
	assert.Equal(t, "Babbage Ltd", role.MemberOf.Name)
	assert.Equal(t, "2022-01-01", role.EndDate)
	assert.Equal(t, domain.FlexibleList{"Designed modules", "Reviewed designs"}, role.Responsibilities)
	assert.Equal(t, domain.FlexibleList{"Shipped the difference engine"}, role.Achievements)
	require.NotNil(t, role.Location)
	assert.Equal(t, "London", role.Location.Address.AddressLocality)

	require.Len(t, schema.Education, 1)
	assert.Equal(t, "BSc", schema.Education[0].Name)
	assert.Equal(t, "Mathematics", schema.Education[0].CredentialCategory)
	assert.Equal(t, "University of London", schema.Education[0].Institution.Name)

	require.Len(t, schema.Certifications, 1)
	assert.Equal(t, "certification", schema.Certifications[0].CredentialCategory)
	assert.Equal(t, "2020-05-01", schema.Certifications[0].ValidFrom)
	assert.Equal(t, "2030-05-01", schema.Certifications[0].ValidUntil)

	require.Len(t, schema.KnowsLanguage, 2)
	assert.Equal(t, "Native", schema.KnowsLanguage[0].ProficiencyLevel)
}

func TestCompileResumeSchemaSectionGating(t *testing.T) {
	t.Run("disabled flag omits section even with records", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.Resume.Config.IncludeSkills = false
		schema := usecase.CompileResumeSchema(in)
		assert.Nil(t, schema.Skills)
	})

	t.Run("enabled flag with no records omits section", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.Projects = nil
		schema := usecase.CompileResumeSchema(in)
		assert.Nil(t, schema.Projects)

		raw, err := json.Marshal(schema)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"projects"`)
	})

	t.Run("summary omitted when flag disabled", func(t *testing.T) {
		in := fullSchemaInput(t)
		in.Resume.Config.IncludeSummary = false
		schema := usecase.CompileResumeSchema(in)
		assert.Empty(t, schema.Description)
	})
}

func TestCompileResumeSchemaCurrentPositionOmitsEndDate(t *testing.T) {
	in := fullSchemaInput(t)
	in.WorkExperiences[0].IsCurrent = true
	// A stored end date must not leak into the document for a current role
	in.WorkExperiences[0].EndDate = strPtr("2022-01-01")

	schema := usecase.CompileResumeSchema(in)
	require.Len(t, schema.WorkExperience, 1)
	assert.Empty(t, schema.WorkExperience[0].EndDate)

	raw, err := json.Marshal(schema.WorkExperience[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"endDate"`)
}

func TestCompileResumeSchemaFallsBackToUsername(t *testing.T) {
	in := fullSchemaInput(t)
	in.User.FullName = ""

	schema := usecase.CompileResumeSchema(in)
	assert.Equal(t, "ada", schema.Person.Name)
}

func TestCompileResumeSchemaDeterministic(t *testing.T) {
	first, err := json.Marshal(usecase.CompileResumeSchema(fullSchemaInput(t)))
	require.NoError(t, err)
	second, err := json.Marshal(usecase.CompileResumeSchema(fullSchemaInput(t)))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRenderHTMLWithSchema(t *testing.T) {
	html := usecase.RenderHTMLWithSchema("My Resume", `{"@type":"Resume"}`)
	assert.Contains(t, html, "<title>My Resume</title>")
	assert.Contains(t, html, `<script type="application/ld+json">`)
	assert.Contains(t, html, `{"@type":"Resume"}`)
}
