package domain

import (
	"context"
	"time"
)

// Resume output formats. Binary layout engines are out of scope; non-HTML
// formats persist a JSON envelope around the compiled schema.
const (
	FormatPDF   = "pdf"
	FormatWord  = "word"
	FormatLatex = "latex"
	FormatHTML  = "html"
)

// ResumeConfiguration selects which records a resume includes, per category.
// A section appears in the compiled schema only when its flag is true AND at
// least one record id was selected for it.
type ResumeConfiguration struct {
	IncludeSummary        bool `json:"include_summary"`
	IncludeSkills         bool `json:"include_skills"`
	IncludeExperience     bool `json:"include_experience"`
	IncludeEducation      bool `json:"include_education"`
	IncludeProjects       bool `json:"include_projects"`
	IncludeCertifications bool `json:"include_certifications"`
	IncludeLanguages      bool `json:"include_languages"`

	SkillIDs         []int64 `json:"selected_skill_ids"`
	ExperienceIDs    []int64 `json:"selected_experience_ids"`
	EducationIDs     []int64 `json:"selected_education_ids"`
	ProjectIDs       []int64 `json:"selected_project_ids"`
	CertificationIDs []int64 `json:"selected_certification_ids"`
	LanguageIDs      []int64 `json:"selected_language_ids"`
}

// Resume is the persisted artifact: the chosen configuration plus the
// compiled schema and ATS score as of generation time. It is not recomputed
// when underlying records change; staleness is expected.
type Resume struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Title          string `json:"title" validate:"required,max=150"`
	Identifier     string `json:"identifier"`
	JobDescription string `json:"job_description"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`

	Format  string `json:"format" validate:"required,oneof=pdf word latex html"`
	Content string `json:"content"`

	SchemaJSON  string `json:"schema_jsonld"`
	ATSScore    *int   `json:"ats_score"`
	ATSFeedback string `json:"ats_feedback"`

	Config ResumeConfiguration `json:"config"`

	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// CreateResumeInput carries everything a compilation request needs.
type CreateResumeInput struct {
	Title          string              `json:"title" validate:"required,max=150"`
	JobDescription string              `json:"job_description" validate:"omitempty,max=20000"`
	JobTitle       string              `json:"job_title" validate:"omitempty,max=150"`
	CompanyName    string              `json:"company_name" validate:"omitempty,max=150"`
	Format         string              `json:"format" validate:"required,oneof=pdf word latex html"`
	Config         ResumeConfiguration `json:"config"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, userID, id int64) (*Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
	Delete(ctx context.Context, userID, id int64) error
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, input CreateResumeInput) (*Resume, error)
	GetResume(ctx context.Context, id int64) (*Resume, error)
	ListResumes(ctx context.Context) ([]Resume, error)
	DeleteResume(ctx context.Context, id int64) error
}
