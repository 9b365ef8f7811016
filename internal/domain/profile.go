package domain

import (
	"context"
	"time"
)

// ExperienceLevel constants (closed enumeration, validated at the boundary)
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Skill is a single verified skill in the user's databank.
type Skill struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	Name            string `json:"name" validate:"required,max=100"`
	Category        string `json:"category" validate:"required,max=100"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	YearsExperience *int   `json:"years_of_experience" validate:"omitempty,gte=0,lte=60"`
	Details         string `json:"details" validate:"omitempty,max=2000"`
	// Comma-separated keywords for better ATS matching
	Keywords  string    `json:"keywords" validate:"omitempty,max=500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkExperience is one employment entry. EndDate must be absent for current
// positions; the boundary validator enforces it before anything compiles.
type WorkExperience struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Company   string  `json:"company" validate:"required,max=150"`
	JobTitle  string  `json:"job_title" validate:"required,max=150"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02,excluded_if=IsCurrent true"`
	IsCurrent bool    `json:"is_current"`

	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`

	Description string `json:"description" validate:"omitempty,max=3000"`
	// Stored as JSON list or plain text; consumers normalize via FlexibleList
	Responsibilities string `json:"responsibilities" validate:"omitempty,max=5000"`
	Achievements     string `json:"achievements" validate:"omitempty,max=5000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Education struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Institution  string  `json:"institution" validate:"required,max=150"`
	Degree       string  `json:"degree" validate:"required,max=150"`
	FieldOfStudy string  `json:"field_of_study" validate:"required,max=150"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02,excluded_if=IsCurrent true"`
	IsCurrent    bool    `json:"is_current"`

	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`

	GPA          string `json:"gpa" validate:"omitempty,max=20"`
	Achievements string `json:"achievements" validate:"omitempty,max=5000"`
	Activities   string `json:"activities" validate:"omitempty,max=5000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Certification struct {
	ID                  int64   `json:"id"`
	UserID              int64   `json:"user_id"`
	Name                string  `json:"name" validate:"required,max=150"`
	IssuingOrganization string  `json:"issuing_organization" validate:"required,max=150"`
	IssueDate           string  `json:"issue_date" validate:"required,datetime=2006-01-02"`
	ExpirationDate      *string `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	CredentialID        string  `json:"credential_id" validate:"omitempty,max=150"`
	CredentialURL       string  `json:"credential_url" validate:"omitempty,url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Language proficiency is free text ("Native", "C1", "Conversational").
type Language struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name" validate:"required,max=100"`
	Proficiency string `json:"proficiency" validate:"required,max=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description" validate:"required,max=3000"`
	URL         string  `json:"url" validate:"omitempty,url"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02,excluded_if=IsCurrent true"`
	IsCurrent   bool    `json:"is_current"`
	// JSON list or comma-separated
	Technologies string `json:"technologies" validate:"omitempty,max=2000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileRepository is the ownership-scoped store for all databank record
// types. Every query is filtered by user id; the core never sees records
// across users.
type ProfileRepository interface {
	ListSkills(ctx context.Context, userID int64) ([]Skill, error)
	ListSkillsByIDs(ctx context.Context, userID int64, ids []int64) ([]Skill, error)
	CreateSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, userID, id int64) error

	ListWorkExperiences(ctx context.Context, userID int64) ([]WorkExperience, error)
	ListWorkExperiencesByIDs(ctx context.Context, userID int64, ids []int64) ([]WorkExperience, error)
	CreateWorkExperience(ctx context.Context, w *WorkExperience) error
	UpdateWorkExperience(ctx context.Context, w *WorkExperience) error
	DeleteWorkExperience(ctx context.Context, userID, id int64) error

	ListEducations(ctx context.Context, userID int64) ([]Education, error)
	ListEducationsByIDs(ctx context.Context, userID int64, ids []int64) ([]Education, error)
	CreateEducation(ctx context.Context, e *Education) error
	UpdateEducation(ctx context.Context, e *Education) error
	DeleteEducation(ctx context.Context, userID, id int64) error

	ListCertifications(ctx context.Context, userID int64) ([]Certification, error)
	ListCertificationsByIDs(ctx context.Context, userID int64, ids []int64) ([]Certification, error)
	CreateCertification(ctx context.Context, c *Certification) error
	UpdateCertification(ctx context.Context, c *Certification) error
	DeleteCertification(ctx context.Context, userID, id int64) error

	ListLanguages(ctx context.Context, userID int64) ([]Language, error)
	ListLanguagesByIDs(ctx context.Context, userID int64, ids []int64) ([]Language, error)
	CreateLanguage(ctx context.Context, l *Language) error
	UpdateLanguage(ctx context.Context, l *Language) error
	DeleteLanguage(ctx context.Context, userID, id int64) error

	ListProjects(ctx context.Context, userID int64) ([]Project, error)
	ListProjectsByIDs(ctx context.Context, userID int64, ids []int64) ([]Project, error)
	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, userID, id int64) error
}

// ProfileUsecase exposes the ownership-scoped CRUD surface for databank
// records. All calls derive the owner from the authenticated context.
type ProfileUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	ListWorkExperiences(ctx context.Context) ([]WorkExperience, error)
	CreateWorkExperience(ctx context.Context, w *WorkExperience) error
	UpdateWorkExperience(ctx context.Context, w *WorkExperience) error
	DeleteWorkExperience(ctx context.Context, id int64) error

	ListEducations(ctx context.Context) ([]Education, error)
	CreateEducation(ctx context.Context, e *Education) error
	UpdateEducation(ctx context.Context, e *Education) error
	DeleteEducation(ctx context.Context, id int64) error

	ListCertifications(ctx context.Context) ([]Certification, error)
	CreateCertification(ctx context.Context, c *Certification) error
	UpdateCertification(ctx context.Context, c *Certification) error
	DeleteCertification(ctx context.Context, id int64) error

	ListLanguages(ctx context.Context) ([]Language, error)
	CreateLanguage(ctx context.Context, l *Language) error
	UpdateLanguage(ctx context.Context, l *Language) error
	DeleteLanguage(ctx context.Context, id int64) error

	ListProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id int64) error
}
