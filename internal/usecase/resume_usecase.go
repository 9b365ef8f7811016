package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type resumeUsecase struct {
	resumes  domain.ResumeRepository
	users    domain.UserRepository
	profiles domain.ProfileRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewResumeUsecase(
	resumes domain.ResumeRepository,
	users domain.UserRepository,
	profiles domain.ProfileRepository,
	validate *validator.Validate,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumes:  resumes,
		users:    users,
		profiles: profiles,
		validate: validate,
		now:      time.Now,
	}
}

// CreateResume compiles, scores, renders, and persists one resume artifact in
// a single pass. The stored schema and score are frozen at creation time and
// never recomputed when the underlying records change.
func (u *resumeUsecase) CreateResume(ctx context.Context, input domain.CreateResumeInput) (*domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(&input); err != nil {
		messages := validation.FormatValidationErrors(err)
		return nil, apperror.UnprocessableInput(strings.Join(messages, "; "))
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	sel, err := u.loadSelectedRecords(ctx, userID, input.Config)
	if err != nil {
		return nil, err
	}

	now := u.now()
	resume := &domain.Resume{
		UserID:         userID,
		Title:          input.Title,
		Identifier:     "resume-" + uuid.NewString(),
		JobDescription: input.JobDescription,
		JobTitle:       input.JobTitle,
		CompanyName:    input.CompanyName,
		Format:         input.Format,
		Config:         input.Config,
		CreatedAt:      now,
		LastModified:   now,
	}

	sel.User = *user
	sel.Resume = resume
	sel.Now = now

	schema := CompileResumeSchema(sel)

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("serializing resume schema: %w", err))
	}
	resume.SchemaJSON = string(schemaJSON)

	content, err := renderContent(resume.Format, resume.Title, schema, resume.SchemaJSON)
	if err != nil {
		return nil, err
	}
	resume.Content = content

	score, feedback := CalculateATSScore(schema, input.JobDescription)
	resume.ATSScore = &score
	resume.ATSFeedback = strings.Join(feedback, "\n")

	if err := u.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) GetResume(ctx context.Context, id int64) (*domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	resume, err := u.resumes.GetByID(ctx, userID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.resumes.ListByUser(ctx, userID)
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	if err := u.resumes.Delete(ctx, userID, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

// loadSelectedRecords fetches the user's chosen records per category. Every
// lookup is owner-filtered, so ids belonging to other users silently drop
// out instead of leaking.
func (u *resumeUsecase) loadSelectedRecords(ctx context.Context, userID int64, cfg domain.ResumeConfiguration) (SchemaInput, error) {
	var in SchemaInput
	var err error

	if cfg.IncludeSkills && len(cfg.SkillIDs) > 0 {
		if in.Skills, err = u.profiles.ListSkillsByIDs(ctx, userID, cfg.SkillIDs); err != nil {
			return in, err
		}
	}
	if cfg.IncludeExperience && len(cfg.ExperienceIDs) > 0 {
		if in.WorkExperiences, err = u.profiles.ListWorkExperiencesByIDs(ctx, userID, cfg.ExperienceIDs); err != nil {
			return in, err
		}
	}
	if cfg.IncludeEducation && len(cfg.EducationIDs) > 0 {
		if in.Educations, err = u.profiles.ListEducationsByIDs(ctx, userID, cfg.EducationIDs); err != nil {
			return in, err
		}
	}
	if cfg.IncludeProjects && len(cfg.ProjectIDs) > 0 {
		if in.Projects, err = u.profiles.ListProjectsByIDs(ctx, userID, cfg.ProjectIDs); err != nil {
			return in, err
		}
	}
	if cfg.IncludeCertifications && len(cfg.CertificationIDs) > 0 {
		if in.Certifications, err = u.profiles.ListCertificationsByIDs(ctx, userID, cfg.CertificationIDs); err != nil {
			return in, err
		}
	}
	if cfg.IncludeLanguages && len(cfg.LanguageIDs) > 0 {
		if in.Languages, err = u.profiles.ListLanguagesByIDs(ctx, userID, cfg.LanguageIDs); err != nil {
			return in, err
		}
	}
	return in, nil
}

// renderContent produces the stored content column per format. HTML embeds
// the JSON-LD directly; the other formats persist a JSON envelope a layout
// engine consumes later.
func renderContent(format, title string, schema domain.ResumeSchema, schemaJSON string) (string, error) {
	switch format {
	case domain.FormatHTML:
		return RenderHTMLWithSchema(title, schemaJSON), nil
	case domain.FormatPDF, domain.FormatWord, domain.FormatLatex:
		envelope, err := json.Marshal(struct {
			Format   string              `json:"format"`
			Schema   domain.ResumeSchema `json:"schema"`
			Template string              `json:"template"`
		}{
			Format:   format,
			Schema:   schema,
			Template: "default",
		})
		if err != nil {
			return "", apperror.Internal(fmt.Errorf("serializing resume content: %w", err))
		}
		return string(envelope), nil
	default:
		return "", apperror.BadRequest("Unsupported resume format: " + format)
	}
}
