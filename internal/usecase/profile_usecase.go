package usecase

import (
	"context"
	"strings"
	"time"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// ownerFromCtx resolves the authenticated user id. Every operation below is
// scoped to it; record payloads never choose their own owner.
func ownerFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || userID == 0 {
		return 0, apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

func (u *profileUsecase) validateRecord(v any) error {
	if err := u.validate.Struct(v); err != nil {
		messages := validation.FormatValidationErrors(err)
		return apperror.UnprocessableInput(strings.Join(messages, "; "))
	}
	return nil
}

// --- Skills ---

func (u *profileUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListSkills(ctx, userID)
}

func (u *profileUsecase) CreateSkill(ctx context.Context, s *domain.Skill) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	s.UserID = userID
	if err := u.validateRecord(s); err != nil {
		return err
	}

	// Skill names are unique per user
	existing, err := u.repo.ListSkills(ctx, userID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, s.Name) {
			return apperror.UnprocessableInput("A skill with this name already exists")
		}
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.CreateSkill(ctx, s)
}

func (u *profileUsecase) UpdateSkill(ctx context.Context, s *domain.Skill) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	s.UserID = userID
	if err := u.validateRecord(s); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return u.repo.UpdateSkill(ctx, s)
}

func (u *profileUsecase) DeleteSkill(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteSkill(ctx, userID, id)
}

// --- Work experiences ---

func (u *profileUsecase) ListWorkExperiences(ctx context.Context) ([]domain.WorkExperience, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListWorkExperiences(ctx, userID)
}

func (u *profileUsecase) CreateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	w.UserID = userID
	if err := u.validateRecord(w); err != nil {
		return err
	}
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	return u.repo.CreateWorkExperience(ctx, w)
}

func (u *profileUsecase) UpdateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	w.UserID = userID
	if err := u.validateRecord(w); err != nil {
		return err
	}
	w.UpdatedAt = time.Now()
	return u.repo.UpdateWorkExperience(ctx, w)
}

func (u *profileUsecase) DeleteWorkExperience(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteWorkExperience(ctx, userID, id)
}

// --- Educations ---

func (u *profileUsecase) ListEducations(ctx context.Context) ([]domain.Education, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListEducations(ctx, userID)
}

func (u *profileUsecase) CreateEducation(ctx context.Context, e *domain.Education) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	e.UserID = userID
	if err := u.validateRecord(e); err != nil {
		return err
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.CreateEducation(ctx, e)
}

func (u *profileUsecase) UpdateEducation(ctx context.Context, e *domain.Education) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	e.UserID = userID
	if err := u.validateRecord(e); err != nil {
		return err
	}
	e.UpdatedAt = time.Now()
	return u.repo.UpdateEducation(ctx, e)
}

func (u *profileUsecase) DeleteEducation(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteEducation(ctx, userID, id)
}

// --- Certifications ---

func (u *profileUsecase) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListCertifications(ctx, userID)
}

func (u *profileUsecase) CreateCertification(ctx context.Context, c *domain.Certification) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	c.UserID = userID
	if err := u.validateRecord(c); err != nil {
		return err
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.CreateCertification(ctx, c)
}

func (u *profileUsecase) UpdateCertification(ctx context.Context, c *domain.Certification) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	c.UserID = userID
	if err := u.validateRecord(c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return u.repo.UpdateCertification(ctx, c)
}

func (u *profileUsecase) DeleteCertification(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteCertification(ctx, userID, id)
}

// --- Languages ---

func (u *profileUsecase) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListLanguages(ctx, userID)
}

func (u *profileUsecase) CreateLanguage(ctx context.Context, l *domain.Language) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	l.UserID = userID
	if err := u.validateRecord(l); err != nil {
		return err
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	return u.repo.CreateLanguage(ctx, l)
}

func (u *profileUsecase) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	l.UserID = userID
	if err := u.validateRecord(l); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()
	return u.repo.UpdateLanguage(ctx, l)
}

func (u *profileUsecase) DeleteLanguage(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteLanguage(ctx, userID, id)
}

// --- Projects ---

func (u *profileUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListProjects(ctx, userID)
}

func (u *profileUsecase) CreateProject(ctx context.Context, p *domain.Project) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	p.UserID = userID
	if err := u.validateRecord(p); err != nil {
		return err
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.CreateProject(ctx, p)
}

func (u *profileUsecase) UpdateProject(ctx context.Context, p *domain.Project) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	p.UserID = userID
	if err := u.validateRecord(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return u.repo.UpdateProject(ctx, p)
}

func (u *profileUsecase) DeleteProject(ctx context.Context, id int64) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	return u.repo.DeleteProject(ctx, userID, id)
}
