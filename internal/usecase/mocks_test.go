package usecase_test

import (
	"context"

	"go-tailoresume-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockProfileRepo) ListSkillsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockProfileRepo) CreateSkill(ctx context.Context, s *domain.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateSkill(ctx context.Context, s *domain.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteSkill(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepo) ListWorkExperiences(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockProfileRepo) ListWorkExperiencesByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockProfileRepo) CreateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteWorkExperience(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepo) ListEducations(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockProfileRepo) ListEducationsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockProfileRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateEducation(ctx context.Context, e *domain.Education) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteEducation(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepo) ListCertifications(ctx context.Context, userID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockProfileRepo) ListCertificationsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Certification, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockProfileRepo) CreateCertification(ctx context.Context, c *domain.Certification) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateCertification(ctx context.Context, c *domain.Certification) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteCertification(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepo) ListLanguages(ctx context.Context, userID int64) ([]domain.Language, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

func (m *MockProfileRepo) ListLanguagesByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Language, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

func (m *MockProfileRepo) CreateLanguage(ctx context.Context, l *domain.Language) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteLanguage(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockProfileRepo) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProfileRepo) ListProjectsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProfileRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateProject(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) DeleteProject(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
