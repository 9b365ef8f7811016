package postgres

import (
	"context"

	"go-tailoresume-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// profileRepository stores the six databank record types. Every statement is
// owner-filtered; ids belonging to other users never match.
type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func deleteScoped(ctx context.Context, db *pgxpool.Pool, table string, userID, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// =================================================================================================
// Skills
// =================================================================================================

const skillColumns = `
	id, user_id, name, category, experience_level, years_of_experience,
	COALESCE(details, ''), COALESCE(keywords, ''), created_at, updated_at`

func (r *profileRepository) querySkills(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Category, &s.ExperienceLevel, &s.YearsExperience,
			&s.Details, &s.Keywords, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *profileRepository) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY id`
	return r.querySkills(ctx, query, userID)
}

func (r *profileRepository) ListSkillsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 AND id = ANY($2) ORDER BY id`
	return r.querySkills(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateSkill(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (user_id, name, category, experience_level, years_of_experience, details, keywords, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		s.UserID, s.Name, s.Category, s.ExperienceLevel, s.YearsExperience, s.Details, s.Keywords,
	).Scan(&s.ID)
}

func (r *profileRepository) UpdateSkill(ctx context.Context, s *domain.Skill) error {
	query := `
		UPDATE skills SET
			name = $1, category = $2, experience_level = $3, years_of_experience = $4,
			details = $5, keywords = $6, updated_at = NOW()
		WHERE user_id = $7 AND id = $8`
	tag, err := r.db.Exec(ctx, query,
		s.Name, s.Category, s.ExperienceLevel, s.YearsExperience,
		s.Details, s.Keywords, s.UserID, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteSkill(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "skills", userID, id)
}

// =================================================================================================
// Work experiences
// =================================================================================================

const workExperienceColumns = `
	id, user_id, company, job_title, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), is_current,
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(country, ''),
	COALESCE(description, ''), COALESCE(responsibilities, ''), COALESCE(achievements, ''),
	created_at, updated_at`

func (r *profileRepository) queryWorkExperiences(ctx context.Context, query string, args ...any) ([]domain.WorkExperience, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.WorkExperience{}
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Company, &w.JobTitle, &w.StartDate, &w.EndDate, &w.IsCurrent,
			&w.City, &w.State, &w.Country,
			&w.Description, &w.Responsibilities, &w.Achievements,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, w)
	}
	return experiences, rows.Err()
}

func (r *profileRepository) ListWorkExperiences(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences WHERE user_id = $1 ORDER BY start_date DESC, id`
	return r.queryWorkExperiences(ctx, query, userID)
}

func (r *profileRepository) ListWorkExperiencesByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences WHERE user_id = $1 AND id = ANY($2) ORDER BY start_date DESC, id`
	return r.queryWorkExperiences(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (user_id, company, job_title, start_date, end_date, is_current,
			city, state, country, description, responsibilities, achievements, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		w.UserID, w.Company, w.JobTitle, w.StartDate, w.EndDate, w.IsCurrent,
		w.City, w.State, w.Country, w.Description, w.Responsibilities, w.Achievements,
	).Scan(&w.ID)
}

func (r *profileRepository) UpdateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	query := `
		UPDATE work_experiences SET
			company = $1, job_title = $2, start_date = $3, end_date = $4, is_current = $5,
			city = $6, state = $7, country = $8,
			description = $9, responsibilities = $10, achievements = $11, updated_at = NOW()
		WHERE user_id = $12 AND id = $13`
	tag, err := r.db.Exec(ctx, query,
		w.Company, w.JobTitle, w.StartDate, w.EndDate, w.IsCurrent,
		w.City, w.State, w.Country,
		w.Description, w.Responsibilities, w.Achievements, w.UserID, w.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteWorkExperience(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "work_experiences", userID, id)
}

// =================================================================================================
// Educations
// =================================================================================================

const educationColumns = `
	id, user_id, institution, degree, field_of_study, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), is_current,
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(country, ''),
	COALESCE(gpa, ''), COALESCE(achievements, ''), COALESCE(activities, ''),
	created_at, updated_at`

func (r *profileRepository) queryEducations(ctx context.Context, query string, args ...any) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	educations := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.IsCurrent,
			&e.City, &e.State, &e.Country,
			&e.GPA, &e.Achievements, &e.Activities,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		educations = append(educations, e)
	}
	return educations, rows.Err()
}

func (r *profileRepository) ListEducations(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE user_id = $1 ORDER BY start_date DESC, id`
	return r.queryEducations(ctx, query, userID)
}

func (r *profileRepository) ListEducationsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE user_id = $1 AND id = ANY($2) ORDER BY start_date DESC, id`
	return r.queryEducations(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateEducation(ctx context.Context, e *domain.Education) error {
	query := `
		INSERT INTO educations (user_id, institution, degree, field_of_study, start_date, end_date, is_current,
			city, state, country, gpa, achievements, activities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.IsCurrent,
		e.City, e.State, e.Country, e.GPA, e.Achievements, e.Activities,
	).Scan(&e.ID)
}

func (r *profileRepository) UpdateEducation(ctx context.Context, e *domain.Education) error {
	query := `
		UPDATE educations SET
			institution = $1, degree = $2, field_of_study = $3, start_date = $4, end_date = $5, is_current = $6,
			city = $7, state = $8, country = $9,
			gpa = $10, achievements = $11, activities = $12, updated_at = NOW()
		WHERE user_id = $13 AND id = $14`
	tag, err := r.db.Exec(ctx, query,
		e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.IsCurrent,
		e.City, e.State, e.Country,
		e.GPA, e.Achievements, e.Activities, e.UserID, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "educations", userID, id)
}

// =================================================================================================
// Certifications
// =================================================================================================

const certificationColumns = `
	id, user_id, name, issuing_organization, to_char(issue_date, 'YYYY-MM-DD'), to_char(expiration_date, 'YYYY-MM-DD'),
	COALESCE(credential_id, ''), COALESCE(credential_url, ''), created_at, updated_at`

func (r *profileRepository) queryCertifications(ctx context.Context, query string, args ...any) ([]domain.Certification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certifications := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization, &c.IssueDate, &c.ExpirationDate,
			&c.CredentialID, &c.CredentialURL, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		certifications = append(certifications, c)
	}
	return certifications, rows.Err()
}

func (r *profileRepository) ListCertifications(ctx context.Context, userID int64) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE user_id = $1 ORDER BY issue_date DESC, id`
	return r.queryCertifications(ctx, query, userID)
}

func (r *profileRepository) ListCertificationsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE user_id = $1 AND id = ANY($2) ORDER BY issue_date DESC, id`
	return r.queryCertifications(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateCertification(ctx context.Context, c *domain.Certification) error {
	query := `
		INSERT INTO certifications (user_id, name, issuing_organization, issue_date, expiration_date,
			credential_id, credential_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		c.UserID, c.Name, c.IssuingOrganization, c.IssueDate, c.ExpirationDate,
		c.CredentialID, c.CredentialURL,
	).Scan(&c.ID)
}

func (r *profileRepository) UpdateCertification(ctx context.Context, c *domain.Certification) error {
	query := `
		UPDATE certifications SET
			name = $1, issuing_organization = $2, issue_date = $3, expiration_date = $4,
			credential_id = $5, credential_url = $6, updated_at = NOW()
		WHERE user_id = $7 AND id = $8`
	tag, err := r.db.Exec(ctx, query,
		c.Name, c.IssuingOrganization, c.IssueDate, c.ExpirationDate,
		c.CredentialID, c.CredentialURL, c.UserID, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteCertification(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "certifications", userID, id)
}

// =================================================================================================
// Languages
// =================================================================================================

const languageColumns = `id, user_id, name, proficiency, created_at, updated_at`

func (r *profileRepository) queryLanguages(ctx context.Context, query string, args ...any) ([]domain.Language, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Proficiency, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *profileRepository) ListLanguages(ctx context.Context, userID int64) ([]domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE user_id = $1 ORDER BY id`
	return r.queryLanguages(ctx, query, userID)
}

func (r *profileRepository) ListLanguagesByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE user_id = $1 AND id = ANY($2) ORDER BY id`
	return r.queryLanguages(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateLanguage(ctx context.Context, l *domain.Language) error {
	query := `
		INSERT INTO languages (user_id, name, proficiency, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query, l.UserID, l.Name, l.Proficiency).Scan(&l.ID)
}

func (r *profileRepository) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	query := `
		UPDATE languages SET name = $1, proficiency = $2, updated_at = NOW()
		WHERE user_id = $3 AND id = $4`
	tag, err := r.db.Exec(ctx, query, l.Name, l.Proficiency, l.UserID, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteLanguage(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "languages", userID, id)
}

// =================================================================================================
// Projects
// =================================================================================================

const projectColumns = `
	id, user_id, name, description, COALESCE(url, ''), to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	is_current, COALESCE(technologies, ''), created_at, updated_at`

func (r *profileRepository) queryProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.URL, &p.StartDate, &p.EndDate,
			&p.IsCurrent, &p.Technologies, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *profileRepository) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY id`
	return r.queryProjects(ctx, query, userID)
}

func (r *profileRepository) ListProjectsByIDs(ctx context.Context, userID int64, ids []int64) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 AND id = ANY($2) ORDER BY id`
	return r.queryProjects(ctx, query, userID, pq.Array(ids))
}

func (r *profileRepository) CreateProject(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (user_id, name, description, url, start_date, end_date, is_current, technologies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		p.UserID, p.Name, p.Description, p.URL, p.StartDate, p.EndDate, p.IsCurrent, p.Technologies,
	).Scan(&p.ID)
}

func (r *profileRepository) UpdateProject(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects SET
			name = $1, description = $2, url = $3, start_date = $4, end_date = $5,
			is_current = $6, technologies = $7, updated_at = NOW()
		WHERE user_id = $8 AND id = $9`
	tag, err := r.db.Exec(ctx, query,
		p.Name, p.Description, p.URL, p.StartDate, p.EndDate,
		p.IsCurrent, p.Technologies, p.UserID, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteProject(ctx context.Context, userID, id int64) error {
	return deleteScoped(ctx, r.db, "projects", userID, id)
}
