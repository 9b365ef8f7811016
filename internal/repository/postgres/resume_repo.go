package postgres

import (
	"context"
	"errors"

	"go-tailoresume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type resumeRepository struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepository{db: db}
}

const resumeColumns = `
	id, user_id, title, identifier,
	COALESCE(job_description, ''), COALESCE(job_title, ''), COALESCE(company_name, ''),
	format, COALESCE(content, ''), COALESCE(schema_jsonld, ''),
	ats_score, COALESCE(ats_feedback, ''),
	include_summary, include_skills, include_experience, include_education,
	include_projects, include_certifications, include_languages,
	selected_skill_ids, selected_experience_ids, selected_education_ids,
	selected_project_ids, selected_certification_ids, selected_language_ids,
	created_at, last_modified`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	var skillIDs, experienceIDs, educationIDs, projectIDs, certificationIDs, languageIDs []int64

	err := row.Scan(
		&res.ID, &res.UserID, &res.Title, &res.Identifier,
		&res.JobDescription, &res.JobTitle, &res.CompanyName,
		&res.Format, &res.Content, &res.SchemaJSON,
		&res.ATSScore, &res.ATSFeedback,
		&res.Config.IncludeSummary, &res.Config.IncludeSkills, &res.Config.IncludeExperience, &res.Config.IncludeEducation,
		&res.Config.IncludeProjects, &res.Config.IncludeCertifications, &res.Config.IncludeLanguages,
		pq.Array(&skillIDs), pq.Array(&experienceIDs), pq.Array(&educationIDs),
		pq.Array(&projectIDs), pq.Array(&certificationIDs), pq.Array(&languageIDs),
		&res.CreatedAt, &res.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	res.Config.SkillIDs = skillIDs
	res.Config.ExperienceIDs = experienceIDs
	res.Config.EducationIDs = educationIDs
	res.Config.ProjectIDs = projectIDs
	res.Config.CertificationIDs = certificationIDs
	res.Config.LanguageIDs = languageIDs
	return &res, nil
}

func (r *resumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (
			user_id, title, identifier, job_description, job_title, company_name,
			format, content, schema_jsonld, ats_score, ats_feedback,
			include_summary, include_skills, include_experience, include_education,
			include_projects, include_certifications, include_languages,
			selected_skill_ids, selected_experience_ids, selected_education_ids,
			selected_project_ids, selected_certification_ids, selected_language_ids,
			created_at, last_modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26
		) RETURNING id`

	cfg := resume.Config
	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.Title, resume.Identifier, resume.JobDescription, resume.JobTitle, resume.CompanyName,
		resume.Format, resume.Content, resume.SchemaJSON, resume.ATSScore, resume.ATSFeedback,
		cfg.IncludeSummary, cfg.IncludeSkills, cfg.IncludeExperience, cfg.IncludeEducation,
		cfg.IncludeProjects, cfg.IncludeCertifications, cfg.IncludeLanguages,
		pq.Array(cfg.SkillIDs), pq.Array(cfg.ExperienceIDs), pq.Array(cfg.EducationIDs),
		pq.Array(cfg.ProjectIDs), pq.Array(cfg.CertificationIDs), pq.Array(cfg.LanguageIDs),
		resume.CreatedAt, resume.LastModified,
	).Scan(&resume.ID)
}

func (r *resumeRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 AND id = $2`
	return scanResume(r.db.QueryRow(ctx, query, userID, id))
}

func (r *resumeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *res)
	}
	return resumes, rows.Err()
}

func (r *resumeRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
