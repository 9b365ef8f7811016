package usecase

import (
	"fmt"
	"time"

	"go-tailoresume-backend/internal/domain"
)

// SchemaInput bundles everything one compilation needs. Record slices arrive
// pre-filtered to the resume's selected ids and carry repository order, so the
// same input always compiles to the same document.
type SchemaInput struct {
	User   domain.User
	Resume *domain.Resume
	Now    time.Time

	Skills          []domain.Skill
	WorkExperiences []domain.WorkExperience
	Educations      []domain.Education
	Projects        []domain.Project
	Certifications  []domain.Certification
	Languages       []domain.Language
}

// CompileResumeSchema builds the schema.org-flavored JSON-LD graph for a
// resume. Pure transform: no I/O, no randomness beyond the supplied clock.
// A section appears only when its include flag is set AND it has records.
func CompileResumeSchema(in SchemaInput) domain.ResumeSchema {
	r := in.Resume
	cfg := r.Config

	schema := domain.ResumeSchema{
		Context:      "https://schema.org/",
		Type:         "Resume",
		Identifier:   r.Identifier,
		DateCreated:  r.CreatedAt.Format(time.RFC3339),
		DateModified: in.Now.Format(time.RFC3339),
		Name:         r.Title,
		Person:       compilePerson(in.User),
	}
	if r.CreatedAt.IsZero() {
		schema.DateCreated = in.Now.Format(time.RFC3339)
	}

	if cfg.IncludeSummary && in.User.Summary != "" {
		schema.Description = in.User.Summary
	}

	if cfg.IncludeSkills && len(in.Skills) > 0 {
		schema.Skills = make([]domain.SchemaSkill, 0, len(in.Skills))
		for _, s := range in.Skills {
			schema.Skills = append(schema.Skills, domain.SchemaSkill{
				Type:            "DefinedTerm",
				Name:            s.Name,
				TermCode:        s.Category,
				CompetencyLevel: s.ExperienceLevel,
				ExperienceYears: s.YearsExperience,
				Keywords:        domain.SplitKeywords(s.Keywords),
			})
		}
	}

	if cfg.IncludeExperience && len(in.WorkExperiences) > 0 {
		schema.WorkExperience = make([]domain.SchemaRole, 0, len(in.WorkExperiences))
		for _, w := range in.WorkExperiences {
			role := domain.SchemaRole{
				Type:      "OrganizationRole",
				Name:      w.JobTitle,
				StartDate: w.StartDate,
				MemberOf: domain.SchemaOrganization{
					Type: "Organization",
					Name: w.Company,
				},
				Location:         compilePlace(w.City, w.State, w.Country),
				Description:      w.Description,
				Responsibilities: domain.ParseFlexibleText(w.Responsibilities),
				Achievements:     domain.ParseFlexibleText(w.Achievements),
			}
			// Current positions never carry an end date, even when one is stored.
			if !w.IsCurrent && w.EndDate != nil {
				role.EndDate = *w.EndDate
			}
			schema.WorkExperience = append(schema.WorkExperience, role)
		}
	}

	if cfg.IncludeEducation && len(in.Educations) > 0 {
		schema.Education = make([]domain.SchemaCredential, 0, len(in.Educations))
		for _, e := range in.Educations {
			cred := domain.SchemaCredential{
				Type:               "EducationalOccupationalCredential",
				Name:               e.Degree,
				CredentialCategory: e.FieldOfStudy,
				StartDate:          e.StartDate,
				Institution: domain.SchemaOrganization{
					Type: "EducationalOrganization",
					Name: e.Institution,
				},
				Location:     compilePlace(e.City, e.State, e.Country),
				GPA:          e.GPA,
				Achievements: domain.ParseFlexibleText(e.Achievements),
				Activities:   domain.ParseFlexibleText(e.Activities),
			}
			if !e.IsCurrent && e.EndDate != nil {
				cred.EndDate = *e.EndDate
			}
			schema.Education = append(schema.Education, cred)
		}
	}

	if cfg.IncludeProjects && len(in.Projects) > 0 {
		schema.Projects = make([]domain.SchemaProject, 0, len(in.Projects))
		for _, p := range in.Projects {
			proj := domain.SchemaProject{
				Type:        "CreativeWork",
				Name:        p.Name,
				Description: p.Description,
				URL:         p.URL,
				Keywords:    domain.ParseFlexibleKeywords(p.Technologies),
			}
			if p.StartDate != nil {
				proj.StartDate = *p.StartDate
			}
			if !p.IsCurrent && p.EndDate != nil {
				proj.EndDate = *p.EndDate
			}
			schema.Projects = append(schema.Projects, proj)
		}
	}

	if cfg.IncludeCertifications && len(in.Certifications) > 0 {
		schema.Certifications = make([]domain.SchemaCertification, 0, len(in.Certifications))
		for _, c := range in.Certifications {
			cert := domain.SchemaCertification{
				Type:               "EducationalOccupationalCredential",
				Name:               c.Name,
				CredentialCategory: "certification",
				ValidFrom:          c.IssueDate,
				Institution: domain.SchemaOrganization{
					Type: "Organization",
					Name: c.IssuingOrganization,
				},
				CredentialID: c.CredentialID,
				URL:          c.CredentialURL,
			}
			if c.ExpirationDate != nil {
				cert.ValidUntil = *c.ExpirationDate
			}
			schema.Certifications = append(schema.Certifications, cert)
		}
	}

	if cfg.IncludeLanguages && len(in.Languages) > 0 {
		schema.KnowsLanguage = make([]domain.SchemaLanguage, 0, len(in.Languages))
		for _, l := range in.Languages {
			schema.KnowsLanguage = append(schema.KnowsLanguage, domain.SchemaLanguage{
				Type:             "Language",
				Name:             l.Name,
				ProficiencyLevel: l.Proficiency,
			})
		}
	}

	return schema
}

func compilePerson(u domain.User) domain.SchemaPerson {
	name := u.FullName
	if name == "" {
		name = u.Username
	}

	person := domain.SchemaPerson{
		Type:      "Person",
		Name:      name,
		Email:     u.Email,
		Telephone: u.Phone,
		URL:       u.Website,
	}

	if u.City != "" || u.State != "" || u.Country != "" || u.PostalCode != "" {
		person.Address = &domain.SchemaPostalAddress{
			Type:            "PostalAddress",
			AddressLocality: u.City,
			AddressRegion:   u.State,
			AddressCountry:  u.Country,
			PostalCode:      u.PostalCode,
		}
	}

	for _, p := range []struct{ name, url string }{
		{"LinkedIn", u.LinkedIn},
		{"GitHub", u.GitHub},
		{"Twitter", u.Twitter},
	} {
		if p.url != "" {
			person.SameAs = append(person.SameAs, domain.SchemaProfilePage{
				Type: "ProfilePage",
				Name: p.name,
				URL:  p.url,
			})
		}
	}

	return person
}

func compilePlace(city, state, country string) *domain.SchemaPlace {
	if city == "" && state == "" && country == "" {
		return nil
	}
	return &domain.SchemaPlace{
		Type: "Place",
		Address: domain.SchemaPostalAddress{
			Type:            "PostalAddress",
			AddressLocality: city,
			AddressRegion:   state,
			AddressCountry:  country,
		},
	}
}

// RenderHTMLWithSchema wraps the serialized JSON-LD in a minimal HTML document
// so downstream parsers find the structured block in a script tag.
func RenderHTMLWithSchema(title, schemaJSON string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script type="application/ld+json">
%s
    </script>
</head>
<body>
    <div class="resume-content">
        <!-- Visual content is rendered by the selected template. -->
    </div>
</body>
</html>`, title, schemaJSON)
}
