package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-tailoresume-backend/internal/domain"
)

// System directives. The generation directive is the anti-fabrication
// contract: the model may only restate facts present in the supplied
// databank and must report gaps instead of filling them.
const (
	extractSystemPrompt = `You are a recruiting analyst. You extract structured ` +
		`requirements from job descriptions. Respond only with the requested JSON ` +
		`structure, without any additional text or explanations.`

	generateSystemPrompt = `You are a resume writing assistant operating under a ` +
		`strict no-fabrication contract. You may only use facts present in the ` +
		`candidate databank provided in the request. Never invent skills, ` +
		`employers, titles, dates, certifications, or accomplishments. When the ` +
		`job requires something the databank does not contain, list it under ` +
		`"gaps" in the utilization report instead of writing about it. Every ` +
		`experience entry must copy its company and title verbatim from the ` +
		`databank. Respond only with the requested JSON structure.`
)

func buildExtractPrompt(jobDescription string) string {
	var b strings.Builder
	b.WriteString("Analyze the following job description and extract key information.\n")
	b.WriteString("Focus on required skills, experience levels, education requirements, and job responsibilities.\n\n")
	b.WriteString("Job Description:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\nReturn the extraction as JSON with fields: job_title, required_skills, ")
	b.WriteString("preferred_skills, experience_level, education_requirements, key_responsibilities, industry, keywords.")
	return b.String()
}

func buildGenerationPrompt(gc GenerationContext) string {
	var b strings.Builder
	b.WriteString("Write ATS-optimized resume content for the job below using only the candidate databank.\n\n")

	b.WriteString("=== CANDIDATE DATABANK (the only permitted source of facts) ===\n")
	b.WriteString(serializeDatabank(gc.Databank))

	b.WriteString("\n=== JOB REQUIREMENTS ===\n")
	writeJSONBlock(&b, gc.Requirements)

	b.WriteString("\n=== DATABANK COVERAGE REPORT ===\n")
	writeJSONBlock(&b, gc.Coverage)

	if gc.MaximizeUtilization {
		b.WriteString("\nMaximize databank utilization: work every relevant databank record into the content.\n")
	}

	b.WriteString("\nProduce the resume sections and a utilization report. ")
	b.WriteString("List every requirement the databank cannot support under utilization_report.gaps. ")
	b.WriteString("Do not add anything that is not in the databank.")
	return b.String()
}

// serializeDatabank renders the snapshot as structured text so the model sees
// each record as a discrete, citable fact.
func serializeDatabank(d *domain.Databank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate: %s (%s)\n", d.User.FullName, d.User.Email)
	if d.User.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", d.User.Summary)
	}

	b.WriteString("\nSkills:\n")
	for _, s := range d.Skills {
		years := "unspecified years"
		if s.YearsExperience != nil {
			years = fmt.Sprintf("%d years", *s.YearsExperience)
		}
		fmt.Fprintf(&b, "- %s (category: %s, level: %s, %s)", s.Name, s.Category, s.ExperienceLevel, years)
		if s.Details != "" {
			fmt.Fprintf(&b, ", details: %s", s.Details)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nWork Experience:\n")
	for _, w := range d.WorkExperiences {
		end := "present"
		if !w.IsCurrent && w.EndDate != nil {
			end = *w.EndDate
		}
		fmt.Fprintf(&b, "- %s at %s (%s to %s)\n", w.JobTitle, w.Company, w.StartDate, end)
		if w.Description != "" {
			fmt.Fprintf(&b, "  description: %s\n", w.Description)
		}
		for _, r := range domain.ParseFlexibleText(w.Responsibilities) {
			fmt.Fprintf(&b, "  responsibility: %s\n", r)
		}
		for _, a := range domain.ParseFlexibleText(w.Achievements) {
			fmt.Fprintf(&b, "  achievement: %s\n", a)
		}
	}

	b.WriteString("\nEducation:\n")
	for _, e := range d.Educations {
		end := "present"
		if !e.IsCurrent && e.EndDate != nil {
			end = *e.EndDate
		}
		fmt.Fprintf(&b, "- %s in %s, %s (%s to %s)\n", e.Degree, e.FieldOfStudy, e.Institution, e.StartDate, end)
	}

	b.WriteString("\nCertifications:\n")
	for _, c := range d.Certifications {
		fmt.Fprintf(&b, "- %s, issued by %s on %s\n", c.Name, c.IssuingOrganization, c.IssueDate)
	}

	b.WriteString("\nLanguages:\n")
	for _, l := range d.Languages {
		fmt.Fprintf(&b, "- %s (%s)\n", l.Name, l.Proficiency)
	}

	b.WriteString("\nProjects:\n")
	for _, p := range d.Projects {
		fmt.Fprintf(&b, "- %s: %s", p.Name, p.Description)
		if techs := domain.ParseFlexibleKeywords(p.Technologies); len(techs) > 0 {
			fmt.Fprintf(&b, " (technologies: %s)", strings.Join(techs, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeJSONBlock(b *strings.Builder, v any) {
	enc, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b.WriteString("{}\n")
		return
	}
	b.Write(enc)
	b.WriteString("\n")
}
