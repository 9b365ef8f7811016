package usecase

import (
	"encoding/json"
	"fmt"

	"go-tailoresume-backend/internal/domain"
)

// The scorer is intentionally dumb: a fixed deduction table over structural
// presence, so the same schema always scores the same. Keyword matching
// against the job description is a future hook and must never change the
// numeric contract.

// CalculateATSScore scores a freshly compiled schema. Returns the clamped
// score and feedback lines in deduction order. A clean schema gets exactly
// one positive line.
func CalculateATSScore(schema domain.ResumeSchema, jobDescription string) (int, []string) {
	score := 100
	var feedback []string

	deduct := func(points int, message string) {
		score -= points
		feedback = append(feedback, message)
	}

	if schema.Context == "" {
		deduct(10, "Missing schema context")
	}
	if schema.Type == "" {
		deduct(10, "Missing schema type")
	}
	if schema.Person.Name == "" {
		deduct(15, "Missing person name")
	}
	if schema.Person.Email == "" {
		deduct(10, "Missing email contact")
	}
	if schema.Person.Telephone == "" {
		deduct(5, "Missing phone contact")
	}
	if len(schema.Person.SameAs) == 0 {
		deduct(5, "No professional profiles linked (LinkedIn, GitHub, etc.)")
	}
	if schema.Description == "" {
		deduct(5, "No professional summary included")
	}
	if len(schema.Skills) == 0 {
		deduct(15, "No skills listed")
	}
	if len(schema.WorkExperience) == 0 {
		deduct(15, "No work experience listed")
	}
	if len(schema.Education) == 0 {
		deduct(10, "No education history listed")
	}

	for i, exp := range schema.WorkExperience {
		if exp.StartDate == "" {
			deduct(2, fmt.Sprintf("Add startDate to work experience #%d", i+1))
		}
		if exp.EndDate == "" {
			deduct(2, fmt.Sprintf("Add endDate to work experience #%d", i+1))
		}
		if exp.Description == "" {
			deduct(2, fmt.Sprintf("Add description to work experience #%d", i+1))
		}
		if len(exp.Responsibilities) == 0 {
			deduct(2, fmt.Sprintf("Add responsibilities to work experience #%d", i+1))
		}
	}
	for i, edu := range schema.Education {
		if edu.StartDate == "" {
			deduct(2, fmt.Sprintf("Add startDate to education #%d", i+1))
		}
		if edu.EndDate == "" {
			deduct(2, fmt.Sprintf("Add endDate to education #%d", i+1))
		}
		if edu.CredentialCategory == "" {
			deduct(2, fmt.Sprintf("Add credentialCategory to education #%d", i+1))
		}
	}

	score = max(0, min(100, score))

	if len(feedback) == 0 {
		feedback = append(feedback, "Great job! Your resume has excellent ATS compatibility.")
	}

	return score, feedback
}

// ValidateStoredSchema re-validates a persisted schema string. Unparseable
// JSON is a hard failure: zero score, one critical issue, no recommendations.
func ValidateStoredSchema(schemaJSON string) (int, []string, []string) {
	var schema domain.ResumeSchema
	if err := json.Unmarshal([]byte(schemaJSON), &schema); err != nil {
		return 0, []string{"Invalid JSON-LD schema"}, nil
	}

	score := 100
	var critical, recommendations []string

	type check struct {
		missing bool
		points  int
		message string
	}
	essentials := []check{
		{schema.Context == "", 10, "Missing essential property: @context"},
		{schema.Type == "", 10, "Missing essential property: @type"},
		{schema.Identifier == "", 10, "Missing essential property: identifier"},
		{schema.Name == "", 10, "Missing essential property: name"},
		{schema.Person.Name == "", 15, "Missing essential person property: name"},
		{schema.Person.Email == "", 15, "Missing essential person property: email"},
		{len(schema.Skills) == 0, 15, "Missing or empty skills section"},
		{len(schema.WorkExperience) == 0, 15, "Missing or empty workExperience section"},
		{len(schema.Education) == 0, 15, "Missing or empty education section"},
	}
	for _, c := range essentials {
		if c.missing {
			score -= c.points
			critical = append(critical, c.message)
		}
	}

	recommended := []check{
		{schema.Person.Telephone == "", 5, "Add telephone to improve ATS compatibility"},
		{schema.Person.Address == nil, 5, "Add address to improve ATS compatibility"},
		{schema.Person.URL == "", 5, "Add url to improve ATS compatibility"},
	}
	for _, c := range recommended {
		if c.missing {
			score -= c.points
			recommendations = append(recommendations, c.message)
		}
	}

	for i, exp := range schema.WorkExperience {
		entry := []check{
			{exp.StartDate == "", 2, fmt.Sprintf("Add startDate to work experience #%d", i+1)},
			{exp.EndDate == "", 2, fmt.Sprintf("Add endDate to work experience #%d", i+1)},
			{exp.Description == "", 2, fmt.Sprintf("Add description to work experience #%d", i+1)},
			{len(exp.Responsibilities) == 0, 2, fmt.Sprintf("Add responsibilities to work experience #%d", i+1)},
		}
		for _, c := range entry {
			if c.missing {
				score -= c.points
				recommendations = append(recommendations, c.message)
			}
		}
	}
	for i, edu := range schema.Education {
		entry := []check{
			{edu.StartDate == "", 2, fmt.Sprintf("Add startDate to education #%d", i+1)},
			{edu.EndDate == "", 2, fmt.Sprintf("Add endDate to education #%d", i+1)},
			{edu.CredentialCategory == "", 2, fmt.Sprintf("Add credentialCategory to education #%d", i+1)},
		}
		for _, c := range entry {
			if c.missing {
				score -= c.points
				recommendations = append(recommendations, c.message)
			}
		}
	}

	return max(0, min(100, score)), critical, recommendations
}

// ImprovementSteps folds validation output into one ordered action list:
// critical issues first, then recommendations, then a score-band summary.
func ImprovementSteps(score int, critical, recommendations []string) []string {
	steps := make([]string, 0, len(critical)+len(recommendations)+1)
	for _, issue := range critical {
		steps = append(steps, "CRITICAL: "+issue)
	}
	for _, rec := range recommendations {
		steps = append(steps, "RECOMMENDED: "+rec)
	}

	switch {
	case score < 50:
		steps = append(steps, "Your resume needs significant improvements for ATS compatibility")
	case score < 75:
		steps = append(steps, "Your resume meets basic ATS requirements but could be improved")
	default:
		steps = append(steps, "Your resume has good ATS compatibility")
	}
	return steps
}
