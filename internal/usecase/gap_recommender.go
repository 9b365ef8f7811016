package usecase

import (
	"fmt"
	"strings"

	"go-tailoresume-backend/internal/domain"
)

// The recommender turns coverage gaps into concrete databank additions the
// user could document today. It suggests recording real items, never
// inventing experience, and its output is deterministic given the report.

// RecommendDatabankEnhancements orders suggestions high, then medium, then
// low, with a stable category order inside each tier.
func RecommendDatabankEnhancements(report *domain.CoverageReport, req *domain.JobRequirements) []domain.GapRecommendation {
	var high, medium, low []domain.GapRecommendation

	requiredSet := make(map[string]bool, len(req.RequiredSkills))
	for _, r := range req.RequiredSkills {
		requiredSet[strings.ToLower(r)] = true
	}

	for _, missing := range report.Skills.Missing {
		rec := domain.GapRecommendation{
			Category:   "skills",
			ItemType:   "skill",
			Suggestion: fmt.Sprintf("Document your experience with %s as a skill", missing),
		}
		if requiredSet[strings.ToLower(missing)] {
			rec.Priority = domain.PriorityHigh
			rec.Reasoning = fmt.Sprintf("%s is listed as a required skill for this position", missing)
			high = append(high, rec)
		} else {
			rec.Priority = domain.PriorityMedium
			rec.Reasoning = fmt.Sprintf("%s is listed as a preferred skill for this position", missing)
			medium = append(medium, rec)
		}
	}

	for _, missing := range report.Experience.Missing {
		high = append(high, domain.GapRecommendation{
			Category:   "experience",
			ItemType:   "work_experience",
			Suggestion: "Document additional past positions to close the experience gap",
			Priority:   domain.PriorityHigh,
			Reasoning:  fmt.Sprintf("The position asks for %q and the recorded history falls short", missing),
		})
	}

	for _, missing := range report.Education.Missing {
		high = append(high, domain.GapRecommendation{
			Category:   "education",
			ItemType:   "education",
			Suggestion: fmt.Sprintf("Add any credential matching %q to your education records", missing),
			Priority:   domain.PriorityHigh,
			Reasoning:  fmt.Sprintf("%s is listed among the education requirements", missing),
		})
	}

	for _, missing := range report.Certifications.Missing {
		high = append(high, domain.GapRecommendation{
			Category:   "certifications",
			ItemType:   "certification",
			Suggestion: fmt.Sprintf("Document the %s certification if you hold it, or consider earning it", missing),
			Priority:   domain.PriorityHigh,
			Reasoning:  fmt.Sprintf("%s is called out in the job requirements", missing),
		})
	}

	for _, t := range report.TransferableSkills {
		low = append(low, domain.GapRecommendation{
			Category:   "skills",
			ItemType:   "keyword",
			Suggestion: fmt.Sprintf("Add %q to the keywords of your %s skill", t.Requirement, t.DatabankSkill),
			Priority:   domain.PriorityLow,
			Reasoning:  t.Reason,
		})
	}

	out := make([]domain.GapRecommendation, 0, len(high)+len(medium)+len(low))
	out = append(out, high...)
	out = append(out, medium...)
	out = append(out, low...)
	return out
}
