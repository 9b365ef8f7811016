package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"go-tailoresume-backend/internal/domain"
)

// The coverage validator is the anti-fabrication control point. Matching is
// purely deterministic string work against the databank snapshot; nothing in
// this file calls the AI collaborator or invents requirement names. Missing
// lists only ever contain strings copied verbatim from the job's own
// requirement lists.

// BuildCoverageReport measures how much of the extracted job requirements the
// databank actually covers.
func BuildCoverageReport(d *domain.Databank, req *domain.JobRequirements, now time.Time) *domain.CoverageReport {
	report := &domain.CoverageReport{}

	skillTerms := databankSkillTerms(d)
	allSkillReqs := append(append([]string{}, req.RequiredSkills...), req.PreferredSkills...)

	var missingSkills []string
	covered := 0
	for _, r := range allSkillReqs {
		if matchesAnyTerm(r, skillTerms) {
			covered++
		} else {
			missingSkills = append(missingSkills, r)
		}
	}
	report.Skills = domain.CategoryCoverage{
		Required:   len(allSkillReqs),
		Covered:    covered,
		Percentage: coveragePercentage(covered, len(allSkillReqs)),
		Missing:    missingSkills,
	}

	requiredYears := RequiredYears(req.ExperienceLevel)
	totalYears := TotalExperienceYears(d.WorkExperiences, now)
	expCovered := min(totalYears, requiredYears)
	report.Experience = domain.CategoryCoverage{
		Required:   requiredYears,
		Covered:    expCovered,
		Percentage: coveragePercentage(expCovered, requiredYears),
	}
	if totalYears < requiredYears && req.ExperienceLevel != "" {
		report.Experience.Missing = []string{req.ExperienceLevel}
	}

	var missingEdu []string
	eduCovered := 0
	for _, r := range req.EducationRequirements {
		if educationSatisfies(d.Educations, r) {
			eduCovered++
		} else {
			missingEdu = append(missingEdu, r)
		}
	}
	report.Education = domain.CategoryCoverage{
		Required:   len(req.EducationRequirements),
		Covered:    eduCovered,
		Percentage: coveragePercentage(eduCovered, len(req.EducationRequirements)),
		Missing:    missingEdu,
	}

	certReqs := certificationRequirements(req)
	var missingCerts []string
	certCovered := 0
	for _, r := range certReqs {
		if certificationSatisfies(d.Certifications, r) {
			certCovered++
		} else {
			missingCerts = append(missingCerts, r)
		}
	}
	report.Certifications = domain.CategoryCoverage{
		Required:   len(certReqs),
		Covered:    certCovered,
		Percentage: coveragePercentage(certCovered, len(certReqs)),
		Missing:    missingCerts,
	}

	report.CriticalGaps = criticalGaps(req, report, totalYears, requiredYears)
	report.TransferableSkills = transferableSkills(d.Skills, missingSkills)
	report.DatabankUtilizationPercentage = databankUtilization(d, req)

	return report
}

// ZeroCoverageReport is the fail-closed result when requirement extraction
// returns garbage: nothing is claimed covered, and the reason is explicit.
func ZeroCoverageReport(reason string) *domain.CoverageReport {
	empty := domain.CategoryCoverage{Percentage: 0}
	return &domain.CoverageReport{
		Skills:         empty,
		Experience:     empty,
		Education:      empty,
		Certifications: empty,
		CriticalGaps:   []string{reason},
	}
}

// TotalExperienceYears sums whole years elapsed per entry, end date (or now
// for current positions) minus start date. Unparseable dates contribute zero.
func TotalExperienceYears(experiences []domain.WorkExperience, now time.Time) int {
	total := 0
	for _, w := range experiences {
		start, err := time.Parse("2006-01-02", w.StartDate)
		if err != nil {
			continue
		}
		end := now
		if !w.IsCurrent && w.EndDate != nil {
			if parsed, err := time.Parse("2006-01-02", *w.EndDate); err == nil {
				end = parsed
			}
		}
		years := end.Year() - start.Year()
		if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
			years--
		}
		if years > 0 {
			total += years
		}
	}
	return total
}

// RequiredYears derives a year count from the extracted experience level. A
// leading number wins ("5+ years"); otherwise seniority words map to fixed
// baselines and unknown levels require nothing.
func RequiredYears(experienceLevel string) int {
	level := strings.ToLower(strings.TrimSpace(experienceLevel))
	if level == "" {
		return 0
	}

	digits := ""
	for _, r := range level {
		if unicode.IsDigit(r) {
			digits += string(r)
		} else if digits != "" {
			break
		}
	}
	if digits != "" {
		n := 0
		fmt.Sscanf(digits, "%d", &n)
		return n
	}

	switch {
	case strings.Contains(level, "senior") || strings.Contains(level, "lead") || strings.Contains(level, "principal"):
		return 5
	case strings.Contains(level, "mid"):
		return 3
	default:
		return 0
	}
}

func coveragePercentage(covered, required int) float64 {
	if required == 0 {
		return 100
	}
	pct := float64(covered) / float64(required) * 100
	return max(0, min(100, pct))
}

// databankSkillTerms flattens skill names and their keywords into lowercase
// match terms.
func databankSkillTerms(d *domain.Databank) []string {
	var terms []string
	for _, s := range d.Skills {
		terms = append(terms, strings.ToLower(s.Name))
		for _, kw := range domain.SplitKeywords(s.Keywords) {
			terms = append(terms, strings.ToLower(kw))
		}
	}
	return terms
}

func matchesAnyTerm(requirement string, terms []string) bool {
	r := strings.ToLower(strings.TrimSpace(requirement))
	if r == "" {
		return false
	}
	for _, t := range terms {
		if termMatches(t, r) {
			return true
		}
	}
	return false
}

// termMatches accepts exact folds and, for terms long enough to be
// meaningful, containment in either direction ("Go" never matches "Django",
// "postgresql" matches "PostgreSQL 15").
func termMatches(term, requirement string) bool {
	if term == requirement {
		return true
	}
	if len(term) >= 3 && strings.Contains(requirement, term) {
		return true
	}
	if len(requirement) >= 3 && strings.Contains(term, requirement) {
		return true
	}
	return false
}

func educationSatisfies(educations []domain.Education, requirement string) bool {
	r := strings.ToLower(requirement)
	for _, e := range educations {
		degree := strings.ToLower(e.Degree)
		field := strings.ToLower(e.FieldOfStudy)
		if termMatches(degree, r) || termMatches(field, r) {
			return true
		}
	}
	return false
}

// certificationRequirements filters the job's own lists down to entries that
// read like certification demands.
func certificationRequirements(req *domain.JobRequirements) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range [][]string{req.RequiredSkills, req.PreferredSkills, req.Keywords, req.EducationRequirements} {
		for _, r := range list {
			lower := strings.ToLower(r)
			if seen[lower] {
				continue
			}
			if strings.Contains(lower, "certif") {
				seen[lower] = true
				out = append(out, r)
			}
		}
	}
	return out
}

func certificationSatisfies(certs []domain.Certification, requirement string) bool {
	r := strings.ToLower(requirement)
	for _, c := range certs {
		if termMatches(strings.ToLower(c.Name), r) {
			return true
		}
	}
	return false
}

func criticalGaps(req *domain.JobRequirements, report *domain.CoverageReport, totalYears, requiredYears int) []string {
	var gaps []string

	requiredSet := make(map[string]bool, len(req.RequiredSkills))
	for _, r := range req.RequiredSkills {
		requiredSet[strings.ToLower(r)] = true
	}
	for _, missing := range report.Skills.Missing {
		if requiredSet[strings.ToLower(missing)] {
			gaps = append(gaps, "Missing required skill: "+missing)
		}
	}
	if totalYears < requiredYears {
		gaps = append(gaps, fmt.Sprintf("Experience shortfall: %d of %d required years documented", totalYears, requiredYears))
	}
	for _, missing := range report.Education.Missing {
		gaps = append(gaps, "Missing education requirement: "+missing)
	}
	for _, missing := range report.Certifications.Missing {
		gaps = append(gaps, "Missing certification: "+missing)
	}
	return gaps
}

// transferableSkills maps each missing requirement to at most one databank
// skill sharing a keyword token with it. Both sides of every mapping
// literally exist in their source lists.
func transferableSkills(skills []domain.Skill, missing []string) []domain.TransferableSkill {
	var out []domain.TransferableSkill
	for _, m := range missing {
		reqTokens := matchTokens(m)
		if len(reqTokens) == 0 {
			continue
		}
	skillLoop:
		for _, s := range skills {
			skillTokens := matchTokens(s.Name + " " + s.Keywords)
			for tok := range reqTokens {
				if skillTokens[tok] {
					out = append(out, domain.TransferableSkill{
						DatabankSkill: s.Name,
						Requirement:   m,
						Reason:        fmt.Sprintf("Shares %q with an existing skill", tok),
					})
					break skillLoop
				}
			}
		}
	}
	return out
}

// matchTokens lowercases and tokenizes, keeping only tokens long enough to
// carry meaning.
func matchTokens(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) >= 3 {
			tokens[tok] = true
		}
	}
	return tokens
}

// databankUtilization reports the share of databank records matched by at
// least one requirement string, in [0,100].
func databankUtilization(d *domain.Databank, req *domain.JobRequirements) float64 {
	total := d.TotalRecords()
	if total == 0 {
		return 0
	}

	var allReqs []string
	for _, list := range [][]string{req.RequiredSkills, req.PreferredSkills, req.EducationRequirements, req.KeyResponsibilities, req.Keywords} {
		allReqs = append(allReqs, list...)
	}

	used := 0
	countIfMatched := func(text string) {
		lower := strings.ToLower(text)
		for _, r := range allReqs {
			if termMatches(strings.ToLower(r), lower) {
				used++
				return
			}
		}
	}

	for _, s := range d.Skills {
		countIfMatched(s.Name + " " + s.Keywords)
	}
	for _, w := range d.WorkExperiences {
		countIfMatched(w.JobTitle + " " + w.Description + " " + w.Responsibilities + " " + w.Achievements)
	}
	for _, e := range d.Educations {
		countIfMatched(e.Degree + " " + e.FieldOfStudy)
	}
	for _, c := range d.Certifications {
		countIfMatched(c.Name)
	}
	for _, l := range d.Languages {
		countIfMatched(l.Name)
	}
	for _, p := range d.Projects {
		countIfMatched(p.Name + " " + p.Description + " " + p.Technologies)
	}

	return max(0, min(100, float64(used)/float64(total)*100))
}
