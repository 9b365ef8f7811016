package domain

import "context"

// JobRequirements is the fixed-shape output of the job requirement extractor.
// Responses that do not fill this shape are treated as malformed; the core
// never guesses missing fields.
type JobRequirements struct {
	JobTitle              string   `json:"job_title"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	ExperienceLevel       string   `json:"experience_level"`
	EducationRequirements []string `json:"education_requirements"`
	KeyResponsibilities   []string `json:"key_responsibilities"`
	Industry              string   `json:"industry"`
	Keywords              []string `json:"keywords"`
}

// CategoryCoverage records how much of one requirement category the databank
// actually covers. Missing lists only ever contain items copied verbatim from
// the job's own requirement lists.
type CategoryCoverage struct {
	Required   int      `json:"required"`
	Covered    int      `json:"covered"`
	Percentage float64  `json:"percentage"`
	Missing    []string `json:"missing"`
}

// TransferableSkill maps an existing databank skill to a requirement it may
// partially satisfy. Both sides must literally exist in their source lists.
type TransferableSkill struct {
	DatabankSkill string `json:"databank_skill"`
	Requirement   string `json:"requirement"`
	Reason        string `json:"reason"`
}

// CoverageReport is the anti-fabrication control point: a deterministic
// summary of what the databank contains relative to the job requirements.
type CoverageReport struct {
	Skills         CategoryCoverage `json:"skills"`
	Experience     CategoryCoverage `json:"experience"`
	Education      CategoryCoverage `json:"education"`
	Certifications CategoryCoverage `json:"certifications"`

	CriticalGaps       []string            `json:"critical_gaps"`
	TransferableSkills []TransferableSkill `json:"transferable_skills"`

	// Share of databank records matched by at least one requirement, in [0,100].
	// Distinct from per-category coverage, which measures the job side.
	DatabankUtilizationPercentage float64 `json:"databank_utilization_percentage"`
}

// Gap recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// GapRecommendation suggests a concrete databank addition to the user. It
// never directs the generator to invent content.
type GapRecommendation struct {
	Category   string `json:"category"`
	ItemType   string `json:"item_type"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
	Reasoning  string `json:"reasoning"`
}

// GeneratedSkill is one skill line in the constrained generation output.
type GeneratedSkill struct {
	Name      string `json:"name"`
	Highlight string `json:"highlight"`
}

// GeneratedExperience is one employment entry in the constrained generation
// output. Company and Title must match a databank record exactly; untraceable
// entries are stripped before the result leaves the core.
type GeneratedExperience struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type GeneratedEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Detail      string `json:"detail"`
}

// UtilizationReport audits how much of the databank the generated content
// used, and records every gap and traceability violation explicitly.
type UtilizationReport struct {
	DatabankItemsTotal    int      `json:"databank_items_total"`
	DatabankItemsUsed     int      `json:"databank_items_used"`
	UtilizationPercentage float64  `json:"utilization_percentage"`
	UnusedItems           []string `json:"unused_items"`
	Gaps                  []string `json:"gaps"`
	RemovedUntraceable    []string `json:"removed_untraceable"`
}

// GeneratedResume is the fixed section schema of the constrained content
// generator. Malformed collaborator output degrades to an empty result with
// an explicit gap note, never to partial content.
type GeneratedResume struct {
	ProfessionalSummary   string                `json:"professional_summary"`
	SkillsSection         []GeneratedSkill      `json:"skills_section"`
	ExperienceSection     []GeneratedExperience `json:"experience_section"`
	EducationSection      []GeneratedEducation  `json:"education_section"`
	CertificationsSection []string              `json:"certifications_section"`
	UtilizationReport     UtilizationReport     `json:"utilization_report"`
}

// AnalysisUsecase is the AI-assisted pipeline: requirement extraction,
// coverage validation, gap recommendation, and constrained generation.
type AnalysisUsecase interface {
	AnalyzeJob(ctx context.Context, jobDescription string) (*JobRequirements, error)
	ValidateDatabankCoverage(ctx context.Context, jobDescription string) (*CoverageReport, *JobRequirements, error)
	SuggestDatabankEnhancements(ctx context.Context, jobDescription string) ([]GapRecommendation, error)
	GenerateConstrainedResume(ctx context.Context, jobDescription string, maximizeUtilization bool) (*GeneratedResume, error)
}
