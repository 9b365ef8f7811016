package domain

// ResumeSchema is the compiled document graph, a schema.org-flavored JSON-LD
// object. Struct field order fixes the serialized key order, so compiling the
// same inputs twice produces byte-identical JSON (modulo dateModified).
// Section slices are nil (key omitted) unless the section is both enabled and
// non-empty; scorers must treat "absent" and "empty" identically.
type ResumeSchema struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	Identifier   string `json:"identifier"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
	Name         string `json:"name"`

	Person      SchemaPerson `json:"person"`
	Description string       `json:"description,omitempty"`

	Skills         []SchemaSkill         `json:"skills,omitempty"`
	WorkExperience []SchemaRole          `json:"workExperience,omitempty"`
	Education      []SchemaCredential    `json:"education,omitempty"`
	Projects       []SchemaProject       `json:"projects,omitempty"`
	Certifications []SchemaCertification `json:"certifications,omitempty"`
	KnowsLanguage  []SchemaLanguage      `json:"knowsLanguage,omitempty"`
}

type SchemaPerson struct {
	Type      string               `json:"@type"`
	Name      string               `json:"name,omitempty"`
	Email     string               `json:"email,omitempty"`
	Telephone string               `json:"telephone,omitempty"`
	URL       string               `json:"url,omitempty"`
	Address   *SchemaPostalAddress `json:"address,omitempty"`
	SameAs    []SchemaProfilePage  `json:"sameAs,omitempty"`
}

type SchemaPostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
}

type SchemaProfilePage struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type SchemaSkill struct {
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	TermCode        string       `json:"termCode,omitempty"`
	CompetencyLevel string       `json:"competencyLevel,omitempty"`
	ExperienceYears *int         `json:"experienceYears,omitempty"`
	Keywords        FlexibleList `json:"keywords,omitempty"`
}

type SchemaOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type SchemaPlace struct {
	Type    string              `json:"@type"`
	Address SchemaPostalAddress `json:"address"`
}

type SchemaRole struct {
	Type             string             `json:"@type"`
	Name             string             `json:"name"`
	StartDate        string             `json:"startDate,omitempty"`
	EndDate          string             `json:"endDate,omitempty"`
	MemberOf         SchemaOrganization `json:"memberOf"`
	Location         *SchemaPlace       `json:"location,omitempty"`
	Description      string             `json:"description,omitempty"`
	Responsibilities FlexibleList       `json:"responsibilities,omitempty"`
	Achievements     FlexibleList       `json:"achievements,omitempty"`
}

type SchemaCredential struct {
	Type               string             `json:"@type"`
	Name               string             `json:"name"`
	CredentialCategory string             `json:"credentialCategory,omitempty"`
	StartDate          string             `json:"startDate,omitempty"`
	EndDate            string             `json:"endDate,omitempty"`
	Institution        SchemaOrganization `json:"educationalInstitution"`
	Location           *SchemaPlace       `json:"location,omitempty"`
	GPA                string             `json:"gpa,omitempty"`
	Achievements       FlexibleList       `json:"achievements,omitempty"`
	Activities         FlexibleList       `json:"activities,omitempty"`
}

type SchemaProject struct {
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
	Keywords    FlexibleList `json:"keywords,omitempty"`
}

type SchemaCertification struct {
	Type               string             `json:"@type"`
	Name               string             `json:"name"`
	CredentialCategory string             `json:"credentialCategory"`
	ValidFrom          string             `json:"validFrom,omitempty"`
	ValidUntil         string             `json:"validUntil,omitempty"`
	Institution        SchemaOrganization `json:"educationalInstitution"`
	CredentialID       string             `json:"credentialId,omitempty"`
	URL                string             `json:"url,omitempty"`
}

type SchemaLanguage struct {
	Type             string `json:"@type"`
	Name             string `json:"name"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}
