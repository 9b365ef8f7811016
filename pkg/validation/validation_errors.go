package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// User identity fields
	"Email":      "Email",
	"Username":   "Username",
	"FullName":   "Full Name",
	"Phone":      "Phone Number",
	"Website":    "Website",
	"LinkedIn":   "LinkedIn URL",
	"GitHub":     "GitHub URL",
	"Twitter":    "Twitter URL",
	"City":       "City",
	"State":      "State",
	"Country":    "Country",
	"PostalCode": "Postal Code",
	"Summary":    "Professional Summary",

	// Skill fields
	"Name":            "Name",
	"Category":        "Category",
	"ExperienceLevel": "Experience Level",
	"YearsExperience": "Years of Experience",
	"Details":         "Details",
	"Keywords":        "Keywords",

	// Work experience fields
	"Company":          "Company",
	"JobTitle":         "Job Title",
	"StartDate":        "Start Date",
	"EndDate":          "End Date",
	"IsCurrent":        "Current Position Flag",
	"Description":      "Description",
	"Responsibilities": "Responsibilities",
	"Achievements":     "Achievements",

	// Education fields
	"Institution":  "Institution",
	"Degree":       "Degree",
	"FieldOfStudy": "Field of Study",
	"GPA":          "GPA",
	"Activities":   "Activities",

	// Certification fields
	"IssuingOrganization": "Issuing Organization",
	"IssueDate":           "Issue Date",
	"ExpirationDate":      "Expiration Date",
	"CredentialID":        "Credential ID",
	"CredentialURL":       "Credential URL",

	// Language fields
	"Proficiency": "Proficiency",

	// Project fields
	"URL":          "Project URL",
	"Technologies": "Technologies",

	// Resume fields
	"Title":          "Resume Title",
	"JobDescription": "Job Description",
	"CompanyName":    "Company Name",
	"Format":         "Output Format",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label, ok := FieldLabels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)
	case "excluded_if":
		return fmt.Sprintf("%s must be empty for a current entry", label)
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	case "not_future_date":
		return fmt.Sprintf("%s must not be in the future", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}
