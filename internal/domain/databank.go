package domain

import (
	"context"
	"time"
)

// Databank is the aggregate, read-only snapshot of one user's verified career
// records at a point in time. It is rebuilt on every compilation or
// validation request and never cached across requests, so concurrent requests
// never alias each other's state.
type Databank struct {
	User            User             `json:"user"`
	Skills          []Skill          `json:"skills"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Language       `json:"languages"`
	Projects        []Project        `json:"projects"`
	SnapshotAt      time.Time        `json:"snapshot_at"`
}

// TotalRecords counts every career record in the snapshot (identity fields
// excluded). Used as the denominator for utilization percentages.
func (d *Databank) TotalRecords() int {
	return len(d.Skills) + len(d.WorkExperiences) + len(d.Educations) +
		len(d.Certifications) + len(d.Languages) + len(d.Projects)
}

// DatabankBuilder aggregates all ProfileRecords for a user into one snapshot.
type DatabankBuilder interface {
	Build(ctx context.Context, userID int64) (*Databank, error)
}
