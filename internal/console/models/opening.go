package models

import "slices"

type OpeningStatus string

const (
	OpeningActive OpeningStatus = "active"
	OpeningPaused OpeningStatus = "paused"
	OpeningClosed OpeningStatus = "closed"
)

// Opening is a published job or internship listing.
type Opening struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Skills      []string      `json:"skills"`
	Stipend     string        `json:"stipend"`
	Salary      string        `json:"salary,omitempty"`
	Duration    string        `json:"duration"`
	Mode        string        `json:"mode"`
	Type        string        `json:"type,omitempty"`
	Location    string        `json:"location"`
	Department  string        `json:"department"`
	Applicants  int           `json:"applicants"`
	Views       int           `json:"views"`
	Status      OpeningStatus `json:"status"`
	PostedDate  string        `json:"postedDate"`
	CreatedAt   string        `json:"createdAt"`
}

// OpeningDraft carries the caller-supplied fields of a new opening. Ids,
// counters, status and timestamps are assigned on publish.
type OpeningDraft struct {
	Title       string
	Description string
	Skills      []string
	Stipend     string
	Duration    string
	Mode        string
	Location    string
	Department  string
}

func (o Opening) Clone() Opening {
	o.Skills = slices.Clone(o.Skills)
	return o
}

func CloneOpenings(in []Opening) []Opening {
	out := make([]Opening, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
