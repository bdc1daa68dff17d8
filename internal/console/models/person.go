// Package models defines the records held by the recruitment console:
// people moving through the hiring pipeline, job openings, notifications,
// activity entries and chat messages.
//
// JSON field names follow the stored collection format (camelCase), so
// records written by earlier sessions decode unchanged.
package models

import "slices"

// Stage names the collection a person currently belongs to.
type Stage string

const (
	StageApplicant Stage = "applicant"
	StageSelected  Stage = "selected"
	StageRejected  Stage = "rejected"
	StageRecruited Stage = "recruited"
)

// Person is the record shared by applicants, selected, rejected and
// recruited candidates. The stage-specific timestamp fields are filled in
// by pipeline transitions.
type Person struct {
	// ID is unique across all four pipeline collections.
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`

	// Status is a free-form triage label on applicants ("new", "reviewed",
	// "shortlisted"). It does not affect pipeline membership.
	Status string `json:"status,omitempty"`

	Roll            string       `json:"roll,omitempty"`
	Progress        int          `json:"progress,omitempty"`
	Avatar          string       `json:"avatar,omitempty"`
	Education       string       `json:"education,omitempty"`
	College         string       `json:"college,omitempty"`
	GraduationYear  string       `json:"graduationYear,omitempty"`
	Location        string       `json:"location,omitempty"`
	ExpectedSalary  string       `json:"expectedSalary,omitempty"`
	NoticePeriod    string       `json:"noticePeriod,omitempty"`
	ExperienceYears string       `json:"experienceYears,omitempty"`
	LinkedIn        string       `json:"linkedin,omitempty"`
	GitHub          string       `json:"github,omitempty"`
	Portfolio       string       `json:"portfolio,omitempty"`
	ResumeURL       string       `json:"resumeUrl,omitempty"`
	Rating          float64      `json:"rating,omitempty"`
	Experience      []Experience `json:"experience,omitempty"`
	Documents       []Document   `json:"documents,omitempty"`

	AppliedDate     string `json:"appliedDate,omitempty"`
	SelectedDate    string `json:"selectedDate,omitempty"`
	RejectedDate    string `json:"rejectedDate,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	RecruitedDate   string `json:"recruitedDate,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	Salary          string `json:"salary,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Document struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// Clone returns a deep copy of p.
func (p Person) Clone() Person {
	p.Skills = slices.Clone(p.Skills)
	p.Experience = slices.Clone(p.Experience)
	p.Documents = slices.Clone(p.Documents)
	return p
}

// ClonePeople deep-copies a collection. A nil input yields an empty,
// non-nil slice so it serializes as [].
func ClonePeople(in []Person) []Person {
	out := make([]Person, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
