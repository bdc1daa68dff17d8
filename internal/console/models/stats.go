package models

// Stats is a point-in-time aggregate over the console collections.
type Stats struct {
	TotalApplicants     int `json:"totalApplicants"`
	TotalSelected       int `json:"totalSelected"`
	TotalRejected       int `json:"totalRejected"`
	TotalRecruited      int `json:"totalRecruited"`
	ActiveOpeningsCount int `json:"activeOpeningsCount"`
	TotalOpenings       int `json:"totalOpenings"`
	UnreadNotifications int `json:"unreadNotifications"`
}
