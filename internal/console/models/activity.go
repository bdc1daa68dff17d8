package models

// Activity is one line of the recent-activity feed.
type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

func CloneActivity(in []Activity) []Activity {
	out := make([]Activity, len(in))
	copy(out, in)
	return out
}
