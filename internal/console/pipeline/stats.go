package pipeline

import "github.com/dmitrijs2005/placementdesk/internal/console/models"

// ComputeStats aggregates s. It holds no state of its own.
func ComputeStats(s State) models.Stats {
	st := models.Stats{
		TotalApplicants:     len(s.Applicants),
		TotalSelected:       len(s.Selected),
		TotalRejected:       len(s.Rejected),
		TotalRecruited:      len(s.Recruited),
		TotalOpenings:       len(s.Openings),
		UnreadNotifications: countUnread(s.Notifications),
	}
	for _, o := range s.Openings {
		if o.Status == models.OpeningActive {
			st.ActiveOpeningsCount++
		}
	}
	return st
}

func (e *Engine) Stats() models.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ComputeStats(e.state)
}
