package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

const openingType = "Internship"

func (e *Engine) openingIndex(id string) int {
	return slices.IndexFunc(e.state.Openings, func(o models.Opening) bool { return o.ID == id })
}

// PublishOpening creates an active opening with zeroed counters and puts
// it at the head of Openings. The returned record may not be durable yet.
func (e *Engine) PublishOpening(ctx context.Context, draft models.OpeningDraft) models.Opening {
	e.mu.Lock()
	o := models.Opening{
		ID:          "job-" + e.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Skills:      slices.Clone(draft.Skills),
		Stipend:     draft.Stipend,
		Salary:      draft.Stipend,
		Duration:    draft.Duration,
		Mode:        draft.Mode,
		Type:        openingType,
		Location:    draft.Location,
		Department:  draft.Department,
		Status:      models.OpeningActive,
		PostedDate:  justNow,
		CreatedAt:   e.now().UTC().Format(time.RFC3339),
	}
	if o.Skills == nil {
		o.Skills = []string{}
	}
	e.state.Openings = append([]models.Opening{o}, e.state.Openings...)

	e.notifyLocked(models.NotificationDraft{
		Type:        models.NotificationJob,
		Title:       "New Job Published",
		Message:     fmt.Sprintf("%s is now live", o.Title),
		ReferenceID: o.ID,
	})
	e.recordLocked(string(models.NotificationJob), fmt.Sprintf("New job opening: %s was published", o.Title))

	done := e.commit(ctx, OpPublishOpening, o.ID, Openings, Notifications, Activity)
	e.mu.Unlock()
	done()

	e.log.Info(ctx, "opening published", "id", o.ID)
	return o.Clone()
}

// DeleteOpening removes an opening. No notification is emitted.
func (e *Engine) DeleteOpening(ctx context.Context, id string) bool {
	e.mu.Lock()
	i := e.openingIndex(id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.state.Openings = slices.Delete(e.state.Openings, i, i+1)
	done := e.commit(ctx, OpDeleteOpening, id, Openings)
	e.mu.Unlock()
	done()
	return true
}

// ToggleOpeningStatus flips an opening between active and paused and
// returns the new status. Openings in any other status are left alone.
func (e *Engine) ToggleOpeningStatus(ctx context.Context, id string) (models.OpeningStatus, bool) {
	e.mu.Lock()
	i := e.openingIndex(id)
	if i < 0 {
		e.mu.Unlock()
		return "", false
	}

	o := &e.state.Openings[i]
	switch o.Status {
	case models.OpeningActive:
		o.Status = models.OpeningPaused
	case models.OpeningPaused:
		o.Status = models.OpeningActive
	default:
		status := o.Status
		e.mu.Unlock()
		return status, false
	}
	status := o.Status

	done := e.commit(ctx, OpToggleOpening, id, Openings)
	e.mu.Unlock()
	done()
	return status, true
}

// ActiveOpenings returns the openings currently accepting applications.
func (e *Engine) ActiveOpenings() []models.Opening {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []models.Opening{}
	for _, o := range e.state.Openings {
		if o.Status == models.OpeningActive {
			out = append(out, o.Clone())
		}
	}
	return out
}
