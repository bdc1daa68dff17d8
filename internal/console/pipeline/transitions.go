package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

// RecruitTerms are the optional terms recorded when a selected candidate
// is recruited. Empty fields fall back to defaults.
type RecruitTerms struct {
	StartDate string
	Salary    string
}

func indexOf(people []models.Person, id string) int {
	return slices.IndexFunc(people, func(p models.Person) bool { return p.ID == id })
}

// SelectApplicant moves id from Applicants to Selected. It reports false
// and changes nothing when id is not an applicant.
func (e *Engine) SelectApplicant(ctx context.Context, id string) (models.Person, bool) {
	e.mu.Lock()
	i := indexOf(e.state.Applicants, id)
	if i < 0 {
		e.mu.Unlock()
		e.log.Debug(ctx, "select skipped, not an applicant", "id", id)
		return models.Person{}, false
	}

	p := e.state.Applicants[i]
	p.SelectedDate = e.today()
	e.state.Applicants = slices.Delete(e.state.Applicants, i, i+1)
	e.state.Selected = append(e.state.Selected, p)

	e.notifyLocked(models.NotificationDraft{
		Type:        models.NotificationSelected,
		Title:       "Student Selected",
		Message:     fmt.Sprintf("%s has been selected for %s", p.Name, p.Position),
		ReferenceID: id,
	})
	e.recordLocked(string(models.NotificationSelected), fmt.Sprintf("%s was selected for %s", p.Name, p.Position))

	done := e.commit(ctx, OpSelectApplicant, id, Applicants, Selected, Notifications, Activity)
	e.mu.Unlock()
	done()

	e.log.Info(ctx, "applicant selected", "id", id)
	return p.Clone(), true
}

// RejectApplicant moves id from Applicants to Rejected. An empty reason is
// recorded as DefaultRejectionReason.
func (e *Engine) RejectApplicant(ctx context.Context, id, reason string) (models.Person, bool) {
	if reason == "" {
		reason = DefaultRejectionReason
	}

	e.mu.Lock()
	i := indexOf(e.state.Applicants, id)
	if i < 0 {
		e.mu.Unlock()
		e.log.Debug(ctx, "reject skipped, not an applicant", "id", id)
		return models.Person{}, false
	}

	p := e.state.Applicants[i]
	p.RejectedDate = e.today()
	p.RejectionReason = reason
	e.state.Applicants = slices.Delete(e.state.Applicants, i, i+1)
	e.state.Rejected = append(e.state.Rejected, p)

	e.notifyLocked(models.NotificationDraft{
		Type:        models.NotificationRejected,
		Title:       "Student Rejected",
		Message:     fmt.Sprintf("%s's application has been rejected", p.Name),
		ReferenceID: id,
	})
	e.recordLocked(string(models.NotificationRejected), fmt.Sprintf("%s's application was rejected", p.Name))

	done := e.commit(ctx, OpRejectApplicant, id, Applicants, Rejected, Notifications, Activity)
	e.mu.Unlock()
	done()

	e.log.Info(ctx, "applicant rejected", "id", id)
	return p.Clone(), true
}

// RecruitSelected moves id from Selected to Recruited. Only selected
// candidates can be recruited; applicants and rejected people are refused.
func (e *Engine) RecruitSelected(ctx context.Context, id string, terms RecruitTerms) (models.Person, bool) {
	e.mu.Lock()
	i := indexOf(e.state.Selected, id)
	if i < 0 {
		e.mu.Unlock()
		e.log.Debug(ctx, "recruit skipped, not selected", "id", id)
		return models.Person{}, false
	}

	p := e.state.Selected[i]
	p.RecruitedDate = e.today()
	p.StartDate = terms.StartDate
	if p.StartDate == "" {
		p.StartDate = DefaultStartDate
	}
	p.Salary = terms.Salary
	if p.Salary == "" {
		p.Salary = p.ExpectedSalary
	}
	if p.Salary == "" {
		p.Salary = DefaultSalary
	}
	e.state.Selected = slices.Delete(e.state.Selected, i, i+1)
	e.state.Recruited = append(e.state.Recruited, p)

	e.notifyLocked(models.NotificationDraft{
		Type:        models.NotificationRecruited,
		Title:       "Student Recruited",
		Message:     fmt.Sprintf("%s has been recruited for %s", p.Name, p.Position),
		ReferenceID: id,
	})
	e.recordLocked(string(models.NotificationRecruited), fmt.Sprintf("%s was recruited for %s", p.Name, p.Position))

	done := e.commit(ctx, OpRecruitSelected, id, Selected, Recruited, Notifications, Activity)
	e.mu.Unlock()
	done()

	e.log.Info(ctx, "candidate recruited", "id", id)
	return p.Clone(), true
}

// UpdateApplicantStatus sets the triage label of an applicant in place.
// It does not move the applicant and emits no notification.
func (e *Engine) UpdateApplicantStatus(ctx context.Context, id, status string) bool {
	e.mu.Lock()
	i := indexOf(e.state.Applicants, id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.state.Applicants[i].Status = status

	done := e.commit(ctx, OpUpdateStatus, id, Applicants)
	e.mu.Unlock()
	done()
	return true
}

// FindPerson looks id up in Applicants, Selected, Rejected and Recruited,
// in that order, and returns the first match with its stage.
func (e *Engine) FindPerson(id string) (models.Person, models.Stage, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	groups := []struct {
		stage  models.Stage
		people []models.Person
	}{
		{models.StageApplicant, e.state.Applicants},
		{models.StageSelected, e.state.Selected},
		{models.StageRejected, e.state.Rejected},
		{models.StageRecruited, e.state.Recruited},
	}
	for _, g := range groups {
		if i := indexOf(g.people, id); i >= 0 {
			return g.people[i].Clone(), g.stage, true
		}
	}
	return models.Person{}, "", false
}
