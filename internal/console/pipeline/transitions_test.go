package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

func TestSelectApplicant_MovesAndRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, State{
		Applicants: []models.Person{person("1", "Ann"), person("2", "Bob")},
		Activity:   []models.Activity{{Type: "job", Description: "older", Time: "1 day ago"}},
	})

	got, ok := f.engine.SelectApplicant(ctx, "1")
	require.True(t, ok)
	require.Equal(t, "Mar 7, 2025", got.SelectedDate)

	s := f.engine.Snapshot()
	require.Len(t, s.Applicants, 1)
	require.Equal(t, "2", s.Applicants[0].ID)
	require.Len(t, s.Selected, 1)
	require.Equal(t, "1", s.Selected[0].ID)
	require.Equal(t, "Mar 7, 2025", s.Selected[0].SelectedDate)

	require.Len(t, s.Notifications, 1)
	n := s.Notifications[0]
	assert.Equal(t, models.NotificationSelected, n.Type)
	assert.Equal(t, "1", n.ReferenceID)
	assert.Equal(t, "n-id1", n.ID)
	assert.Equal(t, "Ann has been selected for Backend Intern", n.Message)
	assert.False(t, n.Read)
	assert.Equal(t, "Just now", n.Time)

	require.Len(t, s.Activity, 2)
	assert.Equal(t, "Ann was selected for Backend Intern", s.Activity[0].Description)
	assert.Equal(t, "older", s.Activity[1].Description)
}

func TestSelectApplicant_SaveOrderAndHook(t *testing.T) {
	f := newFixture(t, State{Applicants: []models.Person{person("1", "Ann")}})

	_, ok := f.engine.SelectApplicant(context.Background(), "1")
	require.True(t, ok)

	require.Equal(t, []string{
		"company_applicants", "company_selected", "company_notifications", "company_activity",
	}, f.sink.keys())
	require.Equal(t, []hookCall{{
		op:      OpSelectApplicant,
		ref:     "1",
		changed: []Collection{Applicants, Selected, Notifications, Activity},
	}}, *f.hooks)
}

func TestRejectApplicant(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   string
	}{
		{name: "default reason", reason: "", want: DefaultRejectionReason},
		{name: "explicit reason", reason: "Position filled", want: "Position filled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, State{Applicants: []models.Person{person("1", "Ann")}})

			got, ok := f.engine.RejectApplicant(context.Background(), "1", tt.reason)
			require.True(t, ok)
			require.Equal(t, tt.want, got.RejectionReason)
			require.Equal(t, "Mar 7, 2025", got.RejectedDate)

			s := f.engine.Snapshot()
			require.Empty(t, s.Applicants)
			require.Len(t, s.Rejected, 1)
			require.Equal(t, tt.want, s.Rejected[0].RejectionReason)
			require.Len(t, s.Notifications, 1)
			require.Equal(t, models.NotificationRejected, s.Notifications[0].Type)
			require.Equal(t, "Ann's application has been rejected", s.Notifications[0].Message)
			require.Len(t, s.Activity, 1)
			require.Equal(t, []string{
				"company_applicants", "company_rejected", "company_notifications", "company_activity",
			}, f.sink.keys())
		})
	}
}

func TestMissingID_LeavesStateUnchanged(t *testing.T) {
	initial := State{
		Applicants:    []models.Person{person("1", "Ann")},
		Selected:      []models.Person{person("2", "Bob")},
		Rejected:      []models.Person{person("3", "Cid")},
		Recruited:     []models.Person{person("4", "Dee")},
		Openings:      []models.Opening{{ID: "job-1", Status: models.OpeningClosed}},
		Notifications: []models.Notification{{ID: "n-1", Read: true}},
		Activity:      []models.Activity{{Type: "job", Description: "x", Time: "Just now"}},
		Chats:         map[string][]models.Message{"2": {{ID: "m1", Text: "hi"}}},
	}

	ctx := context.Background()
	ops := map[string]func(e *Engine) bool{
		"reject unknown": func(e *Engine) bool { _, ok := e.RejectApplicant(ctx, "99", ""); return ok },
		"reject selected": func(e *Engine) bool {
			_, ok := e.RejectApplicant(ctx, "2", "")
			return ok
		},
		"select selected": func(e *Engine) bool { _, ok := e.SelectApplicant(ctx, "2"); return ok },
		"select rejected": func(e *Engine) bool { _, ok := e.SelectApplicant(ctx, "3"); return ok },
		"recruit unknown": func(e *Engine) bool {
			_, ok := e.RecruitSelected(ctx, "99", RecruitTerms{})
			return ok
		},
		"status unknown":      func(e *Engine) bool { return e.UpdateApplicantStatus(ctx, "2", "reviewed") },
		"delete unknown":      func(e *Engine) bool { return e.DeleteOpening(ctx, "job-9") },
		"toggle closed":       func(e *Engine) bool { _, ok := e.ToggleOpeningStatus(ctx, "job-1"); return ok },
		"toggle unknown":      func(e *Engine) bool { _, ok := e.ToggleOpeningStatus(ctx, "job-9"); return ok },
		"mark read unknown":   func(e *Engine) bool { return e.MarkNotificationRead(ctx, "n-9") },
		"mark read twice":     func(e *Engine) bool { return e.MarkNotificationRead(ctx, "n-1") },
		"mark all, none left": func(e *Engine) bool { return e.MarkAllNotificationsRead(ctx) > 0 },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, initial)
			before := encodeState(t, f.engine.Snapshot())

			require.False(t, op(f.engine))

			after := encodeState(t, f.engine.Snapshot())
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("state changed (-before +after):\n%s", diff)
			}
			require.Empty(t, f.sink.keys())
			require.Empty(t, *f.hooks)
		})
	}
}

func TestRecruitSelected_Gating(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, State{
		Applicants: []models.Person{person("1", "Ann")},
		Rejected:   []models.Person{person("3", "Cid")},
	})

	for _, id := range []string{"1", "3", "never"} {
		_, ok := f.engine.RecruitSelected(ctx, id, RecruitTerms{})
		require.False(t, ok, id)
	}

	s := f.engine.Snapshot()
	require.Empty(t, s.Recruited)
	require.Len(t, s.Applicants, 1)
	require.Len(t, s.Rejected, 1)
	require.Empty(t, s.Notifications)
}

func TestRecruitSelected_Terms(t *testing.T) {
	withExpectation := person("1", "Ann")
	withExpectation.ExpectedSalary = "25,000/month"

	tests := []struct {
		name       string
		candidate  models.Person
		terms      RecruitTerms
		wantStart  string
		wantSalary string
	}{
		{
			name:       "defaults from expectation",
			candidate:  withExpectation,
			wantStart:  DefaultStartDate,
			wantSalary: "25,000/month",
		},
		{
			name:       "no expectation",
			candidate:  person("1", "Ann"),
			wantStart:  DefaultStartDate,
			wantSalary: DefaultSalary,
		},
		{
			name:       "explicit terms",
			candidate:  withExpectation,
			terms:      RecruitTerms{StartDate: "Apr 1, 2025", Salary: "30,000/month"},
			wantStart:  "Apr 1, 2025",
			wantSalary: "30,000/month",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, State{Selected: []models.Person{tt.candidate}})

			got, ok := f.engine.RecruitSelected(context.Background(), "1", tt.terms)
			require.True(t, ok)
			require.Equal(t, tt.wantStart, got.StartDate)
			require.Equal(t, tt.wantSalary, got.Salary)
			require.Equal(t, "Mar 7, 2025", got.RecruitedDate)

			s := f.engine.Snapshot()
			require.Empty(t, s.Selected)
			require.Equal(t, []models.Person{got}, s.Recruited)
			require.Equal(t, models.NotificationRecruited, s.Notifications[0].Type)
			require.Equal(t, []string{
				"company_selected", "company_recruited", "company_notifications", "company_activity",
			}, f.sink.keys())
		})
	}
}

func TestSelectThenRecruit_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, State{Applicants: []models.Person{{ID: "1", Name: "A"}}})

	_, ok := f.engine.SelectApplicant(ctx, "1")
	require.True(t, ok)
	s := f.engine.Snapshot()
	require.Empty(t, s.Applicants)
	require.Len(t, s.Selected, 1)
	require.Equal(t, "1", s.Selected[0].ID)
	require.NotEmpty(t, s.Selected[0].SelectedDate)
	require.Len(t, s.Notifications, 1)
	require.Equal(t, models.NotificationSelected, s.Notifications[0].Type)

	_, ok = f.engine.RecruitSelected(ctx, "1", RecruitTerms{})
	require.True(t, ok)
	s = f.engine.Snapshot()
	require.Empty(t, s.Selected)
	require.Len(t, s.Recruited, 1)
	require.Equal(t, "1", s.Recruited[0].ID)
	require.NotEmpty(t, s.Recruited[0].RecruitedDate)
	require.NotEmpty(t, s.Recruited[0].Salary)
	require.Len(t, s.Notifications, 2)

	// Terminal: nothing moves a recruited person again.
	_, ok = f.engine.SelectApplicant(ctx, "1")
	require.False(t, ok)
	_, ok = f.engine.RejectApplicant(ctx, "1", "")
	require.False(t, ok)
	_, ok = f.engine.RecruitSelected(ctx, "1", RecruitTerms{})
	require.False(t, ok)
}

func TestTransitions_MutualExclusion(t *testing.T) {
	const people = 20
	var applicants []models.Person
	for i := 0; i < people; i++ {
		applicants = append(applicants, person(fmt.Sprint(i), fmt.Sprint("p", i)))
	}
	e := New(State{Applicants: applicants})

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		id := fmt.Sprint(rng.Intn(people + 5))
		switch rng.Intn(4) {
		case 0:
			e.SelectApplicant(ctx, id)
		case 1:
			e.RejectApplicant(ctx, id, "")
		case 2:
			e.RecruitSelected(ctx, id, RecruitTerms{})
		case 3:
			e.UpdateApplicantStatus(ctx, id, "reviewed")
		}

		s := e.Snapshot()
		require.Empty(t, Conflicts(s))
		total := len(s.Applicants) + len(s.Selected) + len(s.Rejected) + len(s.Recruited)
		require.Equal(t, people, total)
	}
}

func TestUpdateApplicantStatus(t *testing.T) {
	f := newFixture(t, State{Applicants: []models.Person{person("1", "Ann")}})

	require.True(t, f.engine.UpdateApplicantStatus(context.Background(), "1", "shortlisted"))

	s := f.engine.Snapshot()
	require.Equal(t, "shortlisted", s.Applicants[0].Status)
	require.Empty(t, s.Notifications)
	require.Empty(t, s.Activity)
	require.Equal(t, []string{"company_applicants"}, f.sink.keys())
}

func TestFindPerson_FixedOrder(t *testing.T) {
	e := New(State{
		Applicants: []models.Person{person("a", "Ann")},
		Selected:   []models.Person{{ID: "dup", Name: "from selected"}},
		Rejected:   []models.Person{person("r", "Rex")},
		Recruited:  []models.Person{{ID: "dup", Name: "from recruited"}, person("h", "Hal")},
	})

	tests := []struct {
		id    string
		name  string
		stage models.Stage
	}{
		{"a", "Ann", models.StageApplicant},
		{"dup", "from selected", models.StageSelected},
		{"r", "Rex", models.StageRejected},
		{"h", "Hal", models.StageRecruited},
	}
	for _, tt := range tests {
		p, stage, ok := e.FindPerson(tt.id)
		require.True(t, ok, tt.id)
		require.Equal(t, tt.name, p.Name)
		require.Equal(t, tt.stage, stage)
	}

	_, _, ok := e.FindPerson("missing")
	require.False(t, ok)
}
