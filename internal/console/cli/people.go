package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/placementdesk/internal/common"
	"github.com/dmitrijs2005/placementdesk/internal/console/models"
	"github.com/dmitrijs2005/placementdesk/internal/console/pipeline"
)

var (
	errUsage    = errors.New("bad usage")
	errNotFound = common.ErrorNotFound
)

const helpText = `Pipeline:  stats, applicants, selected, rejected, recruited, find <id>,
           select <id>, reject <id> [reason], recruit <id>, status <id> <label>
Openings:  openings, active, publish, toggle <id>, delete <id>
Inbox:     notifications, read <id>, readall, activity, chat <id>, send <id> <text>
           exit`

func (a *App) Help() {
	a.printf("%s\n", helpText)
}

// requireID returns args[0] or prints usage.
func (a *App) requireID(args []string, usage string) (string, error) {
	if len(args) == 0 {
		a.warn("Usage: %s", usage)
		return "", errUsage
	}
	return args[0], nil
}

func (a *App) Stats(ctx context.Context) error {
	s := a.company.Stats()
	a.heading("Pipeline")
	a.printf("  applicants:    %d\n", s.TotalApplicants)
	a.printf("  selected:      %d\n", s.TotalSelected)
	a.printf("  rejected:      %d\n", s.TotalRejected)
	a.printf("  recruited:     %d\n", s.TotalRecruited)
	a.heading("Openings")
	a.printf("  active:        %d of %d\n", s.ActiveOpeningsCount, s.TotalOpenings)
	a.printf("  unread:        %d\n", s.UnreadNotifications)
	return nil
}

func (a *App) ListPeople(ctx context.Context, stage models.Stage) error {
	var people []models.Person
	switch stage {
	case models.StageApplicant:
		people = a.company.Applicants()
	case models.StageSelected:
		people = a.company.Selected()
	case models.StageRejected:
		people = a.company.Rejected()
	case models.StageRecruited:
		people = a.company.Recruited()
	}

	a.heading("%s (%d)", stage, len(people))
	if len(people) == 0 {
		a.printf("  nobody here yet\n")
	}
	for _, p := range people {
		a.printPerson(p, stage)
	}
	return nil
}

func (a *App) Find(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "find <id>")
	if err != nil {
		return err
	}
	p, stage, ok := a.company.FindPerson(id)
	if !ok {
		a.warn("No person with id %s", id)
		return errNotFound
	}
	a.printPersonCard(p, stage)
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "select <id>")
	if err != nil {
		return err
	}
	p, ok := a.company.SelectApplicant(ctx, id)
	if !ok {
		a.warn("No applicant with id %s", id)
		return errNotFound
	}
	a.ok("%s selected for %s", p.Name, p.Position)
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "reject <id> [reason]")
	if err != nil {
		return err
	}
	p, ok := a.company.RejectApplicant(ctx, id, strings.Join(args[1:], " "))
	if !ok {
		a.warn("No applicant with id %s", id)
		return errNotFound
	}
	a.ok("%s rejected: %s", p.Name, p.RejectionReason)
	return nil
}

// Recruit prompts for the start date and salary; empty answers keep the
// defaults.
func (a *App) Recruit(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "recruit <id>")
	if err != nil {
		return err
	}
	if _, stage, ok := a.company.FindPerson(id); !ok || stage != models.StageSelected {
		a.warn("No selected candidate with id %s", id)
		return errNotFound
	}

	var terms pipeline.RecruitTerms
	if terms.StartDate, err = GetSimpleText(a.reader, "Start date (empty for "+pipeline.DefaultStartDate+")", a.out); err != nil {
		return err
	}
	if terms.Salary, err = GetSimpleText(a.reader, "Salary (empty for expected salary)", a.out); err != nil {
		return err
	}

	p, ok := a.company.RecruitSelected(ctx, id, terms)
	if !ok {
		a.warn("No selected candidate with id %s", id)
		return errNotFound
	}
	a.ok("%s recruited, starts %s at %s", p.Name, p.StartDate, p.Salary)
	return nil
}

func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.warn("Usage: status <id> <label>")
		return errUsage
	}
	id, label := args[0], strings.Join(args[1:], " ")
	if !a.company.UpdateApplicantStatus(ctx, id, label) {
		a.warn("No applicant with id %s", id)
		return errNotFound
	}
	a.ok("%s marked %s", id, label)
	return nil
}
