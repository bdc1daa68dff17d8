package cli

import (
	"context"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

func (a *App) ListOpenings(ctx context.Context, activeOnly bool) error {
	openings := a.company.Openings()
	title := "Openings"
	if activeOnly {
		openings = a.company.ActiveOpenings()
		title = "Active openings"
	}

	a.heading("%s (%d)", title, len(openings))
	for _, o := range openings {
		a.printOpening(o)
	}
	return nil
}

// Publish prompts for the opening fields and publishes it.
func (a *App) Publish(ctx context.Context) error {
	var (
		d   models.OpeningDraft
		err error
	)

	if d.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if d.Title == "" {
		a.warn("Title is required")
		return errUsage
	}
	if d.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if d.Skills, err = GetList(a.reader, "Skills", a.out); err != nil {
		return err
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Stipend", &d.Stipend},
		{"Duration", &d.Duration},
		{"Mode (Remote/Onsite/Hybrid)", &d.Mode},
		{"Location", &d.Location},
		{"Department", &d.Department},
	}
	for _, f := range fields {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	o := a.company.PublishOpening(ctx, d)
	a.ok("Published %s (%s)", o.Title, o.ID)
	return nil
}

func (a *App) Toggle(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "toggle <id>")
	if err != nil {
		return err
	}
	status, ok := a.company.ToggleOpeningStatus(ctx, id)
	if !ok {
		if status != "" {
			a.warn("Opening %s is %s and cannot be toggled", id, status)
		} else {
			a.warn("No opening with id %s", id)
		}
		return errNotFound
	}
	a.ok("Opening %s is now %s", id, status)
	return nil
}

func (a *App) DeleteOpening(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "delete <id>")
	if err != nil {
		return err
	}
	if !a.company.DeleteOpening(ctx, id) {
		a.warn("No opening with id %s", id)
		return errNotFound
	}
	a.ok("Opening %s deleted", id)
	return nil
}
