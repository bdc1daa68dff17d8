package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

func (a *App) Notifications(ctx context.Context) error {
	ns := a.company.Notifications()
	a.heading("Notifications (%d unread)", a.company.UnreadCount())
	for _, n := range ns {
		a.printNotification(n)
	}
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "read <id>")
	if err != nil {
		return err
	}
	if !a.company.MarkNotificationRead(ctx, id) {
		a.warn("No unread notification with id %s", id)
		return errNotFound
	}
	return nil
}

func (a *App) MarkAllRead(ctx context.Context) error {
	n := a.company.MarkAllNotificationsRead(ctx)
	a.ok("%d notifications marked read", n)
	return nil
}

func (a *App) Activity(ctx context.Context) error {
	a.heading("Recent activity")
	for _, e := range a.company.Activity() {
		a.printf("  %-12s %-50s %s\n", e.Type, e.Description, e.Time)
	}
	return nil
}

func (a *App) Chat(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "chat <id>")
	if err != nil {
		return err
	}

	title := id
	if p, _, ok := a.company.FindPerson(id); ok {
		title = p.Name
	}
	msgs := a.company.Messages(id)
	a.heading("Chat with %s (%d)", title, len(msgs))
	for _, m := range msgs {
		a.printMessage(m)
	}
	return nil
}

func (a *App) Send(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.warn("Usage: send <id> <text>")
		return errUsage
	}
	m := a.company.SendMessage(ctx, args[0], models.MessageDraft{Text: strings.Join(args[1:], " ")})
	a.printMessage(m)
	return nil
}
