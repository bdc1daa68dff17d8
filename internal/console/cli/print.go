package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	unreadColor  = color.New(color.Bold)
)

func (a *App) heading(format string, args ...any) {
	headingColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) ok(format string, args ...any) {
	okColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) warn(format string, args ...any) {
	warnColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printPerson(p models.Person, stage models.Stage) {
	a.printf("%-6s %-20s %-28s %s\n", p.ID, p.Name, p.Position, personDetail(p, stage))
}

func personDetail(p models.Person, stage models.Stage) string {
	switch stage {
	case models.StageApplicant:
		if p.Status != "" {
			return "[" + p.Status + "]"
		}
		return p.AppliedDate
	case models.StageSelected:
		return "selected " + p.SelectedDate
	case models.StageRejected:
		return fmt.Sprintf("rejected %s: %s", p.RejectedDate, p.RejectionReason)
	case models.StageRecruited:
		return fmt.Sprintf("starts %s, %s", p.StartDate, p.Salary)
	}
	return ""
}

func (a *App) printPersonCard(p models.Person, stage models.Stage) {
	a.heading("%s (%s)", p.Name, stage)
	a.printf("  id:         %s\n", p.ID)
	a.printf("  email:      %s\n", p.Email)
	a.printf("  phone:      %s\n", p.Phone)
	a.printf("  position:   %s, %s\n", p.Position, p.Department)
	a.printf("  skills:     %s\n", strings.Join(p.Skills, ", "))
	if detail := personDetail(p, stage); detail != "" {
		a.printf("  stage:      %s\n", detail)
	}
}

func (a *App) printOpening(o models.Opening) {
	a.printf("%-14s %-30s %-8s %3d applicants %4d views  %s\n",
		o.ID, o.Title, o.Status, o.Applicants, o.Views, o.PostedDate)
}

func (a *App) printNotification(n models.Notification) {
	line := fmt.Sprintf("%-10s %-12s %-22s %s", n.ID, n.Type, n.Title, n.Message)
	if n.Read {
		a.printf("  %s\n", line)
		return
	}
	unreadColor.Fprintf(a.out, "* %s\n", line)
}

func (a *App) printMessage(m models.Message) {
	a.printf("[%s] %-7s %s\n", m.Time, m.From, m.Text)
	if m.File != nil {
		a.printf("          attachment: %s %s\n", m.File.Name, m.File.Size)
	}
}
