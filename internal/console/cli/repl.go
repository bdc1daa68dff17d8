package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

// printlnFn is a test seam for REPL chrome (prompt, greetings).
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	Help()
	Stats(ctx context.Context) error
	ListPeople(ctx context.Context, stage models.Stage) error
	Find(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Recruit(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	ListOpenings(ctx context.Context, activeOnly bool) error
	Publish(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	DeleteOpening(ctx context.Context, args []string) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, args []string) error
	MarkAllRead(ctx context.Context) error
	Activity(ctx context.Context) error
	Chat(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit". Handlers that prompt read from the same reader, so the
// loop must not buffer ahead of them.
//
//	help                      show commands
//	stats                     pipeline counters
//	applicants | selected | rejected | recruited
//	find <id>                 look a person up in every stage
//	select <id>               applicant -> selected
//	reject <id> [reason]      applicant -> rejected
//	recruit <id>              selected -> recruited (prompts for terms)
//	status <id> <label>       set an applicant's triage label
//	openings | active         list all or active openings
//	publish                   publish a new opening (prompts)
//	toggle <id>               pause or resume an opening
//	delete <id>               delete an opening
//	notifications | read <id> | readall
//	activity                  recent activity
//	chat <id> | send <id> <text>
//
// Handler errors are not acted on here; handlers report to the user
// themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("desk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.Help()
		case "stats":
			_ = a.Stats(ctx)
		case "applicants":
			_ = a.ListPeople(ctx, models.StageApplicant)
		case "selected":
			_ = a.ListPeople(ctx, models.StageSelected)
		case "rejected":
			_ = a.ListPeople(ctx, models.StageRejected)
		case "recruited":
			_ = a.ListPeople(ctx, models.StageRecruited)
		case "find":
			_ = a.Find(ctx, args)
		case "select":
			_ = a.Select(ctx, args)
		case "reject":
			_ = a.Reject(ctx, args)
		case "recruit":
			_ = a.Recruit(ctx, args)
		case "status":
			_ = a.SetStatus(ctx, args)
		case "openings":
			_ = a.ListOpenings(ctx, false)
		case "active":
			_ = a.ListOpenings(ctx, true)
		case "publish":
			_ = a.Publish(ctx)
		case "toggle":
			_ = a.Toggle(ctx, args)
		case "delete":
			_ = a.DeleteOpening(ctx, args)
		case "notifications":
			_ = a.Notifications(ctx)
		case "read":
			_ = a.MarkRead(ctx, args)
		case "readall":
			_ = a.MarkAllRead(ctx)
		case "activity":
			_ = a.Activity(ctx)
		case "chat":
			_ = a.Chat(ctx, args)
		case "send":
			_ = a.Send(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
