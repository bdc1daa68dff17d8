// Package services exposes the recruitment console to its consumers. The
// CompanyService facade owns the pipeline engine for one session, wires its
// writes to the durable store and announces every applied change on the
// event bus.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/placementdesk/internal/console/durable"
	"github.com/dmitrijs2005/placementdesk/internal/console/events"
	"github.com/dmitrijs2005/placementdesk/internal/console/models"
	"github.com/dmitrijs2005/placementdesk/internal/console/pipeline"
	"github.com/dmitrijs2005/placementdesk/internal/console/seed"
	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

// CompanyService is the single entry point for console views.
//
// Returned collections are copies; mutate state only through the
// operations. Operations on ids that are not where they are expected to be
// report ok=false and change nothing. Persistence is asynchronous: a
// returned record may not be durable yet.
type CompanyService interface {
	Applicants() []models.Person
	Selected() []models.Person
	Rejected() []models.Person
	Recruited() []models.Person
	Openings() []models.Opening
	ActiveOpenings() []models.Opening
	Notifications() []models.Notification
	Activity() []models.Activity
	Messages(personID string) []models.Message
	FindPerson(id string) (models.Person, models.Stage, bool)
	Stats() models.Stats
	UnreadCount() int

	SelectApplicant(ctx context.Context, id string) (models.Person, bool)
	RejectApplicant(ctx context.Context, id, reason string) (models.Person, bool)
	RecruitSelected(ctx context.Context, id string, terms pipeline.RecruitTerms) (models.Person, bool)
	UpdateApplicantStatus(ctx context.Context, id, status string) bool

	PublishOpening(ctx context.Context, draft models.OpeningDraft) models.Opening
	DeleteOpening(ctx context.Context, id string) bool
	ToggleOpeningStatus(ctx context.Context, id string) (models.OpeningStatus, bool)

	AddNotification(ctx context.Context, draft models.NotificationDraft) models.Notification
	MarkNotificationRead(ctx context.Context, id string) bool
	MarkAllNotificationsRead(ctx context.Context) int
	AddActivity(ctx context.Context, kind, description string) models.Activity

	SendMessage(ctx context.Context, personID string, draft models.MessageDraft) models.Message

	// Subscribe streams changes applied after the call.
	Subscribe(ctx context.Context) (<-chan events.Change, error)
	// Flush waits for queued writes to be attempted.
	Flush(ctx context.Context) error
	// Reload flushes, then replaces in-memory state with what the store
	// holds.
	Reload(ctx context.Context) error
	Close() error
}

type Option func(*companyService)

// WithSeed uses s as the load defaults and writes it to every key the store
// does not hold yet.
func WithSeed(s pipeline.State) Option {
	return func(c *companyService) {
		c.defaults = s.Clone()
		c.seed = true
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *companyService) { c.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(c *companyService) { c.newID = gen }
}

type companyService struct {
	*pipeline.Engine

	store *durable.Store
	bus   *events.Bus
	log   logging.Logger

	defaults pipeline.State
	seed     bool
	now      func() time.Time
	newID    func() string
}

// NewCompanyService loads all collections from store and returns a ready
// facade. The service takes ownership of store and bus; Close releases
// both.
func NewCompanyService(ctx context.Context, store *durable.Store, bus *events.Bus, log logging.Logger, opts ...Option) (CompanyService, error) {
	c := &companyService{
		store:    store,
		bus:      bus,
		log:      log.With("component", "company"),
		defaults: seed.Empty(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.seed {
		if err := store.Seed(ctx, c.defaults.ByKey()); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	state := c.load(ctx)
	engineOpts := []pipeline.Option{
		pipeline.WithSink(store),
		pipeline.WithChangeHook(c.publish),
		pipeline.WithClock(c.now),
		pipeline.WithLogger(log),
	}
	if c.newID != nil {
		engineOpts = append(engineOpts, pipeline.WithIDGenerator(c.newID))
	}
	c.Engine = pipeline.New(state, engineOpts...)
	return c, nil
}

// LoadState reads every collection from store, falling back to the
// matching collection of defaults.
func LoadState(ctx context.Context, store *durable.Store, defaults pipeline.State) pipeline.State {
	return pipeline.State{
		Applicants:    durable.Load(ctx, store, pipeline.Applicants.Key(), defaults.Applicants),
		Selected:      durable.Load(ctx, store, pipeline.Selected.Key(), defaults.Selected),
		Rejected:      durable.Load(ctx, store, pipeline.Rejected.Key(), defaults.Rejected),
		Recruited:     durable.Load(ctx, store, pipeline.Recruited.Key(), defaults.Recruited),
		Openings:      durable.Load(ctx, store, pipeline.Openings.Key(), defaults.Openings),
		Notifications: durable.Load(ctx, store, pipeline.Notifications.Key(), defaults.Notifications),
		Activity:      durable.Load(ctx, store, pipeline.Activity.Key(), defaults.Activity),
		Chats:         durable.Load(ctx, store, pipeline.Chats.Key(), defaults.Chats),
	}
}

func (c *companyService) load(ctx context.Context) pipeline.State {
	state := LoadState(ctx, c.store, c.defaults).Clone()
	if dup := pipeline.Conflicts(state); len(dup) > 0 {
		c.log.Warn(ctx, "stored collections disagree, person found in more than one stage", "ids", dup)
	}
	return state
}

func (c *companyService) publish(ctx context.Context, op, ref string, changed []pipeline.Collection) {
	names := make([]string, len(changed))
	for i, col := range changed {
		names[i] = string(col)
	}

	err := c.bus.Publish(ctx, events.Change{
		Operation:   op,
		Collections: names,
		ReferenceID: ref,
		OccurredAt:  c.now().UTC(),
	})
	if err != nil {
		c.log.Warn(ctx, "change not published", "operation", op, "error", err)
	}
}

func (c *companyService) Subscribe(ctx context.Context) (<-chan events.Change, error) {
	return c.bus.Subscribe(ctx)
}

func (c *companyService) Flush(ctx context.Context) error {
	return c.store.Flush(ctx)
}

func (c *companyService) Reload(ctx context.Context) error {
	if err := c.store.Flush(ctx); err != nil {
		return fmt.Errorf("flush before reload: %w", err)
	}
	c.Engine.Replace(ctx, c.load(ctx))
	c.log.Info(ctx, "state reloaded from store")
	return nil
}

// Close writes whatever is still queued, then stops the store and the bus.
func (c *companyService) Close() error {
	if keys := c.store.Pending(); len(keys) > 0 {
		c.log.Info(context.Background(), "writing pending collections before close", "keys", keys)
	}
	if err := c.store.Close(); err != nil {
		return err
	}
	return c.bus.Close()
}
