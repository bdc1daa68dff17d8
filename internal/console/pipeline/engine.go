// Package pipeline owns the recruitment console state and is the only code
// allowed to change it.
//
// People move Applicant -> Selected -> Recruited, or Applicant -> Rejected;
// every other stage is terminal. Each applied transition also prepends a
// notification and an activity entry. Operations on ids that are not where
// they are expected to be are silent no-ops reported through the returned
// ok flag.
//
// After each applied operation the engine hands every changed collection
// to its Sink, in a fixed order (source, destination, notifications,
// activity), and then calls the change hook. Sinks are expected to be
// fire-and-forget.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

const (
	// ActivityLimit bounds the activity feed; older entries are dropped.
	ActivityLimit = 10

	DefaultRejectionReason = "Did not meet requirements"
	DefaultStartDate       = "TBD"
	DefaultSalary          = "As discussed"

	justNow    = "Just now"
	dateLayout = "Jan 2, 2006"
	timeLayout = "03:04 PM"
)

// Operation names reported to the change hook.
const (
	OpSelectApplicant    = "select_applicant"
	OpRejectApplicant    = "reject_applicant"
	OpRecruitSelected    = "recruit_selected"
	OpUpdateStatus       = "update_applicant_status"
	OpPublishOpening     = "publish_opening"
	OpDeleteOpening      = "delete_opening"
	OpToggleOpening      = "toggle_opening_status"
	OpAddNotification    = "add_notification"
	OpMarkRead           = "mark_notification_read"
	OpMarkAllRead        = "mark_all_notifications_read"
	OpAddActivity        = "add_activity"
	OpSendMessage        = "send_message"
	OpReplaceCollections = "replace_collections"
)

// Sink receives collection snapshots to persist.
type Sink interface {
	Save(key string, value any)
}

// ChangeHook is called after an operation was applied.
type ChangeHook func(ctx context.Context, op, referenceID string, changed []Collection)

type Option func(*Engine)

func WithSink(s Sink) Option {
	return func(e *Engine) { e.sink = s }
}

func WithChangeHook(h ChangeHook) Option {
	return func(e *Engine) { e.hook = h }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces uuid.NewString for generated ids.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

type Engine struct {
	mu    sync.RWMutex
	state State

	sink  Sink
	hook  ChangeHook
	now   func() time.Time
	newID func() string
	log   logging.Logger
}

// New builds an engine that owns a private copy of initial.
func New(initial State, opts ...Option) *Engine {
	e := &Engine{
		state: initial.Clone(),
		now:   time.Now,
		newID: uuid.NewString,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "pipeline")
	return e
}

// commit persists the changed collections and fires the change hook. It
// must be called with e.mu held for writing; the hook runs after unlock via
// the returned func.
func (e *Engine) commit(ctx context.Context, op, ref string, changed ...Collection) func() {
	if e.sink != nil {
		for _, c := range changed {
			e.sink.Save(c.Key(), e.state.Value(c))
		}
	}
	hook := e.hook
	return func() {
		if hook != nil {
			hook(ctx, op, ref, changed)
		}
	}
}

// Replace swaps in a new state wholesale, e.g. after reloading from the
// durable store. Nothing is persisted.
func (e *Engine) Replace(ctx context.Context, s State) {
	e.mu.Lock()
	e.state = s.Clone()
	hook := e.hook
	e.mu.Unlock()

	if hook != nil {
		hook(ctx, OpReplaceCollections, "", AllCollections)
	}
}

// Snapshot returns a deep copy of the whole state.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

func (e *Engine) Applicants() []models.Person {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.ClonePeople(e.state.Applicants)
}

func (e *Engine) Selected() []models.Person {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.ClonePeople(e.state.Selected)
}

func (e *Engine) Rejected() []models.Person {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.ClonePeople(e.state.Rejected)
}

func (e *Engine) Recruited() []models.Person {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.ClonePeople(e.state.Recruited)
}

func (e *Engine) Openings() []models.Opening {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CloneOpenings(e.state.Openings)
}

func (e *Engine) Notifications() []models.Notification {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CloneNotifications(e.state.Notifications)
}

func (e *Engine) Activity() []models.Activity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CloneActivity(e.state.Activity)
}

func (e *Engine) Chats() map[string][]models.Message {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CloneChats(e.state.Chats)
}

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}
