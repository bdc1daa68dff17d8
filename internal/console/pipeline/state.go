package pipeline

import (
	"github.com/dmitrijs2005/placementdesk/internal/common"
	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

// Collection names one independently persisted part of the state.
type Collection string

const (
	Applicants    Collection = "applicants"
	Selected      Collection = "selected"
	Rejected      Collection = "rejected"
	Recruited     Collection = "recruited"
	Openings      Collection = "openings"
	Notifications Collection = "notifications"
	Chats         Collection = "chats"
	Activity      Collection = "activity"
)

// AllCollections lists every collection in persistence order.
var AllCollections = []Collection{
	Applicants, Selected, Rejected, Recruited, Openings, Notifications, Chats, Activity,
}

// Key is the durable-store key, e.g. "company_applicants".
func (c Collection) Key() string {
	return common.CollectionKey(string(c))
}

// State is the full set of console collections.
type State struct {
	Applicants    []models.Person
	Selected      []models.Person
	Rejected      []models.Person
	Recruited     []models.Person
	Openings      []models.Opening
	Notifications []models.Notification
	Activity      []models.Activity
	Chats         map[string][]models.Message
}

// Clone deep-copies every collection; nil collections become empty.
func (s State) Clone() State {
	return State{
		Applicants:    models.ClonePeople(s.Applicants),
		Selected:      models.ClonePeople(s.Selected),
		Rejected:      models.ClonePeople(s.Rejected),
		Recruited:     models.ClonePeople(s.Recruited),
		Openings:      models.CloneOpenings(s.Openings),
		Notifications: models.CloneNotifications(s.Notifications),
		Activity:      models.CloneActivity(s.Activity),
		Chats:         models.CloneChats(s.Chats),
	}
}

// Value returns the snapshot stored under c.
func (s State) Value(c Collection) any {
	switch c {
	case Applicants:
		return s.Applicants
	case Selected:
		return s.Selected
	case Rejected:
		return s.Rejected
	case Recruited:
		return s.Recruited
	case Openings:
		return s.Openings
	case Notifications:
		return s.Notifications
	case Chats:
		return s.Chats
	case Activity:
		return s.Activity
	}
	return nil
}

// ByKey maps every durable key to its collection snapshot.
func (s State) ByKey() map[string]any {
	out := make(map[string]any, len(AllCollections))
	for _, c := range AllCollections {
		out[c.Key()] = s.Value(c)
	}
	return out
}

// Conflicts returns ids found in more than one person collection. A
// healthy state has none; a partially persisted transition can leave one
// behind after reload.
func Conflicts(s State) []string {
	seen := make(map[string]int)
	var dup []string
	for _, group := range [][]models.Person{s.Applicants, s.Selected, s.Rejected, s.Recruited} {
		for _, p := range group {
			seen[p.ID]++
			if seen[p.ID] == 2 {
				dup = append(dup, p.ID)
			}
		}
	}
	return dup
}
