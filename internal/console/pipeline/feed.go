package pipeline

import (
	"context"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

// AddNotification prepends a new unread notification.
func (e *Engine) AddNotification(ctx context.Context, draft models.NotificationDraft) models.Notification {
	e.mu.Lock()
	n := e.notifyLocked(draft)
	done := e.commit(ctx, OpAddNotification, draft.ReferenceID, Notifications)
	e.mu.Unlock()
	done()
	return n
}

func (e *Engine) notifyLocked(draft models.NotificationDraft) models.Notification {
	n := models.Notification{
		ID:          "n-" + e.newID(),
		Type:        draft.Type,
		Title:       draft.Title,
		Message:     draft.Message,
		Time:        justNow,
		ReferenceID: draft.ReferenceID,
	}
	e.state.Notifications = append([]models.Notification{n}, e.state.Notifications...)
	return n
}

// MarkNotificationRead marks a single notification read. It reports false
// when id is unknown or the notification was already read.
func (e *Engine) MarkNotificationRead(ctx context.Context, id string) bool {
	e.mu.Lock()
	changed := false
	for i := range e.state.Notifications {
		if e.state.Notifications[i].ID == id && !e.state.Notifications[i].Read {
			e.state.Notifications[i].Read = true
			changed = true
		}
	}
	if !changed {
		e.mu.Unlock()
		return false
	}
	done := e.commit(ctx, OpMarkRead, id, Notifications)
	e.mu.Unlock()
	done()
	return true
}

// MarkAllNotificationsRead marks every notification read and returns how
// many were unread.
func (e *Engine) MarkAllNotificationsRead(ctx context.Context) int {
	e.mu.Lock()
	n := 0
	for i := range e.state.Notifications {
		if !e.state.Notifications[i].Read {
			e.state.Notifications[i].Read = true
			n++
		}
	}
	if n == 0 {
		e.mu.Unlock()
		return 0
	}
	done := e.commit(ctx, OpMarkAllRead, "", Notifications)
	e.mu.Unlock()
	done()
	return n
}

func (e *Engine) UnreadCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return countUnread(e.state.Notifications)
}

func countUnread(ns []models.Notification) int {
	n := 0
	for _, x := range ns {
		if !x.Read {
			n++
		}
	}
	return n
}

// AddActivity prepends an entry to the activity feed, keeping only the
// ActivityLimit most recent.
func (e *Engine) AddActivity(ctx context.Context, kind, description string) models.Activity {
	e.mu.Lock()
	a := e.recordLocked(kind, description)
	done := e.commit(ctx, OpAddActivity, "", Activity)
	e.mu.Unlock()
	done()
	return a
}

func (e *Engine) recordLocked(kind, description string) models.Activity {
	a := models.Activity{Type: kind, Description: description, Time: justNow}
	feed := make([]models.Activity, 0, ActivityLimit)
	feed = append(feed, a)
	for _, old := range e.state.Activity {
		if len(feed) == ActivityLimit {
			break
		}
		feed = append(feed, old)
	}
	e.state.Activity = feed
	return a
}
