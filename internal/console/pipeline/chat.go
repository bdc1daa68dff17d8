package pipeline

import (
	"context"

	"github.com/dmitrijs2005/placementdesk/internal/console/models"
)

// SendMessage appends a company message to the thread for personID,
// creating the thread when needed. personID is not checked against the
// pipeline collections.
func (e *Engine) SendMessage(ctx context.Context, personID string, draft models.MessageDraft) models.Message {
	e.mu.Lock()
	m := models.Message{
		ID:   models.MessageID(e.newID()),
		From: models.SenderCompany,
		Text: draft.Text,
		Time: e.now().Format(timeLayout),
	}
	if draft.File != nil {
		f := *draft.File
		m.File = &f
	}
	if e.state.Chats == nil {
		e.state.Chats = make(map[string][]models.Message)
	}
	e.state.Chats[personID] = append(e.state.Chats[personID], m)

	done := e.commit(ctx, OpSendMessage, personID, Chats)
	e.mu.Unlock()
	done()
	return m.Clone()
}

// Messages returns the thread for personID, or an empty slice.
func (e *Engine) Messages(personID string) []models.Message {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return models.CloneThread(e.state.Chats[personID])
}
