package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Sender string

const (
	SenderStudent Sender = "student"
	SenderCompany Sender = "company"
)

// FileMeta describes an attachment sent with a chat message.
type FileMeta struct {
	Name string `json:"name"`
	Size string `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// MessageID is always encoded as a string. Stored threads may hold
// numeric ids (millisecond timestamps); those decode to their decimal form.
type MessageID string

func (id *MessageID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		*id = MessageID(value)
	case json.Number:
		*id = MessageID(value.String())
	case nil:
		*id = ""
	default:
		return fmt.Errorf("invalid message id %s", b)
	}
	return nil
}

type Message struct {
	ID   MessageID `json:"id"`
	From Sender    `json:"from"`
	Text string    `json:"text"`
	Time string    `json:"time"`
	Read bool      `json:"read"`
	File *FileMeta `json:"file"`
}

type MessageDraft struct {
	Text string
	File *FileMeta
}

func (m Message) Clone() Message {
	if m.File != nil {
		f := *m.File
		m.File = &f
	}
	return m
}

func CloneThread(in []Message) []Message {
	out := make([]Message, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CloneChats deep-copies the thread map keyed by person id.
func CloneChats(in map[string][]Message) map[string][]Message {
	out := make(map[string][]Message, len(in))
	for id, thread := range in {
		out[id] = CloneThread(thread)
	}
	return out
}
