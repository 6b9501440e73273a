package mapapi

import (
	"context"
	"net/http"

	"github.com/louisbranch/citymap/internal/citymap"
)

type noteWire struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

type createNoteRequest struct {
	TargetType string `json:"target_type"`
	TargetID   int    `json:"target_id"`
	Content    string `json:"content"`
}

type updateNoteRequest struct {
	Content string `json:"content"`
}

func (w noteWire) note() citymap.Note {
	return citymap.Note{
		ID:       citymap.NoteID(w.ID),
		UserID:   w.UserID,
		Username: w.Username,
		Content:  w.Content,
	}
}

// ListNotes fetches the notes for target in server order.
func (c *Client) ListNotes(ctx context.Context, target citymap.Target) ([]citymap.Note, error) {
	const op = "ListNotes"
	resp, err := c.send(ctx, op, http.MethodGet, TargetNotesPath(target), nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, rejected(op, resp)
	}
	var wire []noteWire
	if err := decode(op, resp, &wire); err != nil {
		return nil, err
	}
	notes := make([]citymap.Note, 0, len(wire))
	for _, w := range wire {
		notes = append(notes, w.note())
	}
	return notes, nil
}

// CreateNote adds a note to target. Success is signalled by the HTTP status;
// the returned note is zero when the server sends no body.
func (c *Client) CreateNote(ctx context.Context, target citymap.Target, content string) (citymap.Note, error) {
	const op = "CreateNote"
	resp, err := c.send(ctx, op, http.MethodPost, NotesPath, createNoteRequest{
		TargetType: string(target.Type),
		TargetID:   target.ID,
		Content:    content,
	})
	if err != nil {
		return citymap.Note{}, err
	}
	return noteResult(op, resp)
}

// UpdateNote replaces a note's content.
func (c *Client) UpdateNote(ctx context.Context, id citymap.NoteID, content string) (citymap.Note, error) {
	const op = "UpdateNote"
	resp, err := c.send(ctx, op, http.MethodPut, NotePath(id), updateNoteRequest{Content: content})
	if err != nil {
		return citymap.Note{}, err
	}
	return noteResult(op, resp)
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id citymap.NoteID) error {
	const op = "DeleteNote"
	resp, err := c.send(ctx, op, http.MethodDelete, NotePath(id), nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return rejected(op, resp)
	}
	return nil
}

func noteResult(op string, resp response) (citymap.Note, error) {
	if !resp.ok() {
		return citymap.Note{}, rejected(op, resp)
	}
	if resp.empty() {
		return citymap.Note{}, nil
	}
	var wire struct {
		noteWire
		Error string `json:"error"`
	}
	if err := decode(op, resp, &wire); err != nil {
		// Status already reported success.
		return citymap.Note{}, nil
	}
	if wire.Error != "" {
		return citymap.Note{}, &Error{Kind: KindRejected, Op: op, Status: resp.status, Message: wire.Error}
	}
	return wire.note(), nil
}
