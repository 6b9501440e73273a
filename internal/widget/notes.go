package widget

import (
	"context"
	"strings"

	"github.com/louisbranch/citymap/internal/citymap"
)

// loadNotes lists the notes for id. reset clears the compose text; otherwise
// the text is kept unless an edit in progress lost its note.
func (c *Controller) loadNotes(ctx context.Context, gen uint64, id citymap.DistrictID, reset bool) {
	notes, err := c.api.ListNotes(ctx, citymap.DistrictTarget(id))

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	if err != nil {
		c.logger.Printf("load notes failed: district=%d err=%v", id, err)
		c.notes = nil
		c.compose = ComposeState{}
		c.view.ShowNotes(c.notesViewLocked(reset, ""))
		return
	}

	prev := c.compose
	next := computeCompose(c.session, notes)
	if !reset && prev.Mode == ComposeEditing {
		if note, ok := citymap.FindNote(notes, prev.NoteID); ok && c.session.CanModify(note) {
			next = prev
		}
	}
	c.notes = notes
	c.compose = next
	c.view.ShowNotes(c.notesViewLocked(reset || (prev.Mode == ComposeEditing && next != prev), ""))
}

func (c *Controller) notesViewLocked(setContent bool, content string) NotesView {
	view := NotesView{
		Items:      make([]NoteItem, 0, len(c.notes)),
		EmptyLabel: c.text.NoNotes(),
		Compose:    c.compose.view(c.text),
	}
	view.Compose.SetContent = setContent
	view.Compose.Content = content
	view.Compose.Submitting = c.submitting[citymap.DistrictTarget(c.shown)]
	for _, note := range c.notes {
		item := NoteItem{
			ID:       note.ID,
			Username: note.Username,
			Content:  note.Content,
		}
		if c.session.CanModify(note) {
			item.CanModify = true
			item.EditLabel = c.text.Edit()
			item.DeleteLabel = c.text.Delete()
		}
		view.Items = append(view.Items, item)
	}
	return view
}

// SubmitNote creates or updates the session user's note on the selected
// district, depending on the compose state. Blank content is dropped, and so
// is a submit while another one for the same district is in flight.
func (c *Controller) SubmitNote(ctx context.Context, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	ctx = withActionID(ctx)

	c.mu.Lock()
	id := c.state.Selected
	target := citymap.DistrictTarget(id)
	compose := c.compose
	if id == 0 || compose.Mode == ComposeHidden || c.submitting[target] {
		c.mu.Unlock()
		return
	}
	c.submitting[target] = true
	c.view.ShowNotes(c.notesViewLocked(false, ""))
	c.mu.Unlock()

	var err error
	switch compose.Mode {
	case ComposeNew:
		_, err = c.api.CreateNote(ctx, target, content)
	case ComposeEditing:
		_, err = c.api.UpdateNote(ctx, compose.NoteID, content)
	}

	c.mu.Lock()
	delete(c.submitting, target)
	gen := c.generation
	shown := c.shown == id
	if err != nil && shown {
		c.view.ShowNotes(c.notesViewLocked(false, ""))
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Printf("save note failed: target=%s mode=%s err=%v", target, compose.Mode, err)
		c.view.Alert(c.text.NoteSaveFailed(err))
		return
	}
	if shown {
		c.loadNotes(ctx, gen, id, true)
	}
}

// BeginNoteEdit switches the compose area to edit id, preloading its content.
func (c *Controller) BeginNoteEdit(id citymap.NoteID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	note, ok := citymap.FindNote(c.notes, id)
	if !ok || !c.session.CanModify(note) {
		return
	}
	c.compose = ComposeState{Mode: ComposeEditing, NoteID: id}
	c.view.ShowNotes(c.notesViewLocked(true, note.Content))
}

// CancelNoteEdit leaves note editing without touching the server.
func (c *Controller) CancelNoteEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.compose.Mode != ComposeEditing {
		return
	}
	c.compose = computeCompose(c.session, c.notes)
	c.view.ShowNotes(c.notesViewLocked(true, ""))
}

// DeleteNote removes id after the user confirms, then reloads the list.
func (c *Controller) DeleteNote(ctx context.Context, id citymap.NoteID) {
	c.mu.Lock()
	note, ok := citymap.FindNote(c.notes, id)
	target := c.state.Selected
	gen := c.generation
	c.mu.Unlock()
	if !ok || !c.session.CanModify(note) {
		return
	}

	if !c.view.Confirm(c.text.ConfirmDeleteNote()) {
		return
	}
	ctx = withActionID(ctx)
	if err := c.api.DeleteNote(ctx, id); err != nil {
		c.logger.Printf("delete note failed: note=%d err=%v", id, err)
		c.view.Alert(c.text.NoteDeleteFailed(err))
		return
	}
	c.loadNotes(ctx, gen, target, false)
}
