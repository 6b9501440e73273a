package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/citymap/internal/widget"
)

// NotesList renders the notes for #player-notes-list, in the given order.
func NotesList(view widget.NotesView) templ.Component {
	if len(view.Items) == 0 {
		return element("p", attrs("class", "player-notes-empty"), text(view.EmptyLabel))
	}
	items := make([]templ.Component, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, note(item))
	}
	return fragment(items...)
}

func note(item widget.NoteItem) templ.Component {
	id := strconv.Itoa(int(item.ID))
	header := []templ.Component{element("strong", nil, text(item.Username))}
	if item.CanModify {
		header = append(header, element("span", attrs("class", "player-note-actions"),
			element("button",
				attrs("type", "button", "class", "note-edit-btn", AttrAction, ActionEditNote, AttrNoteID, id),
				text(item.EditLabel),
			),
			element("button",
				attrs("type", "button", "class", "note-delete-btn", AttrAction, ActionDeleteNote, AttrNoteID, id),
				text(item.DeleteLabel),
			),
		))
	}
	return element("div", attrs("class", "player-note", AttrNoteID, id),
		element("div", attrs("class", "player-note-header"), header...),
		element("div", attrs("class", "player-note-content"), Multiline(item.Content)),
	)
}
