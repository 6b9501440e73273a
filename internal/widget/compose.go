package widget

import "github.com/louisbranch/citymap/internal/citymap"

// ComposeMode is the note compose area's state.
type ComposeMode int

const (
	ComposeHidden ComposeMode = iota
	ComposeNew
	ComposeEditing
)

func (m ComposeMode) String() string {
	switch m {
	case ComposeNew:
		return "composing_new"
	case ComposeEditing:
		return "editing_existing"
	default:
		return "hidden"
	}
}

// ComposeState is Hidden, ComposingNew, or EditingExisting(NoteID).
type ComposeState struct {
	Mode   ComposeMode
	NoteID citymap.NoteID
}

// computeCompose derives the resting compose state from the loaded notes.
func computeCompose(session citymap.Session, notes []citymap.Note) ComposeState {
	if !session.CanAuthorNotes() || session.OwnsNoteIn(notes) {
		return ComposeState{Mode: ComposeHidden}
	}
	return ComposeState{Mode: ComposeNew}
}

func (c ComposeState) view(text Copy) ComposeView {
	switch c.Mode {
	case ComposeNew:
		return ComposeView{Visible: true, SubmitLabel: text.AddNote()}
	case ComposeEditing:
		return ComposeView{
			Visible:     true,
			Editing:     true,
			SubmitLabel: text.UpdateNote(),
			CancelLabel: text.Cancel(),
		}
	default:
		return ComposeView{}
	}
}
