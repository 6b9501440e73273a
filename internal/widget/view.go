package widget

import "github.com/louisbranch/citymap/internal/citymap"

// View renders controller state into the host page. Implementations must
// not call back into the Controller synchronously.
type View interface {
	ShowPlaceholder()
	ShowDetail(DetailView)
	// HighlightDistrict resets every district stroke and emphasizes id. Zero
	// only resets.
	HighlightDistrict(id citymap.DistrictID)
	SetEditTriggerVisible(visible bool)

	OpenEditPanel(EditForm)
	CloseEditPanel()
	SetSaving(saving bool)
	UpdateDistrictShape(ShapeView)

	ShowGuilds([]GuildCard)
	HideGuilds()

	ShowNotes(NotesView)

	Alert(message string)
	Confirm(message string) bool
	Navigate(url string)
}

// DetailView is the populated district detail block.
type DetailView struct {
	DistrictID citymap.DistrictID
	Name       string
	Status     string
	StatusLine string
	// Info is raw multi-line text; renderers turn newlines into line breaks.
	Info   string
	Accent string
}

// EditForm prefills the district edit panel.
type EditForm struct {
	DistrictID citymap.DistrictID
	Name       string
	Info       string
	Status     string
	Color      string
	ShowColor  bool
}

// EditInput is what the user submitted from the edit panel.
type EditInput struct {
	Name   string
	Info   string
	Status string
	Color  string
}

// ShapeView describes how a district shape and label look after a save.
type ShapeView struct {
	DistrictID citymap.DistrictID
	Label      string
	// ApplyColor is false for districts without a color concept; Fill and
	// Sealed are meaningless then.
	ApplyColor bool
	// Fill is the literal fill, empty when Sealed.
	Fill   string
	Sealed bool
}

// Badge marks how a guild relates to the viewed district.
type Badge string

const (
	BadgeNone     Badge = ""
	BadgeLocation Badge = "location"
	BadgeGlobe    Badge = "globe"
)

// GuildCard is one guild preview.
type GuildCard struct {
	ID           int
	Name         string
	Description  string
	Accent       string
	Badge        Badge
	BadgeLabel   string
	DetailsLabel string
	DetailsURL   string
}

// NotesView is the notes section: list plus compose area.
type NotesView struct {
	Items      []NoteItem
	EmptyLabel string
	Compose    ComposeView
}

// NoteItem is one rendered note.
type NoteItem struct {
	ID          citymap.NoteID
	Username    string
	Content     string
	CanModify   bool
	EditLabel   string
	DeleteLabel string
}

// ComposeView drives the note compose area.
type ComposeView struct {
	Visible     bool
	Editing     bool
	SubmitLabel string
	CancelLabel string
	// SetContent replaces the textarea text with Content. When false the
	// textarea keeps whatever the user typed.
	SetContent bool
	Content    string
	// Submitting disables the submit button while a save is in flight.
	Submitting bool
}
