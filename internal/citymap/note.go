package citymap

import "strconv"

// TargetType names the kind of record a note is attached to.
type TargetType string

// TargetDistrict attaches a note to a district.
const TargetDistrict TargetType = "district"

// Target scopes a note list.
type Target struct {
	Type TargetType
	ID   int
}

// DistrictTarget returns the note target for a district.
func DistrictTarget(id DistrictID) Target {
	return Target{Type: TargetDistrict, ID: int(id)}
}

// String renders the target as "type/id".
func (t Target) String() string {
	return string(t.Type) + "/" + strconv.Itoa(t.ID)
}

// NoteID identifies a player note. Zero means none.
type NoteID int

// Note is a free-text player note.
type Note struct {
	ID       NoteID
	UserID   int
	Username string
	Content  string
}

// FindNote returns the note with id from notes.
func FindNote(notes []Note, id NoteID) (Note, bool) {
	for _, note := range notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}
