package mapapi

import (
	"strconv"

	"github.com/louisbranch/citymap/internal/citymap"
)

const (
	DistrictsPath = "/api/districts"
	NotesPath     = "/api/notes"
	// GuildInfoPath is the page route holding guild details.
	GuildInfoPath = "/guild-info"
)

// DistrictPath returns the single-district endpoint.
func DistrictPath(id citymap.DistrictID) string {
	return DistrictsPath + "/" + strconv.Itoa(int(id))
}

// TargetNotesPath returns the note-list endpoint for a target.
func TargetNotesPath(target citymap.Target) string {
	return NotesPath + "/" + string(target.Type) + "/" + strconv.Itoa(target.ID)
}

// NotePath returns the single-note endpoint.
func NotePath(id citymap.NoteID) string {
	return NotesPath + "/" + strconv.Itoa(int(id))
}

// GuildInfoURL returns the guild detail route with the guild's fragment anchor.
func GuildInfoURL(base string, guildID int) string {
	if base == "" {
		base = GuildInfoPath
	}
	return base + "#guild-info-" + strconv.Itoa(guildID)
}
