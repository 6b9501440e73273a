// Package dom binds the widget controller to the host page under js/wasm.
// Parsing and panic handling live in untagged files so they test on any
// platform.
package dom

// Host element ids.
const (
	IDOverlay         = "overlay"
	IDEditPanel       = "edit-panel"
	IDEditName        = "edit-name"
	IDEditInfo        = "edit-info"
	IDEditStatus      = "edit-status"
	IDEditColor       = "edit-type"
	IDDistrictName    = "district-name"
	IDDistrictInfo    = "district-info"
	IDDistrictStatus  = "district-status"
	IDDefaultContent  = "default-content"
	IDDistrictDetails = "district-details"
	IDGuildsSection   = "guilds-section"
	IDGuildsList      = "guilds-list"
	IDNotesList       = "player-notes-list"
	IDNoteContent     = "new-note-content"
	IDEditButton      = "edit-btn"
)

// Host classes and selectors.
const (
	ClassDistrict   = "district"
	ClassNoColor    = "mere"
	ClassSealed     = "sealed"
	SelectorPanel   = ".info-panel"
	SelectorLabel   = ".district-label"
	SelectorGroup   = ".form-group"
	SelectorCompose = ".add-note-section"
	SelectorSubmit  = ".add-note-btn"
	SelectorCancel  = ".cancel-note-btn"
)

// District strokes.
const (
	StrokeDefault       = "#2d3748"
	StrokeDefaultWidth  = "1"
	StrokeSelected      = "#63b3ed"
	StrokeSelectedWidth = "3"
)

// Host globals carrying the acting user.
const (
	GlobalUserID = "currentUserId"
	GlobalRole   = "currentUserRole"
)
