package widget

import (
	"github.com/louisbranch/citymap/internal/mapapi"
	"golang.org/x/text/message"
)

// Copy resolves user-visible strings from the locale catalogs.
type Copy struct {
	p *message.Printer
}

// NewCopy wraps a printer from internal/platform/i18n.
func NewCopy(p *message.Printer) Copy {
	return Copy{p: p}
}

func (c Copy) StatusLine(status string) string {
	return c.p.Sprintf("map.district.status", status)
}

func (c Copy) NoDescription() string { return c.p.Sprintf("map.guild.no_description") }
func (c Copy) ViewDetails() string   { return c.p.Sprintf("map.guild.view_details") }
func (c Copy) Headquartered() string { return c.p.Sprintf("map.guild.headquartered") }
func (c Copy) Citywide() string      { return c.p.Sprintf("map.guild.citywide") }
func (c Copy) NoNotes() string       { return c.p.Sprintf("map.notes.empty") }
func (c Copy) AddNote() string       { return c.p.Sprintf("map.notes.add") }
func (c Copy) UpdateNote() string    { return c.p.Sprintf("map.notes.update") }
func (c Copy) Cancel() string        { return c.p.Sprintf("common.cancel") }
func (c Copy) Edit() string          { return c.p.Sprintf("common.edit") }
func (c Copy) Delete() string        { return c.p.Sprintf("common.delete") }

func (c Copy) ConfirmDeleteNote() string {
	return c.p.Sprintf("map.notes.delete_confirm")
}

// DistrictSaveFailed picks the alert for a failed district save: server text
// for application-level failures, a retry prompt for transport failures.
func (c Copy) DistrictSaveFailed(err error) string {
	switch mapapi.KindOf(err) {
	case mapapi.KindRejected, mapapi.KindNotFound:
		return c.p.Sprintf("map.district.update_failed", c.serverMessage(err))
	default:
		return c.p.Sprintf("map.district.update_retry")
	}
}

func (c Copy) NoteSaveFailed(err error) string {
	return c.p.Sprintf("map.notes.save_failed", c.serverMessage(err))
}

func (c Copy) NoteDeleteFailed(err error) string {
	return c.p.Sprintf("map.notes.delete_failed", c.serverMessage(err))
}

func (c Copy) serverMessage(err error) string {
	if msg := mapapi.ServerMessage(err); msg != "" {
		return msg
	}
	return c.p.Sprintf("common.unknown_error")
}
