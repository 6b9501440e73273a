//go:build js && wasm

package dom

import (
	"context"
	"log"
	"strconv"
	"syscall/js"

	"github.com/a-h/templ"
	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/widget"
	"github.com/louisbranch/citymap/internal/widget/templates"
)

// View implements widget.View against the live document.
type View struct {
	doc    js.Value
	win    js.Value
	logger *log.Logger
}

var _ widget.View = (*View)(nil)

// NewView binds to the global document.
func NewView(logger *log.Logger) *View {
	if logger == nil {
		logger = log.Default()
	}
	return &View{
		doc:    js.Global().Get("document"),
		win:    js.Global(),
		logger: logger,
	}
}

func (v *View) byID(id string) (js.Value, bool) {
	el := v.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

func (v *View) query(selector string) (js.Value, bool) {
	el := v.doc.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

func (v *View) each(selector string, fn func(js.Value)) {
	nodes := v.doc.Call("querySelectorAll", selector)
	for i := 0; i < nodes.Length(); i++ {
		fn(nodes.Index(i))
	}
}

func (v *View) setDisplay(id string, display string) {
	if el, ok := v.byID(id); ok {
		el.Get("style").Set("display", display)
	}
}

func (v *View) setText(id string, text string) {
	if el, ok := v.byID(id); ok {
		el.Set("textContent", text)
	}
}

func (v *View) setHTML(id string, c templ.Component) {
	el, ok := v.byID(id)
	if !ok {
		return
	}
	markup, err := templates.Render(context.Background(), c)
	if err != nil {
		v.logger.Printf("render fragment failed: target=%s err=%v", id, err)
		return
	}
	el.Set("innerHTML", markup)
}

func (v *View) district(id citymap.DistrictID) (js.Value, bool) {
	return v.query("." + ClassDistrict + `[data-id="` + strconv.Itoa(int(id)) + `"]`)
}

func (v *View) ShowPlaceholder() {
	v.setDisplay(IDDefaultContent, "block")
	v.setDisplay(IDDistrictDetails, "none")
}

func (v *View) ShowDetail(d widget.DetailView) {
	v.setText(IDDistrictName, d.Name)
	v.setHTML(IDDistrictInfo, templates.Multiline(d.Info))
	v.setText(IDDistrictStatus, d.StatusLine)
	if panel, ok := v.query(SelectorPanel); ok {
		panel.Get("style").Set("borderLeftColor", templates.SafeColor(d.Accent))
	}
	v.setDisplay(IDDefaultContent, "none")
	v.setDisplay(IDDistrictDetails, "block")
}

func (v *View) HighlightDistrict(id citymap.DistrictID) {
	selected := strconv.Itoa(int(id))
	v.each("."+ClassDistrict, func(el js.Value) {
		style := el.Get("style")
		if id != 0 && el.Get("dataset").Get("id").String() == selected {
			style.Set("stroke", StrokeSelected)
			style.Set("strokeWidth", StrokeSelectedWidth)
			return
		}
		style.Set("stroke", StrokeDefault)
		style.Set("strokeWidth", StrokeDefaultWidth)
	})
}

func (v *View) SetEditTriggerVisible(visible bool) {
	if visible {
		v.setDisplay(IDEditButton, "inline-block")
		return
	}
	v.setDisplay(IDEditButton, "none")
}

func (v *View) OpenEditPanel(form widget.EditForm) {
	fields := map[string]string{
		IDEditName:   form.Name,
		IDEditInfo:   form.Info,
		IDEditStatus: form.Status,
		IDEditColor:  form.Color,
	}
	for id, value := range fields {
		if el, ok := v.byID(id); ok {
			el.Set("value", value)
		}
	}
	if color, ok := v.byID(IDEditColor); ok {
		group := color.Call("closest", SelectorGroup)
		if !group.IsNull() {
			display := "block"
			if !form.ShowColor {
				display = "none"
			}
			group.Get("style").Set("display", display)
		}
	}
	v.setDisplay(IDOverlay, "block")
	v.setDisplay(IDEditPanel, "block")
}

func (v *View) CloseEditPanel() {
	v.setDisplay(IDOverlay, "none")
	v.setDisplay(IDEditPanel, "none")
}

func (v *View) SetSaving(saving bool) {
	v.each("#"+IDEditPanel+` button[type="submit"]`, func(el js.Value) {
		el.Set("disabled", saving)
	})
}

func (v *View) UpdateDistrictShape(shape widget.ShapeView) {
	el, ok := v.district(shape.DistrictID)
	if !ok {
		return
	}
	if shape.ApplyColor {
		classes := el.Get("classList")
		if shape.Sealed {
			classes.Call("add", ClassSealed)
			el.Get("style").Set("fill", "")
		} else {
			classes.Call("remove", ClassSealed)
			el.Get("style").Set("fill", templates.SafeColor(shape.Fill))
		}
	}
	label, ok := v.query(SelectorLabel + `[data-district-id="` + strconv.Itoa(int(shape.DistrictID)) + `"]`)
	if ok {
		label.Set("textContent", shape.Label)
	}
}

// WriteDistrict mirrors a saved district into its element's data attributes.
func (v *View) WriteDistrict(d citymap.District) {
	el, ok := v.district(d.ID)
	if !ok {
		return
	}
	dataset := el.Get("dataset")
	for key, value := range DistrictData(d) {
		dataset.Set(key, value)
	}
}

func (v *View) ShowGuilds(cards []widget.GuildCard) {
	v.setHTML(IDGuildsList, templates.GuildCards(cards))
	v.setDisplay(IDGuildsSection, "block")
}

func (v *View) HideGuilds() {
	v.setDisplay(IDGuildsSection, "none")
}

func (v *View) ShowNotes(notes widget.NotesView) {
	v.setHTML(IDNotesList, templates.NotesList(notes))

	textarea, ok := v.byID(IDNoteContent)
	if !ok {
		return
	}
	if notes.Compose.SetContent {
		textarea.Set("value", notes.Compose.Content)
	}
	section := textarea.Call("closest", SelectorCompose)
	if section.IsNull() {
		return
	}
	display := "none"
	if notes.Compose.Visible {
		display = "block"
	}
	section.Get("style").Set("display", display)
	if submit := section.Call("querySelector", SelectorSubmit); !submit.IsNull() {
		submit.Set("textContent", notes.Compose.SubmitLabel)
		submit.Set("disabled", notes.Compose.Submitting)
	}
	if cancel := section.Call("querySelector", SelectorCancel); !cancel.IsNull() {
		cancel.Set("textContent", notes.Compose.CancelLabel)
		cancelDisplay := "none"
		if notes.Compose.Editing {
			cancelDisplay = "inline-block"
		}
		cancel.Get("style").Set("display", cancelDisplay)
	}
}

func (v *View) Alert(message string) {
	v.win.Call("alert", message)
}

func (v *View) Confirm(message string) bool {
	return v.win.Call("confirm", message).Bool()
}

func (v *View) Navigate(url string) {
	v.win.Get("location").Set("href", url)
}
