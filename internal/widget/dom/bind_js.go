//go:build js && wasm

package dom

import (
	"context"
	"log"
	"strconv"
	"syscall/js"

	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/widget"
	"github.com/louisbranch/citymap/internal/widget/templates"
)

// Binding owns the js callbacks wired to the document. Release them with
// Close when the widget shuts down.
type Binding struct {
	ctx        context.Context
	controller *widget.Controller
	view       *View
	logger     *log.Logger
	funcs      []js.Func
}

// Session reads the acting user from the host globals.
func Session() citymap.Session {
	global := js.Global()
	return ParseSession(globalString(global.Get(GlobalUserID)), globalString(global.Get(GlobalRole)))
}

func globalString(v js.Value) string {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return strconv.Itoa(v.Int())
	default:
		return ""
	}
}

// Districts reads every .district element into cache records. Elements with
// unusable ids are logged and skipped.
func (v *View) Districts() []citymap.District {
	var out []citymap.District
	v.each("."+ClassDistrict, func(el js.Value) {
		data := map[string]string{}
		dataset := el.Get("dataset")
		for _, key := range []string{"id", "number", "name", "info", "status", "color"} {
			if value := dataset.Get(key); value.Type() == js.TypeString {
				data[key] = value.String()
			}
		}
		var classes []string
		list := el.Get("classList")
		for i := 0; i < list.Length(); i++ {
			classes = append(classes, list.Index(i).String())
		}
		d, err := ParseDistrict(data, classes)
		if err != nil {
			v.logger.Printf("skip district element: err=%v", err)
			return
		}
		out = append(out, d)
	})
	return out
}

// Bind registers the controller's event handlers on the document.
func Bind(ctx context.Context, controller *widget.Controller, view *View, logger *log.Logger) *Binding {
	if logger == nil {
		logger = log.Default()
	}
	b := &Binding{ctx: ctx, controller: controller, view: view, logger: logger}

	view.each("."+ClassDistrict, func(el js.Value) {
		b.listen(el, "click", false, func(event js.Value) func() {
			id := districtID(el)
			trigger := widget.TriggerPrimary
			if event.Get("ctrlKey").Bool() || event.Get("metaKey").Bool() {
				trigger = widget.TriggerModified
			}
			return func() { controller.Activate(ctx, id, trigger) }
		})
		b.listen(el, "contextmenu", true, func(js.Value) func() {
			id := districtID(el)
			return func() { controller.Activate(ctx, id, widget.TriggerContext) }
		})
	})

	if el, ok := view.byID(IDEditButton); ok {
		b.listen(el, "click", false, func(js.Value) func() { return controller.EditSelected })
	}
	if el, ok := view.byID(IDOverlay); ok {
		b.listen(el, "click", false, func(js.Value) func() { return controller.CloseEdit })
	}
	if el, ok := view.byID(IDEditPanel); ok {
		b.listen(el, "submit", true, func(js.Value) func() {
			input := b.editInput()
			return func() { b.saveEdit(input) }
		})
	}
	if el, ok := view.byID(IDGuildsList); ok {
		b.listen(el, "click", false, func(event js.Value) func() {
			id, ok := actionID(event, templates.ActionViewGuild, templates.AttrGuildID)
			if !ok {
				return nil
			}
			return func() { controller.OpenGuild(id) }
		})
	}
	if el, ok := view.byID(IDNotesList); ok {
		b.listen(el, "click", false, func(event js.Value) func() {
			if id, ok := actionID(event, templates.ActionEditNote, templates.AttrNoteID); ok {
				return func() { controller.BeginNoteEdit(citymap.NoteID(id)) }
			}
			if id, ok := actionID(event, templates.ActionDeleteNote, templates.AttrNoteID); ok {
				return func() { controller.DeleteNote(ctx, citymap.NoteID(id)) }
			}
			return nil
		})
	}
	if textarea, ok := view.byID(IDNoteContent); ok {
		section := textarea.Call("closest", SelectorCompose)
		if !section.IsNull() {
			if submit := section.Call("querySelector", SelectorSubmit); !submit.IsNull() {
				b.listen(submit, "click", true, func(js.Value) func() {
					content := textarea.Get("value").String()
					return func() { controller.SubmitNote(ctx, content) }
				})
			}
			if cancel := section.Call("querySelector", SelectorCancel); !cancel.IsNull() {
				b.listen(cancel, "click", true, func(js.Value) func() { return controller.CancelNoteEdit })
			}
		}
	}

	b.listen(view.doc, "click", false, func(event js.Value) func() {
		target := event.Get("target")
		if target.Type() != js.TypeObject || !target.Get("closest").Truthy() {
			return nil
		}
		for _, selector := range []string{"." + ClassDistrict, SelectorPanel, "#" + IDOverlay, "#" + IDEditPanel} {
			if !target.Call("closest", selector).IsNull() {
				return nil
			}
		}
		return controller.ClickOutside
	})
	return b
}

// listen registers handler for event on el. handler runs synchronously to
// read event state and returns the controller work, which runs on its own
// goroutine so js callbacks never block.
func (b *Binding) listen(el js.Value, event string, preventDefault bool, handler func(js.Value) func()) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var evt js.Value
		if len(args) > 0 {
			evt = args[0]
			if preventDefault {
				evt.Call("preventDefault")
			}
		}
		var work func()
		Guard(b.logger, event, func() { work = handler(evt) })
		if work == nil {
			return nil
		}
		go Guard(b.logger, event, work)
		return nil
	})
	b.funcs = append(b.funcs, fn)
	el.Call("addEventListener", event, fn)
}

func (b *Binding) editInput() widget.EditInput {
	value := func(id string) string {
		if el, ok := b.view.byID(id); ok {
			return el.Get("value").String()
		}
		return ""
	}
	return widget.EditInput{
		Name:   value(IDEditName),
		Info:   value(IDEditInfo),
		Status: value(IDEditStatus),
		Color:  value(IDEditColor),
	}
}

func (b *Binding) saveEdit(input widget.EditInput) {
	id := b.controller.State().Editing
	b.controller.SaveEdit(b.ctx, input)
	if d, ok := b.controller.District(id); ok {
		b.view.WriteDistrict(d)
	}
}

// Close releases every registered js callback.
func (b *Binding) Close() {
	for _, fn := range b.funcs {
		fn.Release()
	}
	b.funcs = nil
}

func districtID(el js.Value) citymap.DistrictID {
	id, _ := strconv.Atoi(el.Get("dataset").Get("id").String())
	return citymap.DistrictID(id)
}

func actionID(event js.Value, action string, attr string) (int, bool) {
	target := event.Get("target")
	if target.Type() != js.TypeObject {
		return 0, false
	}
	el := target.Call("closest", "["+templates.AttrAction+`="`+action+`"]`)
	if el.IsNull() {
		return 0, false
	}
	id, err := strconv.Atoi(el.Call("getAttribute", attr).String())
	if err != nil {
		return 0, false
	}
	return id, true
}
