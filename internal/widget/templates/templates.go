// Package templates renders the HTML fragments the browser binding swaps into
// the info panel. All user text is escaped.
package templates

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Delegated click targets inside rendered fragments.
const (
	AttrAction  = "data-action"
	AttrGuildID = "data-guild-id"
	AttrNoteID  = "data-note-id"

	ActionViewGuild  = "view-guild"
	ActionEditNote   = "edit-note"
	ActionDeleteNote = "delete-note"
)

var cssColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,%\s]+\)|hsla?\([0-9.,%\s]+\))$`)

// SafeColor returns color when it is a plain CSS color literal, empty
// otherwise.
func SafeColor(color string) string {
	color = strings.TrimSpace(color)
	if !cssColor.MatchString(color) {
		return ""
	}
	return color
}

// Render renders c to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Multiline escapes text and turns its line breaks into <br>.
func Multiline(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, multiline(text))
		return err
	})
}

func multiline(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = templ.EscapeString(line)
	}
	return strings.Join(lines, "<br>")
}

// attribute is one rendered name="value" pair. Values are escaped.
type attribute struct {
	name  string
	value string
}

func attrs(pairs ...string) []attribute {
	out := make([]attribute, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, attribute{name: pairs[i], value: pairs[i+1]})
	}
	return out
}

// element renders <tag attrs...>children</tag>.
func element(tag string, attributes []attribute, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<" + tag)
		for _, a := range attributes {
			b.WriteString(" " + a.name + `="` + templ.EscapeString(a.value) + `"`)
		}
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// text renders s escaped.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// fragment renders components back to back.
func fragment(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
