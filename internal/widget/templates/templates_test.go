package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/citymap/internal/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseFragment(t *testing.T, markup string) []*html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return nodes
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(nodes []*html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attrOf(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestMultilineEscapesAndBreaksLines(t *testing.T) {
	t.Parallel()

	got, err := Render(context.Background(), Multiline("<b>Docks</b>\r\nFish & salt\nend"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "&lt;b&gt;Docks&lt;/b&gt;<br>Fish &amp; salt<br>end"
	if got != want {
		t.Fatalf("Multiline() = %q, want %q", got, want)
	}
}

func TestSafeColor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"#a0aec0":                   "#a0aec0",
		" #FFF ":                    "#FFF",
		"red":                       "red",
		"rgb(1, 2, 3)":              "rgb(1, 2, 3)",
		"red; background: url(x)":   "",
		"#fff\" onclick=\"alert(1)": "",
		"":                          "",
	}
	for in, want := range tests {
		if got := SafeColor(in); got != want {
			t.Fatalf("SafeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGuildCardsMarkup(t *testing.T) {
	t.Parallel()

	cards := []widget.GuildCard{
		{ID: 1, Name: "Keepers <x>", Description: "Guard", Accent: "#f56565", Badge: widget.BadgeLocation, BadgeLabel: "Headquartered here", DetailsLabel: "View Details"},
		{ID: 2, Name: "Couriers", Description: "No description available.", Accent: "#a0aec0", Badge: widget.BadgeGlobe, BadgeLabel: "Operates citywide", DetailsLabel: "View Details"},
		{ID: 3, Name: "Drifters", Description: "Passing", DetailsLabel: "View Details"},
	}
	markup, err := Render(context.Background(), GuildCards(cards))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	nodes := parseFragment(t, markup)

	cardNodes := findAll(nodes, hasClass("guild-preview-card"))
	if len(cardNodes) != 3 {
		t.Fatalf("cards = %d, want 3", len(cardNodes))
	}
	var styles []string
	for _, n := range cardNodes {
		styles = append(styles, attrOf(n, "style"))
	}
	if diff := cmp.Diff([]string{"border-left: 4px solid #f56565", "border-left: 4px solid #a0aec0", ""}, styles); diff != "" {
		t.Fatalf("card styles mismatch (-want +got):\n%s", diff)
	}

	badges := findAll(nodes, hasClass("guild-badge"))
	var badgeClasses []string
	for _, n := range badges {
		badgeClasses = append(badgeClasses, attrOf(n, "class"))
	}
	if diff := cmp.Diff([]string{"guild-badge guild-badge-location", "guild-badge guild-badge-globe"}, badgeClasses); diff != "" {
		t.Fatalf("badges mismatch (-want +got):\n%s", diff)
	}

	headings := findAll(nodes, func(n *html.Node) bool { return n.DataAtom == atom.H4 })
	if got := textOf(headings[0]); got != "Keepers <x>" {
		t.Fatalf("heading text = %q, want escaped literal", got)
	}

	buttons := findAll(nodes, hasClass("guild-details-btn"))
	if len(buttons) != 3 {
		t.Fatalf("buttons = %d, want 3", len(buttons))
	}
	if attrOf(buttons[1], AttrAction) != ActionViewGuild || attrOf(buttons[1], AttrGuildID) != "2" {
		t.Fatalf("button attrs = %+v", buttons[1].Attr)
	}
}

func TestNotesListMarkup(t *testing.T) {
	t.Parallel()

	view := widget.NotesView{
		Items: []widget.NoteItem{
			{ID: 4, Username: "bree", Content: "line one\nline <two>"},
			{ID: 5, Username: "ada", Content: "mine", CanModify: true, EditLabel: "Edit", DeleteLabel: "Delete"},
		},
		EmptyLabel: "No notes yet.",
	}
	markup, err := Render(context.Background(), NotesList(view))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	nodes := parseFragment(t, markup)

	notes := findAll(nodes, hasClass("player-note"))
	if len(notes) != 2 || attrOf(notes[0], AttrNoteID) != "4" || attrOf(notes[1], AttrNoteID) != "5" {
		t.Fatalf("notes = %d, want 4 then 5", len(notes))
	}
	breaks := findAll([]*html.Node{notes[0]}, func(n *html.Node) bool { return n.DataAtom == atom.Br })
	if len(breaks) != 1 {
		t.Fatalf("line breaks = %d, want 1", len(breaks))
	}
	if got := textOf(notes[0]); !strings.Contains(got, "line <two>") {
		t.Fatalf("note text = %q, want escaped content", got)
	}

	actions := findAll(nodes, func(n *html.Node) bool { return attrOf(n, AttrAction) != "" })
	var got []string
	for _, n := range actions {
		got = append(got, attrOf(n, AttrAction)+":"+attrOf(n, AttrNoteID))
	}
	if diff := cmp.Diff([]string{"edit-note:5", "delete-note:5"}, got); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestNotesListEmpty(t *testing.T) {
	t.Parallel()

	markup, err := Render(context.Background(), NotesList(widget.NotesView{EmptyLabel: "No notes yet."}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := `<p class="player-notes-empty">No notes yet.</p>`; markup != want {
		t.Fatalf("NotesList() = %q, want %q", markup, want)
	}
}

func TestElementEscapesAttributesAndText(t *testing.T) {
	t.Parallel()

	got, err := Render(context.Background(), element("span", attrs("title", `a"b<c`), text("x & y"), fragment()))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := `<span title="a&#34;b&lt;c">x &amp; y</span>`; got != want {
		t.Fatalf("element() = %q, want %q", got, want)
	}
}
