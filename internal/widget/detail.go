package widget

import (
	"context"

	"github.com/louisbranch/citymap/internal/citymap"
)

func detailView(d citymap.District, text Copy) DetailView {
	return DetailView{
		DistrictID: d.ID,
		Name:       d.Name,
		Status:     d.Status,
		StatusLine: text.StatusLine(d.Status),
		Info:       d.Info,
		Accent:     d.AccentColor(),
	}
}

// renderDetailLocked shows d in the detail panel and starts a new generation
// of guild and notes loads. Switching districts empties the guild and notes
// areas until the loads land; re-rendering the shown district keeps them,
// along with any text in the compose area. Callers hold c.mu.
func (c *Controller) renderDetailLocked(ctx context.Context, d citymap.District) {
	c.generation++
	gen := c.generation
	if c.shown != d.ID {
		c.shown = d.ID
		c.notes = nil
		c.compose = ComposeState{}
		c.view.HideGuilds()
		c.view.ShowNotes(c.notesViewLocked(true, ""))
	}

	c.view.ShowDetail(detailView(d, c.text))

	id := d.ID
	c.spawn(func() { c.loadGuilds(ctx, gen, id) })
	c.spawn(func() { c.loadNotes(ctx, gen, id, false) })
}
