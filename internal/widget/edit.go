package widget

import (
	"context"

	"github.com/louisbranch/citymap/internal/citymap"
)

func editForm(d citymap.District) EditForm {
	return EditForm{
		DistrictID: d.ID,
		Name:       d.Name,
		Info:       d.Info,
		Status:     d.Status,
		Color:      d.ColorOrDefault(),
		ShowColor:  !d.NoColor,
	}
}

func shapeView(d citymap.District) ShapeView {
	shape := ShapeView{
		DistrictID: d.ID,
		Label:      d.DisplayName(),
		ApplyColor: !d.NoColor,
	}
	if !shape.ApplyColor {
		return shape
	}
	if d.IsSealed() {
		shape.Sealed = true
		return shape
	}
	shape.Fill = d.Color
	return shape
}

// openEditLocked shows the edit panel for d. Callers hold c.mu.
func (c *Controller) openEditLocked(d citymap.District) {
	c.state.OpenEdit(d.ID)
	c.view.OpenEditPanel(editForm(d))
	c.view.SetSaving(c.saving[d.ID])
}

// EditSelected opens the edit panel for the selected district.
func (c *Controller) EditSelected() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.HasSelection() {
		return
	}
	d, ok := c.districts[c.state.Selected]
	if !ok {
		return
	}
	c.openEditLocked(d)
}

// CloseEdit closes the edit panel. Selection is kept.
func (c *Controller) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.CloseEdit()
	c.view.CloseEditPanel()
}

// SaveEdit persists the edit panel's fields for the district being edited.
// A second save for the same district while one is in flight is ignored.
func (c *Controller) SaveEdit(ctx context.Context, input EditInput) {
	ctx = withActionID(ctx)
	c.mu.Lock()
	id := c.state.Editing
	d, ok := c.districts[id]
	if !ok || c.saving[id] {
		c.mu.Unlock()
		return
	}
	update := citymap.Update{Name: input.Name, Info: input.Info, Status: input.Status}
	if !d.NoColor {
		color := input.Color
		update.Color = &color
	}
	c.saving[id] = true
	c.view.SetSaving(true)
	c.mu.Unlock()

	err := c.api.UpdateDistrict(ctx, id, update)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.saving, id)
	if c.state.Editing == id {
		c.view.SetSaving(false)
	}
	if err != nil {
		c.logger.Printf("save district failed: district=%d err=%v", id, err)
		c.view.Alert(c.text.DistrictSaveFailed(err))
		return
	}

	saved := c.districts[id].Apply(update)
	c.districts[id] = saved
	c.view.UpdateDistrictShape(shapeView(saved))
	if c.state.Selected == id {
		c.renderDetailLocked(ctx, saved)
	}
	if c.state.Editing == id {
		c.state.CloseEdit()
		c.view.CloseEditPanel()
	}
}
