package widget

import "github.com/louisbranch/citymap/internal/citymap"

// UIState tracks which district is selected and which is open in the edit
// panel. The two are independent: editing can target a district that was
// never selected.
type UIState struct {
	Selected citymap.DistrictID
	Editing  citymap.DistrictID
}

// Select marks id as the selected district.
func (s *UIState) Select(id citymap.DistrictID) {
	s.Selected = id
}

// OpenEdit marks id as the district in the edit panel.
func (s *UIState) OpenEdit(id citymap.DistrictID) {
	s.Editing = id
}

// CloseEdit clears the edit target. Selection is untouched.
func (s *UIState) CloseEdit() {
	s.Editing = 0
}

// Clear drops the selection. The edit target is untouched.
func (s *UIState) Clear() {
	s.Selected = 0
}

// HasSelection reports whether a district is selected.
func (s UIState) HasSelection() bool {
	return s.Selected != 0
}

// IsEditing reports whether the edit panel is open.
func (s UIState) IsEditing() bool {
	return s.Editing != 0
}
