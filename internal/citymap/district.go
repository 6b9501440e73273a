// Package citymap holds the district, guild, note, and session records shared
// by the map widget and its REST client.
package citymap

import "strings"

// DistrictID identifies a district on the map. Zero means none.
type DistrictID int

// StatusUnknown marks a district whose details were never defined. Activating
// such a district always opens the edit panel.
const StatusUnknown = "Unknown"

const (
	// ColorSealed is the color sentinel for visually locked districts. It is
	// never applied as a literal fill.
	ColorSealed = "sealed"
	// SealedAccent replaces ColorSealed wherever a concrete color is needed.
	SealedAccent = "#f56565"
	// DefaultColor is the neutral color used when a district has none.
	DefaultColor = "#4a5568"
)

// District is the client-side cached copy of a district.
type District struct {
	ID     DistrictID
	Number int
	Name   string
	Info   string
	Status string
	Color  string
	// NoColor marks districts without a color concept (the `mere` class).
	NoColor bool
}

// IsUnknown reports whether the district status is the undefined sentinel.
func (d District) IsUnknown() bool {
	return d.Status == StatusUnknown
}

// IsSealed reports whether the district carries the sealed color sentinel.
func (d District) IsSealed() bool {
	return d.Color == ColorSealed
}

// DisplayName returns the map label for the district.
func (d District) DisplayName() string {
	return DisplayName(d.Name)
}

// AccentColor returns the concrete color used for borders and accents.
func (d District) AccentColor() string {
	return AccentColor(d.Color)
}

// ColorOrDefault returns the district color, or DefaultColor when empty.
func (d District) ColorOrDefault() string {
	if strings.TrimSpace(d.Color) == "" {
		return DefaultColor
	}
	return d.Color
}

// DisplayName strips a parenthetical alias: "Docks (Old Harbor)" becomes
// "Docks".
func DisplayName(name string) string {
	before, _, found := strings.Cut(name, "(")
	if !found {
		return name
	}
	return strings.TrimSpace(before)
}

// AccentColor maps the sealed sentinel to SealedAccent.
func AccentColor(color string) string {
	if color == ColorSealed {
		return SealedAccent
	}
	return color
}

// Update holds the editable district fields. Color is nil for districts
// without a color concept.
type Update struct {
	Name   string
	Info   string
	Status string
	Color  *string
}

// Apply returns a copy of d with the update written through.
func (d District) Apply(u Update) District {
	d.Name = u.Name
	d.Info = u.Info
	d.Status = u.Status
	if u.Color != nil && !d.NoColor {
		d.Color = *u.Color
	}
	return d
}
