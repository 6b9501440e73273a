package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/citymap/internal/citymap"
)

// ParseDistrict builds a cached district from a .district element's data
// attributes (without the data- prefix) and class list.
func ParseDistrict(data map[string]string, classes []string) (citymap.District, error) {
	rawID := strings.TrimSpace(data["id"])
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return citymap.District{}, fmt.Errorf("invalid district id %q", rawID)
	}
	d := citymap.District{
		ID:     citymap.DistrictID(id),
		Name:   data["name"],
		Info:   data["info"],
		Status: data["status"],
		Color:  data["color"],
	}
	if raw := strings.TrimSpace(data["number"]); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			d.Number = n
		}
	}
	for _, class := range classes {
		if class == ClassNoColor {
			d.NoColor = true
			break
		}
	}
	return d, nil
}

// ParseSession reads the host-injected user globals. Missing or malformed ids
// yield an anonymous session that owns nothing.
func ParseSession(userID string, role string) citymap.Session {
	id, err := strconv.Atoi(strings.TrimSpace(userID))
	if err != nil || id < 0 {
		id = 0
	}
	return citymap.Session{UserID: id, Role: citymap.ParseRole(role)}
}

// DistrictData is what a saved district writes back onto its element.
func DistrictData(d citymap.District) map[string]string {
	data := map[string]string{
		"name":   d.Name,
		"info":   d.Info,
		"status": d.Status,
	}
	if !d.NoColor {
		data["color"] = d.Color
	}
	return data
}
