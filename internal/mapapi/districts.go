package mapapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/citymap/internal/citymap"
)

type districtWire struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Info           *string     `json:"info"`
	Status         *string     `json:"status"`
	Color          string      `json:"color"`
	DistrictNumber int         `json:"district_number"`
	Guilds         []guildWire `json:"guilds"`
}

type guildWire struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Relationship string  `json:"relationship_to_district"`
}

type updateDistrictRequest struct {
	Name   string  `json:"name"`
	Info   string  `json:"info"`
	Status string  `json:"status"`
	Color  *string `json:"color,omitempty"`
}

type updateDistrictResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (w districtWire) district() citymap.District {
	return citymap.District{
		ID:     citymap.DistrictID(w.ID),
		Number: w.DistrictNumber,
		Name:   w.Name,
		Info:   deref(w.Info),
		Status: deref(w.Status),
		Color:  w.Color,
	}
}

func (w districtWire) detail() citymap.DistrictDetail {
	detail := citymap.DistrictDetail{District: w.district()}
	if len(w.Guilds) == 0 {
		return detail
	}
	detail.Guilds = make([]citymap.Guild, 0, len(w.Guilds))
	for _, g := range w.Guilds {
		detail.Guilds = append(detail.Guilds, citymap.Guild{
			ID:           g.ID,
			Name:         g.Name,
			Description:  strings.TrimSpace(deref(g.Description)),
			Relationship: citymap.Relationship(g.Relationship),
		})
	}
	return detail
}

// GetDistrict fetches one district with its nested guild list.
func (c *Client) GetDistrict(ctx context.Context, id citymap.DistrictID) (citymap.DistrictDetail, error) {
	const op = "GetDistrict"
	resp, err := c.send(ctx, op, http.MethodGet, DistrictPath(id), nil)
	if err != nil {
		return citymap.DistrictDetail{}, err
	}
	if !resp.ok() {
		return citymap.DistrictDetail{}, rejected(op, resp)
	}
	var wire districtWire
	if err := decode(op, resp, &wire); err != nil {
		return citymap.DistrictDetail{}, err
	}
	return wire.detail(), nil
}

// ListDistricts fetches every district.
func (c *Client) ListDistricts(ctx context.Context) ([]citymap.District, error) {
	const op = "ListDistricts"
	resp, err := c.send(ctx, op, http.MethodGet, DistrictsPath, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, rejected(op, resp)
	}
	var wire []districtWire
	if err := decode(op, resp, &wire); err != nil {
		return nil, err
	}
	districts := make([]citymap.District, 0, len(wire))
	for _, w := range wire {
		districts = append(districts, w.district())
	}
	return districts, nil
}

// UpdateDistrict sends a partial district update. A nil Color leaves the
// color out of the payload.
func (c *Client) UpdateDistrict(ctx context.Context, id citymap.DistrictID, update citymap.Update) error {
	const op = "UpdateDistrict"
	resp, err := c.send(ctx, op, http.MethodPut, DistrictPath(id), updateDistrictRequest{
		Name:   update.Name,
		Info:   update.Info,
		Status: update.Status,
		Color:  update.Color,
	})
	if err != nil {
		return err
	}
	if resp.status == http.StatusNotFound {
		return rejected(op, resp)
	}
	var result updateDistrictResponse
	if err := decode(op, resp, &result); err != nil {
		return err
	}
	if !result.Success {
		return &Error{Kind: KindRejected, Op: op, Status: resp.status, Message: strings.TrimSpace(result.Error)}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
