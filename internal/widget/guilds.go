package widget

import (
	"context"

	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/mapapi"
)

// CitywideAccent is the neutral accent for guilds operating citywide.
const CitywideAccent = "#a0aec0"

func (c *Controller) loadGuilds(ctx context.Context, gen uint64, id citymap.DistrictID) {
	detail, err := c.api.GetDistrict(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	if err != nil {
		c.logger.Printf("load guilds failed: district=%d err=%v", id, err)
		c.view.HideGuilds()
		return
	}
	if len(detail.Guilds) == 0 {
		c.view.HideGuilds()
		return
	}
	c.view.ShowGuilds(guildCards(detail, c.text, c.guildInfoPath))
}

func guildCards(detail citymap.DistrictDetail, text Copy, guildInfoPath string) []GuildCard {
	cards := make([]GuildCard, 0, len(detail.Guilds))
	for _, g := range detail.Guilds {
		card := GuildCard{
			ID:           g.ID,
			Name:         g.Name,
			Description:  g.Description,
			DetailsLabel: text.ViewDetails(),
			DetailsURL:   mapapi.GuildInfoURL(guildInfoPath, g.ID),
		}
		if card.Description == "" {
			card.Description = text.NoDescription()
		}
		switch g.Relationship {
		case citymap.RelationshipHeadquartered:
			card.Accent = detail.AccentColor()
			card.Badge = BadgeLocation
			card.BadgeLabel = text.Headquartered()
		case citymap.RelationshipCitywide:
			card.Accent = CitywideAccent
			card.Badge = BadgeGlobe
			card.BadgeLabel = text.Citywide()
		}
		cards = append(cards, card)
	}
	return cards
}

// OpenGuild navigates the page to the guild's detail anchor.
func (c *Controller) OpenGuild(id int) {
	c.view.Navigate(mapapi.GuildInfoURL(c.guildInfoPath, id))
}
