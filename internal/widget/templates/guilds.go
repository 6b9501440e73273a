package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/citymap/internal/widget"
)

var badgeIcons = map[widget.Badge]string{
	widget.BadgeLocation: "📍",
	widget.BadgeGlobe:    "🌐",
}

// GuildCards renders the guild preview cards for #guilds-list.
func GuildCards(cards []widget.GuildCard) templ.Component {
	items := make([]templ.Component, 0, len(cards))
	for _, card := range cards {
		items = append(items, guildCard(card))
	}
	return fragment(items...)
}

func guildCard(card widget.GuildCard) templ.Component {
	id := strconv.Itoa(card.ID)
	cardAttrs := attrs("class", "guild-preview-card", AttrGuildID, id)
	if accent := SafeColor(card.Accent); accent != "" {
		cardAttrs = append(cardAttrs, attribute{name: "style", value: "border-left: 4px solid " + accent})
	}

	header := []templ.Component{element("h4", nil, text(card.Name))}
	if icon, ok := badgeIcons[card.Badge]; ok {
		header = append(header, element("span",
			attrs("class", "guild-badge guild-badge-"+string(card.Badge), "title", card.BadgeLabel),
			text(icon),
		))
	}

	return element("div", cardAttrs,
		element("div", attrs("class", "guild-preview-header"), header...),
		element("p", attrs("class", "guild-preview-description"), text(card.Description)),
		element("button",
			attrs("type", "button", "class", "guild-details-btn", AttrAction, ActionViewGuild, AttrGuildID, id),
			text(card.DetailsLabel),
		),
	)
}
