package mapwidget

import (
	"log"

	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/mapapi"
	"github.com/louisbranch/citymap/internal/platform/i18n"
	"github.com/louisbranch/citymap/internal/widget"
)

// NewController builds the widget controller for cfg, talking to the REST API
// and rendering through view.
func NewController(cfg Config, view widget.View, session citymap.Session, logger *log.Logger) (*widget.Controller, error) {
	client := mapapi.New(cfg.APIBaseURL, mapapi.WithTimeout(cfg.APITimeout))
	return widget.NewController(widget.Config{
		API:           client,
		View:          view,
		Session:       session,
		Printer:       i18n.NewPrinter(cfg.Locale),
		Logger:        logger,
		GuildInfoPath: cfg.GuildInfoPath,
	})
}
