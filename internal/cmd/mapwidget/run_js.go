//go:build js && wasm

package mapwidget

import (
	"context"
	"fmt"
	"log"

	platformcmd "github.com/louisbranch/citymap/internal/platform/cmd"
	"github.com/louisbranch/citymap/internal/widget/dom"
)

// Run binds the widget to the page and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMapWidget, func(ctx context.Context) error {
		logger := log.Default()
		view := dom.NewView(logger)
		session := dom.Session()
		controller, err := NewController(cfg, view, session, logger)
		if err != nil {
			return fmt.Errorf("init widget: %w", err)
		}
		districts := view.Districts()
		controller.Register(districts...)
		binding := dom.Bind(ctx, controller, view, logger)
		defer binding.Close()
		log.Printf("widget bound districts=%d user=%d role=%s locale=%s", len(districts), session.UserID, session.Role, cfg.Locale)

		if cfg.RefreshOnStart {
			go dom.Guard(logger, "refresh", func() {
				_ = controller.Refresh(ctx)
			})
		}

		<-ctx.Done()
		controller.Wait()
		return nil
	})
}
