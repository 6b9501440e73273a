// Package mapwidget assembles the browser map widget: REST client, locale
// printer, controller, and DOM binding.
package mapwidget

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/citymap/internal/platform/cmd"
	"github.com/louisbranch/citymap/internal/platform/timeouts"
)

// Config holds the widget configuration.
type Config struct {
	APIBaseURL     string        `env:"CITYMAP_API_BASE_URL"`
	Locale         string        `env:"CITYMAP_LOCALE" envDefault:"en-US"`
	APITimeout     time.Duration `env:"CITYMAP_API_TIMEOUT" envDefault:"0s"`
	GuildInfoPath  string        `env:"CITYMAP_GUILD_INFO_PATH" envDefault:"/guild-info"`
	RefreshOnStart bool          `env:"CITYMAP_REFRESH_ON_START" envDefault:"false"`
}

// ParseConfig reads the environment, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return parseConfig(fs, args, nil)
}

func parseConfig(fs *flag.FlagSet, args []string, vars map[string]string) (Config, error) {
	cfg := Config{APITimeout: timeouts.APIRequest}
	var err error
	if vars != nil {
		err = platformcmd.ParseConfigMap(&cfg, vars)
	} else {
		err = platformcmd.ParseConfig(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Map API base URL (empty for same origin)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "UI locale")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Per-request API timeout (0 disables)")
	fs.StringVar(&cfg.GuildInfoPath, "guild-info-path", cfg.GuildInfoPath, "Guild detail page route")
	fs.BoolVar(&cfg.RefreshOnStart, "refresh-on-start", cfg.RefreshOnStart, "Reload districts from the API after binding")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APITimeout < 0 {
		return errors.New("api timeout must be >= 0")
	}
	if !strings.HasPrefix(strings.TrimSpace(c.GuildInfoPath), "/") {
		return fmt.Errorf("guild info path %q must start with /", c.GuildInfoPath)
	}
	return nil
}
