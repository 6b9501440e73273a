package mapwidget

import (
	"flag"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/widget"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("mapwidget", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(newFlagSet(), nil, map[string]string{})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	want := Config{Locale: "en-US", GuildInfoPath: "/guild-info"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(newFlagSet(), []string{"-locale", "pt-BR", "-refresh-on-start"}, map[string]string{
		"CITYMAP_API_BASE_URL":    "https://map.example.com/",
		"CITYMAP_LOCALE":          "en-US",
		"CITYMAP_API_TIMEOUT":     "3s",
		"CITYMAP_GUILD_INFO_PATH": "/guilds",
	})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	want := Config{
		APIBaseURL:     "https://map.example.com/",
		Locale:         "pt-BR",
		APITimeout:     3 * time.Second,
		GuildInfoPath:  "/guilds",
		RefreshOnStart: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		vars map[string]string
	}{
		{name: "bad duration", vars: map[string]string{"CITYMAP_API_TIMEOUT": "soon"}},
		{name: "negative timeout", args: []string{"-api-timeout", "-1s"}, vars: map[string]string{}},
		{name: "relative guild path", vars: map[string]string{"CITYMAP_GUILD_INFO_PATH": "guild-info"}},
		{name: "unknown flag", args: []string{"-port", "80"}, vars: map[string]string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseConfig(newFlagSet(), tc.args, tc.vars); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

type nopView struct{ widget.View }

func TestNewController(t *testing.T) {
	t.Parallel()

	c, err := NewController(Config{Locale: "pt-BR", GuildInfoPath: "/guilds"}, nopView{}, citymap.Session{UserID: 1, Role: citymap.RolePlayer}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	if got := c.State(); got != (widget.UIState{}) {
		t.Fatalf("State() = %+v, want zero", got)
	}
}

func TestNewControllerRequiresView(t *testing.T) {
	t.Parallel()

	if _, err := NewController(Config{}, nil, citymap.Session{}, nil); err == nil {
		t.Fatal("expected error")
	}
}
