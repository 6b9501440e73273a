// Package widget is the headless controller behind the interactive district
// map. It owns selection, edit, and note-compose state and talks to the host
// page only through the View port, so it runs unchanged under tests and in
// the browser binding.
package widget

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/mapapi"
	"github.com/louisbranch/citymap/internal/platform/requestctx"
	"golang.org/x/text/message"
)

// API is the REST surface the controller depends on. *mapapi.Client
// satisfies it.
type API interface {
	GetDistrict(ctx context.Context, id citymap.DistrictID) (citymap.DistrictDetail, error)
	ListDistricts(ctx context.Context) ([]citymap.District, error)
	UpdateDistrict(ctx context.Context, id citymap.DistrictID, update citymap.Update) error
	ListNotes(ctx context.Context, target citymap.Target) ([]citymap.Note, error)
	CreateNote(ctx context.Context, target citymap.Target, content string) (citymap.Note, error)
	UpdateNote(ctx context.Context, id citymap.NoteID, content string) (citymap.Note, error)
	DeleteNote(ctx context.Context, id citymap.NoteID) error
}

var _ API = (*mapapi.Client)(nil)

// Trigger is how a district was activated.
type Trigger int

const (
	// TriggerPrimary is a plain click.
	TriggerPrimary Trigger = iota
	// TriggerModified is a ctrl-click.
	TriggerModified
	// TriggerContext is a right-click.
	TriggerContext
)

// Config wires a Controller.
type Config struct {
	API     API
	View    View
	Session citymap.Session
	// Printer resolves catalog strings. Required.
	Printer *message.Printer
	// Logger defaults to log.Default().
	Logger *log.Logger
	// GuildInfoPath defaults to mapapi.GuildInfoPath.
	GuildInfoPath string
}

// Controller coordinates the detail panel, guild previews, notes, and the
// district edit panel. It is safe for concurrent use.
type Controller struct {
	api           API
	view          View
	session       citymap.Session
	text          Copy
	logger        *log.Logger
	guildInfoPath string

	mu        sync.Mutex
	districts map[citymap.DistrictID]citymap.District
	state     UIState
	// generation increments on every detail render and on deselection.
	// Async results carrying an older generation are dropped.
	generation uint64
	// shown is the district whose guilds and notes the panel holds.
	shown      citymap.DistrictID
	notes      []citymap.Note
	compose    ComposeState
	saving     map[citymap.DistrictID]bool
	submitting map[citymap.Target]bool

	pending sync.WaitGroup
}

// NewController validates cfg and builds a Controller with an empty district
// cache.
func NewController(cfg Config) (*Controller, error) {
	if cfg.API == nil {
		return nil, errors.New("api is required")
	}
	if cfg.View == nil {
		return nil, errors.New("view is required")
	}
	if cfg.Printer == nil {
		return nil, errors.New("printer is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	guildInfoPath := cfg.GuildInfoPath
	if guildInfoPath == "" {
		guildInfoPath = mapapi.GuildInfoPath
	}
	return &Controller{
		api:           cfg.API,
		view:          cfg.View,
		session:       cfg.Session,
		text:          NewCopy(cfg.Printer),
		logger:        logger,
		guildInfoPath: guildInfoPath,
		districts:     make(map[citymap.DistrictID]citymap.District),
		saving:        make(map[citymap.DistrictID]bool),
		submitting:    make(map[citymap.Target]bool),
	}, nil
}

// Register seeds the district cache. Later registrations replace earlier ones.
func (c *Controller) Register(districts ...citymap.District) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range districts {
		if d.ID == 0 {
			continue
		}
		c.districts[d.ID] = d
	}
}

// District returns the cached district.
func (c *Controller) District(id citymap.DistrictID) (citymap.District, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.districts[id]
	return d, ok
}

// State returns a snapshot of the selection and edit state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Compose returns the current note compose state.
func (c *Controller) Compose() ComposeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compose
}

// Notes returns the notes listed for the selected district.
func (c *Controller) Notes() []citymap.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]citymap.Note(nil), c.notes...)
}

// Wait blocks until every async load started so far has finished.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// Activate handles a click on a district.
func (c *Controller) Activate(ctx context.Context, id citymap.DistrictID, trigger Trigger) {
	ctx = withActionID(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.districts[id]
	if !ok {
		c.logger.Printf("activate ignored: unknown district id=%d", id)
		return
	}
	if d.IsUnknown() || trigger != TriggerPrimary {
		c.openEditLocked(d)
		return
	}
	c.state.Select(id)
	c.view.HighlightDistrict(id)
	c.view.SetEditTriggerVisible(true)
	c.renderDetailLocked(ctx, d)
}

// ClickOutside handles a click that landed on neither a district nor the
// info panel.
func (c *Controller) ClickOutside() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Clear()
	c.generation++
	c.shown = 0
	c.notes = nil
	c.compose = ComposeState{}
	c.view.HighlightDistrict(0)
	c.view.SetEditTriggerVisible(false)
	c.view.ShowPlaceholder()
}

// Refresh reloads every district from the server, keeping each cached
// district's NoColor flag, and repaints the shapes.
func (c *Controller) Refresh(ctx context.Context) error {
	ctx = withActionID(ctx)
	districts, err := c.api.ListDistricts(ctx)
	if err != nil {
		c.logger.Printf("refresh districts failed: err=%v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range districts {
		if cached, ok := c.districts[d.ID]; ok {
			d.NoColor = cached.NoColor
		}
		c.districts[d.ID] = d
		c.view.UpdateDistrictShape(shapeView(d))
		if c.state.Selected == d.ID {
			c.renderDetailLocked(ctx, d)
		}
	}
	return nil
}

func (c *Controller) spawn(fn func()) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		fn()
	}()
}

// withActionID tags ctx so every request caused by one user action shares a
// request id. An id already on ctx is kept.
func withActionID(ctx context.Context) context.Context {
	if requestctx.RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return requestctx.WithRequestID(ctx, uuid.NewString())
}
