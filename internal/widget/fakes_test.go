package widget

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/louisbranch/citymap/internal/citymap"
	"github.com/louisbranch/citymap/internal/platform/i18n"
)

type updateCall struct {
	ID     citymap.DistrictID
	Update citymap.Update
}

// fakeAPI is an in-memory API. Gates block the matching call until closed.
type fakeAPI struct {
	mu sync.Mutex

	details map[citymap.DistrictID]citymap.DistrictDetail
	listed  []citymap.District
	notes   map[citymap.DistrictID][]citymap.Note
	nextID  citymap.NoteID
	author  citymap.Note

	detailErr error
	listErr   error
	notesErr  error
	updateErr error
	saveErr   error
	deleteErr error

	detailGate map[citymap.DistrictID]chan struct{}
	updateGate chan struct{}
	// updateStarted receives once per UpdateDistrict call when non-nil.
	updateStarted chan struct{}
	createGate    chan struct{}
	createStarted chan struct{}

	updates   []updateCall
	mutations []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		details:    map[citymap.DistrictID]citymap.DistrictDetail{},
		notes:      map[citymap.DistrictID][]citymap.Note{},
		nextID:     100,
		detailGate: map[citymap.DistrictID]chan struct{}{},
	}
}

func (f *fakeAPI) GetDistrict(ctx context.Context, id citymap.DistrictID) (citymap.DistrictDetail, error) {
	f.mu.Lock()
	gate := f.detailGate[id]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return citymap.DistrictDetail{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return citymap.DistrictDetail{}, f.detailErr
	}
	return f.details[id], nil
}

func (f *fakeAPI) ListDistricts(context.Context) ([]citymap.District, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listed, f.listErr
}

func (f *fakeAPI) UpdateDistrict(ctx context.Context, id citymap.DistrictID, update citymap.Update) error {
	f.mu.Lock()
	f.updates = append(f.updates, updateCall{ID: id, Update: update})
	f.mutations = append(f.mutations, "update_district")
	started, gate, err := f.updateStarted, f.updateGate, f.updateErr
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return err
}

func (f *fakeAPI) ListNotes(_ context.Context, target citymap.Target) ([]citymap.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notesErr != nil {
		return nil, f.notesErr
	}
	return append([]citymap.Note(nil), f.notes[citymap.DistrictID(target.ID)]...), nil
}

func (f *fakeAPI) CreateNote(_ context.Context, target citymap.Target, content string) (citymap.Note, error) {
	f.mu.Lock()
	f.mutations = append(f.mutations, "create_note")
	started, gate := f.createStarted, f.createGate
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return citymap.Note{}, f.saveErr
	}
	f.nextID++
	note := citymap.Note{ID: f.nextID, UserID: f.author.UserID, Username: f.author.Username, Content: content}
	id := citymap.DistrictID(target.ID)
	f.notes[id] = append(f.notes[id], note)
	return note, nil
}

func (f *fakeAPI) UpdateNote(_ context.Context, id citymap.NoteID, content string) (citymap.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, "update_note")
	if f.saveErr != nil {
		return citymap.Note{}, f.saveErr
	}
	for district, notes := range f.notes {
		for i := range notes {
			if notes[i].ID == id {
				notes[i].Content = content
				f.notes[district] = notes
				return notes[i], nil
			}
		}
	}
	return citymap.Note{}, nil
}

func (f *fakeAPI) DeleteNote(_ context.Context, id citymap.NoteID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, "delete_note")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for district, notes := range f.notes {
		for i := range notes {
			if notes[i].ID == id {
				f.notes[district] = append(notes[:i:i], notes[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeAPI) setNotes(id citymap.DistrictID, notes ...citymap.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[id] = notes
}

func (f *fakeAPI) setDetail(detail citymap.DistrictDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[detail.ID] = detail
}

func (f *fakeAPI) recordedMutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.mutations...)
}

func (f *fakeAPI) recordedUpdates() []updateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]updateCall(nil), f.updates...)
}

// viewState is what a recordingView has been told to display.
type viewState struct {
	Placeholder   bool
	Detail        *DetailView
	Highlighted   citymap.DistrictID
	EditTrigger   bool
	EditOpen      bool
	EditForm      EditForm
	Saving        bool
	SavingToggles []bool
	Shapes        []ShapeView
	GuildsVisible bool
	Guilds        []GuildCard
	Notes         NotesView
	NotesRenders  int
	Alerts        []string
	Confirms      []string
	Navigated     []string
}

type recordingView struct {
	mu      sync.Mutex
	state   viewState
	confirm bool
}

func (v *recordingView) snapshot() viewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.SavingToggles = append([]bool(nil), s.SavingToggles...)
	s.Shapes = append([]ShapeView(nil), s.Shapes...)
	s.Guilds = append([]GuildCard(nil), s.Guilds...)
	s.Alerts = append([]string(nil), s.Alerts...)
	s.Confirms = append([]string(nil), s.Confirms...)
	s.Navigated = append([]string(nil), s.Navigated...)
	return s
}

func (v *recordingView) ShowPlaceholder() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Placeholder = true
	v.state.Detail = nil
}

func (v *recordingView) ShowDetail(d DetailView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Placeholder = false
	v.state.Detail = &d
}

func (v *recordingView) HighlightDistrict(id citymap.DistrictID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Highlighted = id
}

func (v *recordingView) SetEditTriggerVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.EditTrigger = visible
}

func (v *recordingView) OpenEditPanel(form EditForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.EditOpen = true
	v.state.EditForm = form
}

func (v *recordingView) CloseEditPanel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.EditOpen = false
}

func (v *recordingView) SetSaving(saving bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Saving = saving
	v.state.SavingToggles = append(v.state.SavingToggles, saving)
}

func (v *recordingView) UpdateDistrictShape(shape ShapeView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Shapes = append(v.state.Shapes, shape)
}

func (v *recordingView) ShowGuilds(cards []GuildCard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.GuildsVisible = true
	v.state.Guilds = cards
}

func (v *recordingView) HideGuilds() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.GuildsVisible = false
	v.state.Guilds = nil
}

func (v *recordingView) ShowNotes(notes NotesView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Notes = notes
	v.state.NotesRenders++
}

func (v *recordingView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Alerts = append(v.state.Alerts, message)
}

func (v *recordingView) Confirm(message string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Confirms = append(v.state.Confirms, message)
	return v.confirm
}

func (v *recordingView) Navigate(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Navigated = append(v.state.Navigated, url)
}

func newTestController(t *testing.T, api API, view View, session citymap.Session, districts ...citymap.District) *Controller {
	t.Helper()
	c, err := NewController(Config{
		API:     api,
		View:    view,
		Session: session,
		Printer: i18n.NewPrinter("en-US"),
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	c.Register(districts...)
	t.Cleanup(c.Wait)
	return c
}

var (
	docks = citymap.District{ID: 1, Number: 1, Name: "Docks (Old Harbor)", Info: "Fish\nSalt", Status: "Active", Color: "#2b6cb0"}
	vault = citymap.District{ID: 2, Number: 2, Name: "Vault", Info: "Locked", Status: "Closed", Color: citymap.ColorSealed}
	ruins = citymap.District{ID: 3, Number: 3, Name: "Ruins", Status: citymap.StatusUnknown}
	mere  = citymap.District{ID: 4, Name: "The Mere", Status: "Calm", NoColor: true}

	player = citymap.Session{UserID: 7, Role: citymap.RolePlayer}
	admin  = citymap.Session{UserID: 1, Role: citymap.RoleAdmin}
)
