// Package mapapitest provides an in-memory fake of the map REST API for
// tests.
package mapapitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// District is the fake's stored district.
type District struct {
	ID     int
	Number int
	Name   string
	Info   string
	Status string
	Color  string
	Guilds []Guild
}

// Guild is a guild attached to a fake district.
type Guild struct {
	ID           int
	Name         string
	Description  *string
	Relationship string
}

// Note is the fake's stored note.
type Note struct {
	ID         int
	UserID     int
	Username   string
	TargetType string
	TargetID   int
	Content    string
}

// Request records one call received by the fake.
type Request struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

// Failure forces a route to answer with Status and an optional error body.
// A Raw body is written verbatim instead.
type Failure struct {
	Status int
	Error  string
	Raw    string
}

// Server is an httptest-backed fake of the map API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	districts map[int]District
	notes     []Note
	nextNote  int
	userID    int
	username  string
	requests  []Request
	failures  map[string]Failure
}

// NewServer starts a fake closed with t.Cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		districts: map[int]District{},
		nextNote:  1,
		failures:  map[string]Failure{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/districts", s.listDistricts)
	mux.HandleFunc("GET /api/districts/{id}", s.getDistrict)
	mux.HandleFunc("PUT /api/districts/{id}", s.updateDistrict)
	mux.HandleFunc("GET /api/notes/{targetType}/{targetID}", s.listNotes)
	mux.HandleFunc("POST /api/notes", s.createNote)
	mux.HandleFunc("PUT /api/notes/{id}", s.updateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", s.deleteNote)
	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// PutDistrict stores or replaces a district.
func (s *Server) PutDistrict(d District) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.districts[d.ID] = d
}

// District returns the stored district.
func (s *Server) District(id int) (District, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.districts[id]
	return d, ok
}

// PutNote stores a note and returns its id.
func (s *Server) PutNote(n Note) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == 0 {
		n.ID = s.nextNote
	}
	if n.ID >= s.nextNote {
		s.nextNote = n.ID + 1
	}
	s.notes = append(s.notes, n)
	return n.ID
}

// Notes returns every stored note.
func (s *Server) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note(nil), s.notes...)
}

// ActAs sets the user attributed to created notes.
func (s *Server) ActAs(userID int, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.username = username
}

// Fail makes every request matching "METHOD /path" answer with f until
// cleared with Heal.
func (s *Server) Fail(route string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = f
}

// Heal clears a failure installed by Fail.
func (s *Server) Heal(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Mutations returns the recorded non-GET requests.
func (s *Server) Mutations() []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method != http.MethodGet {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		route := r.Method + " " + r.URL.Path
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: string(body), Header: r.Header.Clone()})
		failure, failing := s.failures[route]
		s.mu.Unlock()

		if failing {
			if failure.Raw != "" {
				w.WriteHeader(failure.Status)
				_, _ = io.WriteString(w, failure.Raw)
				return
			}
			if failure.Error == "" {
				w.WriteHeader(failure.Status)
				return
			}
			writeJSON(w, failure.Status, map[string]any{"error": failure.Error})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listDistricts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.districts))
	for id := range s.districts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, districtJSON(s.districts[id], false))
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getDistrict(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDistrict(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, districtJSON(d, true))
}

func (s *Server) updateDistrict(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDistrict(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var payload map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No JSON data provided"})
		return
	}
	for key, value := range payload {
		v := ""
		if value != nil {
			v = *value
		}
		switch key {
		case "name":
			d.Name = v
		case "info":
			d.Info = v
		case "status":
			d.Status = v
		case "color":
			d.Color = v
		}
	}
	s.PutDistrict(d)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "district": districtJSON(d, false)})
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	targetType := r.PathValue("targetType")
	targetID, err := strconv.Atoi(r.PathValue("targetID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid target"})
		return
	}
	out := []map[string]any{}
	for _, n := range s.Notes() {
		if n.TargetType == targetType && n.TargetID == targetID {
			out = append(out, noteJSON(n))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TargetType string `json:"target_type"`
		TargetID   int    `json:"target_id"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Content) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Content is required"})
		return
	}
	s.mu.Lock()
	userID, username := s.userID, s.username
	s.mu.Unlock()
	n := Note{
		UserID:     userID,
		Username:   username,
		TargetType: payload.TargetType,
		TargetID:   payload.TargetID,
		Content:    payload.Content,
	}
	n.ID = s.PutNote(n)
	writeJSON(w, http.StatusCreated, noteJSON(n))
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Content = payload.Content
			writeJSON(w, http.StatusOK, noteJSON(s.notes[i]))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "Note not found"})
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "Note not found"})
}

func (s *Server) lookupDistrict(r *http.Request) (District, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return District{}, false
	}
	return s.District(id)
}

func districtJSON(d District, withGuilds bool) map[string]any {
	out := map[string]any{
		"id":              d.ID,
		"name":            d.Name,
		"info":            d.Info,
		"status":          d.Status,
		"color":           d.Color,
		"district_number": d.Number,
	}
	if withGuilds {
		guilds := make([]map[string]any, 0, len(d.Guilds))
		for _, g := range d.Guilds {
			guilds = append(guilds, map[string]any{
				"id":                       g.ID,
				"name":                     g.Name,
				"description":              g.Description,
				"relationship_to_district": g.Relationship,
			})
		}
		out["guilds"] = guilds
	}
	return out
}

func noteJSON(n Note) map[string]any {
	return map[string]any{
		"id":       n.ID,
		"user_id":  n.UserID,
		"username": n.Username,
		"content":  n.Content,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
