// Package server provides the HTTP server and handlers.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/Styt0/airwave-aggregator/internal/catalog"
	"github.com/Styt0/airwave-aggregator/internal/exchange"
	"github.com/Styt0/airwave-aggregator/internal/model"
	"github.com/Styt0/airwave-aggregator/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the main HTTP server.
type Server struct {
	session   *session.Session
	router    chi.Router
	templates *template.Template
}

// New creates a new server over the given session.
func New(sess *session.Session) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"timeAgo": timeAgo,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		session:   sess,
		templates: tmpl,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Serve static files.
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Pages.
	r.Get("/", s.handleHome)

	// API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/frequencies", s.handleFrequencies)
		r.Post("/frequencies", s.handleAddFrequency)
		r.Get("/frequencies/favorites", s.handleFavoriteFrequencies)
		r.Get("/favorites", s.handleFavorites)
		r.Post("/favorites/toggle", s.handleToggleFavorite)
		r.Get("/categories", s.handleCategories)
		r.Get("/map", s.handleMap)
		r.Get("/location", s.handleLocation)
		r.Post("/location", s.handleSetLocation)
		r.Post("/location/request", s.handleRequestLocation)
		r.Get("/export-csv", s.handleExportCSV)
		r.Post("/import-csv", s.handleImportCSV)
	})

	s.router = r
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the session refresh loop and serves HTTP.
func (s *Server) Start(addr string) error {
	s.session.Start()
	log.WithField("bind", addr).Info("server starting")
	return http.ListenAndServe(addr, s.router)
}

// Stop stops the session refresh loop.
func (s *Server) Stop() {
	s.session.Stop()
}

// --- Page Handlers ---

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	records := s.session.Records()
	if v := r.URL.Query().Get("category"); v != "" {
		records = catalog.FilterByCategory(records, model.Category(v))
	}
	records = catalog.FilterByText(records, r.URL.Query().Get("q"))
	favorites, _ := s.session.Favorites()

	data := map[string]interface{}{
		"Records":    records,
		"Favorites":  favorites,
		"Categories": model.Categories(),
		"Location":   s.session.Location(),
	}
	s.render(w, "layout.html", data)
}

// --- API Handlers ---

func (s *Server) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	records := s.session.Records()

	category := model.CategoryAll
	if v := r.URL.Query().Get("category"); v != "" {
		category = model.Category(v)
	}
	records = catalog.FilterByCategory(records, category)
	records = catalog.FilterByText(records, r.URL.Query().Get("q"))

	latStr, lonStr := r.URL.Query().Get("lat"), r.URL.Query().Get("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			http.Error(w, "Invalid coordinates", http.StatusBadRequest)
			return
		}
		records = catalog.ByLocation(records, lat, lon)
	}

	writeJSON(w, map[string]interface{}{
		"frequencies": records,
		"count":       len(records),
	})
}

func (s *Server) handleAddFrequency(w http.ResponseWriter, r *http.Request) {
	var input model.NewFrequencyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if input.Frequency == "" || input.Name == "" || input.Location.Name == "" {
		http.Error(w, "frequency, name and location name are required", http.StatusBadRequest)
		return
	}
	if !input.Category.Valid() {
		http.Error(w, fmt.Sprintf("unknown category %q", input.Category), http.StatusBadRequest)
		return
	}

	rec, err := s.session.AddFrequency(input)
	if err != nil {
		log.WithError(err).Error("add frequency")
		http.Error(w, "Failed to save", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok", "frequency": rec})
}

func (s *Server) handleFavoriteFrequencies(w http.ResponseWriter, r *http.Request) {
	records, err := s.session.FavoriteRecords()
	if err != nil {
		http.Error(w, "Failed to load favorites", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"frequencies": records,
		"count":       len(records),
	})
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := s.session.Favorites()
	if err != nil {
		http.Error(w, "Failed to load favorites", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"favorites": ids})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	ids, err := s.session.ToggleFavorite(req.ID)
	if err != nil {
		log.WithError(err).Error("toggle favorite")
		http.Error(w, "Failed to save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"status": "ok", "favorites": ids})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"categories": model.Categories()})
}

// handleMap serves the marker tuples consumed by the map rendering surface.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	records := s.session.Records()
	type marker struct {
		ID          string            `json:"id"`
		Coordinates model.Coordinates `json:"coordinates"`
		Category    model.Category    `json:"category"`
		Name        string            `json:"name"`
		Frequency   string            `json:"frequency"`
	}
	markers := make([]marker, 0, len(records))
	for _, rec := range records {
		markers = append(markers, marker{
			ID:          rec.ID,
			Coordinates: rec.Location.Coordinates,
			Category:    rec.Category,
			Name:        rec.Name,
			Frequency:   rec.Frequency,
		})
	}
	writeJSON(w, map[string]interface{}{"markers": markers})
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.session.Location())
}

func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	var req model.Coordinates
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.session.SetManualLocation(req))
}

func (s *Server) handleRequestLocation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(s.session.RequestLocation())
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=airwave-frequencies.csv")
	if err := exchange.Export(w, s.session.Records()); err != nil {
		log.WithError(err).Error("export csv")
	}
}

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("csv")
	if err != nil {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := exchange.Parse(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse CSV: %v", err), http.StatusBadRequest)
		return
	}

	imported := 0
	for _, entry := range entries {
		if !entry.Category.Valid() {
			log.WithField("category", entry.Category).Warning("skipping import row with unknown category")
			continue
		}
		if _, err := s.session.AddFrequency(entry); err != nil {
			log.WithError(err).WithField("name", entry.Name).Warning("skipping import row")
			continue
		}
		imported++
	}

	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"imported": imported,
		"total":    len(entries),
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.WithError(err).Error("template error")
		http.Error(w, "Render error", http.StatusInternalServerError)
	}
}

func timeAgo(t *time.Time) string {
	if t == nil {
		return "never"
	}
	d := time.Since(*t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
