package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/swelljoe/weekly-wthr/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pinger reports whether the persistence backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds dependencies for HTTP handlers
type Handlers struct {
	app       *app.App
	store     Pinger
	templates *template.Template
}

// New creates a new Handlers instance
func New(a *app.App, store Pinger) *Handlers {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))

	return &Handlers{
		app:       a,
		store:     store,
		templates: tmpl,
	}
}

// Router wires the handlers and middleware
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.HandleIndex)
	r.Get("/health", h.HandleHealth)
	r.Post("/weather", h.HandleWeatherForm)
	r.Post("/weather/query", h.HandleWeather)
	r.Get("/weather/fragment", h.HandleFragment)
	r.Get("/api/state", h.HandleState)

	return r
}

// HandleIndex renders the full page from the current state
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.html", newPage(h.app.State())); err != nil {
		log.Printf("Error executing template: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleHealth handles health check endpoint
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ok"
	if h.store == nil {
		status = "no_database"
	} else if err := h.store.Ping(r.Context()); err != nil {
		log.Printf("Health check: store ping failed: %v", err)
		status = "degraded"
	}

	w.Write([]byte(`{"status":"` + status + `"}`))
}

// HandleWeather records a query edit posted by the page script and renders the strip fragment.
// While a fetch is in flight the fragment carries the loading line.
// The server drives a single UI: every edit replaces the one shared query, so it is POST only.
func (h *Handlers) HandleWeather(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.app.SetQuery(r.PostForm.Get("location"))
	h.renderFragment(w)
}

// HandleFragment re-renders the strip fragment without changing state
func (h *Handlers) HandleFragment(w http.ResponseWriter, r *http.Request) {
	h.renderFragment(w)
}

// formWait bounds how long a plain form post waits for the fetch before redirecting
const formWait = 15 * time.Second

// HandleWeatherForm is the no-script path: it waits for the fetch to settle, then redirects home
func (h *Handlers) HandleWeatherForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if done := h.app.SetQuery(r.PostForm.Get("location")); done != nil {
		select {
		case <-done:
		case <-r.Context().Done():
		case <-time.After(formWait):
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleState returns the UI state as JSON
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	st := h.app.State()
	resp := struct {
		app.State
		Days []DayCell `json:"days"`
	}{
		State: st,
		Days:  BuildDays(st.Forecast),
	}

	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("JSON encode error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.Printf("Response write error: %v", err)
	}
}

func (h *Handlers) renderFragment(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "weather_fragment", newPage(h.app.State())); err != nil {
		log.Printf("Template error: %v", err)
	}
}
