package server

import (
	"bytes"
	"embed"
	"encoding/gob"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"calmcollective/internal/content"
	"calmcollective/internal/db"
	"calmcollective/internal/journal"
)

const AppName = "CalmCollective"

//go:embed templates/*.html
var templateFS embed.FS

// Config carries the server settings. SecretKey signs session cookies and
// CSRF tokens; CSRFEnabled mirrors the CSRF_ENABLED toggle so tests and
// local scripts can post forms without a token.
type Config struct {
	Host         string
	Port         int
	SecretKey    []byte
	CSRFEnabled  bool
	SettingsPath string
}

// Server wires the journal service, the store and the content pools into
// the HTTP routes.
type Server struct {
	cfg      Config
	svc      *journal.Service
	store    *db.Store
	pools    *content.Pools
	sessions *sessions.CookieStore
	tmpl     *template.Template
}

type flash struct {
	Level string
	Text  string
}

func init() {
	gob.Register(flash{})
}

func New(cfg Config, svc *journal.Service, store *db.Store, pools *content.Pools) (*Server, error) {
	if len(cfg.SecretKey) == 0 {
		cfg.SecretKey = []byte("dev-key-change-me")
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"flavorLabel": content.FlavorLabel,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	cookies := sessions.NewCookieStore(cfg.SecretKey)
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.HttpOnly = true

	return &Server{
		cfg:      cfg,
		svc:      svc,
		store:    store,
		pools:    pools,
		sessions: cookies,
		tmpl:     tmpl,
	}, nil
}

// Handler builds the route tree. CSRF protection wraps every route; safe
// methods pass through untouched.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.index).Methods("GET")
	r.HandleFunc("/journal", s.journalRedirect).Methods("GET")
	r.HandleFunc("/journal", s.submitJournal).Methods("POST")
	r.HandleFunc("/entries", s.entriesPage).Methods("GET")
	r.HandleFunc("/entries/delete", s.deleteEntry).Methods("POST")
	r.HandleFunc("/api/entries", s.apiEntries).Methods("GET")
	r.HandleFunc("/export", s.exportPage).Methods("GET")
	r.HandleFunc("/export/json", s.exportJSON).Methods("GET")
	r.HandleFunc("/export/csv", s.exportCSV).Methods("GET")
	r.HandleFunc("/export/pdf", s.exportPDF).Methods("GET")
	r.HandleFunc("/settings", s.updateSettings).Methods("POST")
	r.HandleFunc("/add_wisdom", s.addWisdom).Methods("POST")
	r.HandleFunc("/add_scripture", s.addScripture).Methods("POST")
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/_routes", s.listRoutes(r)).Methods("GET")

	if !s.cfg.CSRFEnabled {
		return r
	}
	protect := csrf.Protect(
		s.cfg.SecretKey,
		csrf.Secure(false),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(s.csrfFailure)),
	)
	return protect(r)
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	log.Printf("%s listening on http://%s", AppName, addr)
	return http.ListenAndServe(addr, s.Handler())
}

// csrfFailure mirrors the friendly form-expiry handling: flash and return
// to the journal page instead of a bare 403.
func (s *Server) csrfFailure(w http.ResponseWriter, r *http.Request) {
	s.addFlash(w, r, "error", "Your form session expired or the CSRF token was missing. Please try again.")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) addFlash(w http.ResponseWriter, r *http.Request, level, text string) {
	session, _ := s.sessions.Get(r, "calmcollective")
	session.AddFlash(flash{Level: level, Text: text})
	if err := session.Save(r, w); err != nil {
		log.Printf("save session: %v", err)
	}
}

func (s *Server) takeFlashes(w http.ResponseWriter, r *http.Request) []flash {
	session, _ := s.sessions.Get(r, "calmcollective")
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			log.Printf("save session: %v", err)
		}
	}
	out := make([]flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(flash); ok {
			out = append(out, fl)
		}
	}
	return out
}

// render executes a template into a buffer first so a failure can still
// produce a 500 instead of a half-written page. HTML responses are marked
// no-store so stale CSRF tokens are never served from cache.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	_, _ = buf.WriteTo(w)
}
