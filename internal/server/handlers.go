package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"calmcollective/internal/content"
	"calmcollective/internal/db"
	"calmcollective/internal/export"
	"calmcollective/internal/workspace"
)

type pageData struct {
	AppName       string
	Settings      workspace.Settings
	Prompt        string
	Entries       []db.Entry
	FlavorLabels  map[string]string
	CurrentFlavor string
	CurrentStart  string
	CurrentEnd    string
	Flashes       []flash
	CSRFField     template.HTML
}

func (s *Server) newPageData(w http.ResponseWriter, r *http.Request) pageData {
	return pageData{
		AppName:      AppName,
		Settings:     workspace.LoadSettings(s.cfg.SettingsPath),
		FlavorLabels: content.FlavorLabels,
		Flashes:      s.takeFlashes(w, r),
		CSRFField:    csrf.TemplateField(r),
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r)
	data.Prompt = s.svc.Prompt()
	s.render(w, "index.html", data)
}

func (s *Server) journalRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) submitJournal(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.FormValue("entry_text"))
	if text == "" {
		s.addFlash(w, r, "error", "Please write a few words about how you feel.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	mood, err := strconv.ParseFloat(r.FormValue("mood"), 64)
	if err != nil {
		mood = 0
	}
	flavor := r.FormValue("flavor")

	if _, err := s.svc.Compose(text, mood, flavor); err != nil {
		log.Printf("compose entry: %v", err)
		s.addFlash(w, r, "error", "Could not save your entry. Please try again.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/entries", http.StatusFound)
}

func filterFromQuery(r *http.Request) db.Filter {
	q := r.URL.Query()
	return db.Filter{
		Flavor: q.Get("flavor"),
		Start:  q.Get("start"),
		End:    q.Get("end"),
	}
}

func (s *Server) entriesPage(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	entries, err := s.store.ListFiltered(f)
	if err != nil {
		log.Printf("list entries: %v", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	data := s.newPageData(w, r)
	data.Entries = entries
	data.CurrentFlavor = f.Flavor
	data.CurrentStart = f.Start
	data.CurrentEnd = f.End
	s.render(w, "entries.html", data)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.FormValue("id"))
	if id == "" {
		s.addFlash(w, r, "error", "Missing entry identifier.")
		http.Redirect(w, r, "/entries", http.StatusFound)
		return
	}

	deleted, err := s.store.DeleteByID(id)
	if err != nil {
		log.Printf("delete entry: %v", err)
		s.addFlash(w, r, "error", "Could not delete the entry.")
	} else if deleted {
		s.addFlash(w, r, "ok", "Entry deleted.")
	} else {
		s.addFlash(w, r, "error", "Entry not found.")
	}
	http.Redirect(w, r, "/entries", http.StatusFound)
}

func (s *Server) apiEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListFiltered(filterFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) exportPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "export.html", s.newPageData(w, r))
}

func (s *Server) exportJSON(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteCSV(w, entries); err != nil {
		log.Printf("export csv: %v", err)
	}
}

func (s *Server) exportPDF(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	entries, err := s.store.ListFiltered(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	pf := export.PDFFilter{Flavor: f.Flavor, Start: f.Start, End: f.End}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pf.Filename()))
	if err := export.WritePDF(w, entries, pf); err != nil {
		log.Printf("export pdf: %v", err)
	}
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	flavor := r.FormValue("default_support_flavor")
	if flavor == "" {
		flavor = "secular"
	}
	settings := workspace.Settings{
		EmergencyText:         r.FormValue("emergency_text"),
		EmergencyContactLabel: r.FormValue("emergency_contact_label"),
		EmergencyContactValue: r.FormValue("emergency_contact_value"),
		DefaultSupportFlavor:  flavor,
	}
	if err := workspace.SaveSettings(s.cfg.SettingsPath, settings); err != nil {
		log.Printf("save settings: %v", err)
		s.addFlash(w, r, "error", "Could not save settings.")
	} else {
		s.addFlash(w, r, "ok", "Settings saved.")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) addWisdom(w http.ResponseWriter, r *http.Request) {
	flavor := formValueDefault(r, "wisdom_flavor", "secular")
	text := strings.TrimSpace(r.FormValue("wisdom_text"))
	author := formValueDefault(r, "wisdom_author", "Unknown")
	if text == "" {
		s.addFlash(w, r, "error", "Please provide wisdom text.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := s.pools.AddWisdom(flavor, content.Wisdom{Text: text, Author: author}); err != nil {
		log.Printf("add wisdom: %v", err)
		s.addFlash(w, r, "error", "Could not add the wisdom quote.")
	} else {
		s.addFlash(w, r, "ok", "Wisdom quote added.")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) addScripture(w http.ResponseWriter, r *http.Request) {
	flavor := formValueDefault(r, "scripture_flavor", "secular")
	text := strings.TrimSpace(r.FormValue("scripture_text"))
	if text == "" {
		s.addFlash(w, r, "error", "Please provide scripture text.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := s.pools.AddScripture(flavor, text); err != nil {
		log.Printf("add scripture: %v", err)
		s.addFlash(w, r, "error", "Could not add the scripture.")
	} else {
		s.addFlash(w, r, "ok", "Scripture added.")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().Format(db.TimestampLayout),
	})
}

func (s *Server) listRoutes(r *mux.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		routes := []string{}
		_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
			tmpl, err := route.GetPathTemplate()
			if err != nil {
				return nil
			}
			methods, _ := route.GetMethods()
			if len(methods) == 0 {
				routes = append(routes, tmpl)
				return nil
			}
			for _, m := range methods {
				routes = append(routes, m+" "+tmpl)
			}
			return nil
		})
		sort.Strings(routes)
		writeJSON(w, http.StatusOK, routes)
	}
}

func formValueDefault(r *http.Request, key, fallback string) string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
