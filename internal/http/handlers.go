package http

import (
	"context"
	"embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medbridge/internal/config"
	"medbridge/internal/core"
	"medbridge/internal/db"
	"medbridge/pkg"
)

//go:embed templates/*.html
var templateFS embed.FS

// Uploaded audio is capped well above any realistic voice note.
const maxUploadBytes = 10 << 20

// Server bundles the dependencies required by HTTP handlers. It implements
// http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Store       *db.Store
	Resolver    *core.Resolver
	Templates   *template.Template
	Logger      *zap.SugaredLogger
	DoctorLang  string
	PatientLang string
}

// NewServer constructs a Server with the embedded HTML templates.
func NewServer(store *db.Store, resolver *core.Resolver, logger *zap.SugaredLogger, doctorLang, patientLang string) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Server{
		Store:       store,
		Resolver:    resolver,
		Templates:   tmpl,
		Logger:      logger,
		DoctorLang:  doctorLang,
		PatientLang: patientLang,
	}, nil
}

// ServeHTTP dispatches on the URL path. Minimal routing logic is implemented
// here to keep dependencies light; every request gets an id for log
// correlation.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()
	s.route(w, r)
	s.Logger.Infow("request",
		"id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"duration", time.Since(start))
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/" && r.Method == http.MethodGet:
		s.handleChatPage(w, r)
	case r.URL.Path == "/api/messages" && r.Method == http.MethodPost:
		s.handlePostMessage(w, r)
	case r.URL.Path == "/api/messages" && r.Method == http.MethodGet:
		s.handleListMessages(w, r)
	case r.URL.Path == "/api/messages" && r.Method == http.MethodDelete:
		s.handleClear(w, r)
	case r.URL.Path == "/api/summary" && r.Method == http.MethodGet:
		s.handleSummary(w, r)
	case r.URL.Path == "/api/status" && r.Method == http.MethodGet:
		s.handleStatus(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handlePostMessage routes the language pair for the sender, resolves a
// translation and appends the record. Empty content is rejected before the
// pipeline runs; a storage failure is reported, never swallowed.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var audio []byte
	if err := r.ParseMultipartForm(maxUploadBytes); err == nil {
		audio = s.readAudio(r)
	} else if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	role, err := pkg.ParseRole(r.FormValue("role"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	content := r.FormValue("content")
	if strings.TrimSpace(content) == "" {
		http.Error(w, "empty message", http.StatusBadRequest)
		return
	}
	doctorLang, patientLang, err := s.languageSettings(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	source, target := core.RouteLanguages(role, doctorLang, patientLang)
	translated := s.Resolver.Translate(ctx, content, source, target)

	id, err := s.Store.Append(ctx, role, content, translated, source, target, audio)
	if err != nil {
		s.Logger.Errorw("append failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Plain form submits from the chat page bounce back to the transcript.
	if r.FormValue("redirect") == "1" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, pkg.SendResponse{
		ID:         id,
		Translated: translated,
		SourceLang: source,
		TargetLang: target,
	})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := s.Store.ReadAll(ctx)
	if err != nil {
		s.Logger.Errorw("read failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	records = core.Search(r.URL.Query().Get("q"), records)

	doctorLang, patientLang, err := s.languageSettings(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, s.messageViews(ctx, records, doctorLang, patientLang))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Clear(r.Context()); err != nil {
		s.Logger.Errorw("clear failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	records, err := s.Store.ReadAll(r.Context())
	if err != nil {
		s.Logger.Errorw("read failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, core.Summarize(records))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, pkg.StatusResponse{
		Translator:  s.Resolver.Mode(),
		Languages:   config.Languages,
		DoctorLang:  s.DoctorLang,
		PatientLang: s.PatientLang,
	})
}

// handleChatPage renders the transcript with the same lazy recompute as the
// JSON listing.
func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := s.Store.ReadAll(ctx)
	if err != nil {
		s.Logger.Errorw("read failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	doctorLang, patientLang, err := s.languageSettings(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := struct {
		Mode        string
		Languages   []string
		DoctorLang  string
		PatientLang string
		Messages    []pkg.MessageView
	}{
		Mode:        s.Resolver.Mode(),
		Languages:   config.Languages,
		DoctorLang:  doctorLang,
		PatientLang: patientLang,
		Messages:    s.messageViews(ctx, records, doctorLang, patientLang),
	}
	if err := s.Templates.ExecuteTemplate(w, "chat.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// messageViews builds the presentation form of the transcript. When a stored
// translation is missing it is recomputed from the record's own source
// language and the viewer-relevant target; the recompute is view-only and is
// never written back to the store.
func (s *Server) messageViews(ctx context.Context, records []pkg.MessageRecord, doctorLang, patientLang string) []pkg.MessageView {
	views := make([]pkg.MessageView, 0, len(records))
	for _, rec := range records {
		displayTarget := patientLang
		if rec.Role == pkg.RolePatient {
			displayTarget = doctorLang
		}
		translated := rec.TranslatedContent
		if translated == "" {
			translated = s.Resolver.Translate(ctx, rec.Content, rec.SourceLang, displayTarget)
		}
		views = append(views, pkg.MessageView{
			ID:           rec.ID,
			Role:         rec.Role,
			Content:      rec.Content,
			Translated:   translated,
			SourceLang:   rec.SourceLang,
			TargetLang:   rec.TargetLang,
			Timestamp:    rec.Timestamp,
			AudioDataURL: audioDataURL(rec.Audio),
		})
	}
	return views
}

// languageSettings reads the viewer's doctor/patient languages from the
// request, falling back to the configured defaults.
func (s *Server) languageSettings(r *http.Request) (doctorLang, patientLang string, err error) {
	doctorLang = s.DoctorLang
	patientLang = s.PatientLang
	if v := requestValue(r, "doctor_lang"); v != "" {
		doctorLang = v
	}
	if v := requestValue(r, "patient_lang"); v != "" {
		patientLang = v
	}
	if !config.IsSupportedLanguage(doctorLang) {
		return "", "", errors.New("unsupported doctor language " + doctorLang)
	}
	if !config.IsSupportedLanguage(patientLang) {
		return "", "", errors.New("unsupported patient language " + patientLang)
	}
	return doctorLang, patientLang, nil
}

// requestValue looks in the parsed form first so POST bodies win, then the
// query string.
func requestValue(r *http.Request, key string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return r.URL.Query().Get(key)
}

func (s *Server) readAudio(r *http.Request) []byte {
	file, _, err := r.FormFile("audio")
	if err != nil {
		return nil
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

// audioDataURL encodes raw audio bytes as an inline playable resource. The
// stored bytes themselves are never modified.
func audioDataURL(audio []byte) string {
	if len(audio) == 0 {
		return ""
	}
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(audio)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
