package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/upmon/upmon/internal/domain"
	apimw "github.com/upmon/upmon/internal/httpapi/middleware"
	"github.com/upmon/upmon/internal/repo"
)

// Server is the operator-facing API: register checks, list them, read a
// check's probe history. It is a thin mapping over the stores; all probing
// happens in the background worker.
type Server struct {
	Logger   *zap.Logger
	Checks   repo.CheckStore
	Results  repo.ResultStore
	validate *validator.Validate
}

func NewServer(l *zap.Logger, cs repo.CheckStore, rs repo.ResultStore) *Server {
	return &Server{
		Logger:   l,
		Checks:   cs,
		Results:  rs,
		validate: validator.New(),
	}
}

func (s *Server) Router(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireKey(apiKeys))
		r.Post("/api/checks", s.handleCreateCheck)
		r.Get("/api/checks", s.handleListChecks)
		r.Get("/api/checks/{id}/results", s.handleListResults)
	})

	return r
}

type createPayload struct {
	Name            string `json:"name" validate:"required"`
	URL             string `json:"url" validate:"required,url"`
	IntervalSeconds int    `json:"interval_seconds" validate:"required,min=10"`
	AlertEmail      string `json:"alert_email" validate:"omitempty,email"`
}

func (s *Server) handleCreateCheck(w http.ResponseWriter, r *http.Request) {
	var p createPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	// the min=10 tag is MinIntervalSeconds at the API edge
	if err := s.validate.Struct(p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := &domain.Check{
		ID:              domain.CheckID(uuid.NewString()),
		Name:            p.Name,
		URL:             p.URL,
		IntervalSeconds: p.IntervalSeconds,
		AlertEmail:      p.AlertEmail,
		IsActive:        true,
		LastStatus:      domain.StatusUnknown,
	}
	if err := s.Checks.Add(r.Context(), c); err != nil {
		s.Logger.Warn("check_add_error", zap.String("url", p.URL), zap.Error(err))
		http.Error(w, "could not add", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("check_registered",
		zap.String("check_id", string(c.ID)),
		zap.String("name", c.Name),
		zap.String("url", c.URL),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": string(c.ID)})
}

func (s *Server) handleListChecks(w http.ResponseWriter, r *http.Request) {
	cs, err := s.Checks.List(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	if cs == nil {
		cs = []domain.Check{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cs)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	id := domain.CheckID(chi.URLParam(r, "id"))

	c, err := s.Checks.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "lookup error", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	rows, err := s.Results.ListByCheck(r.Context(), id)
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []domain.CheckResult{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
