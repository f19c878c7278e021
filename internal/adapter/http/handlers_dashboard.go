package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"wellness/internal/app"
	"wellness/internal/domain"
)

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	tips, latest, err := s.dashboard.Recommendations(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": latest, "tips": tips})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	items, err := s.dashboard.Stats(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	m, err := s.dashboard.Correlations(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"empty": m.Empty(), "fields": m.Fields, "values": m.Values})
}

func (s *Server) handleRolling(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field := domain.Field(q.Get("field"))
	if !field.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown field %q", field))
		return
	}
	window := app.TrendWindow
	if v := q.Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("window must be an integer"))
			return
		}
		window = n
	}

	points, err := s.dashboard.Rolling(r.Context(), userFromContext(r), field, window)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"field": field, "window": window, "items": points})
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	items, err := s.dashboard.Weekly(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Build(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
