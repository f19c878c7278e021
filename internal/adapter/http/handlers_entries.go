package adapthttp

import (
	"net/http"

	"wellness/internal/app"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	items, err := s.entries.ListForUser(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleEntryTodayGet(w http.ResponseWriter, r *http.Request) {
	entry, today, err := s.entries.GetToday(r.Context(), userFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})
}

func (s *Server) handleEntryTodayPut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	var body app.EntryInput
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, today, err := s.entries.SaveToday(ctx, user, body)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.logger.Debug("entry saved", "user", user, "date", today)
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})
}
