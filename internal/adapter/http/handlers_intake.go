package adapthttp

import (
	"net/http"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// handleIntakes lists the intakes for a day (GET) or records a new
// one (POST).
func (s *Server) handleIntakes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listIntakes(w, r)
	case http.MethodPost:
		s.recordIntake(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listIntakes(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	day := dayQuery(r)

	items, err := s.intakes.ListForDay(r.Context(), user.ID, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "items": items})
}

func (s *Server) recordIntake(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	var body struct {
		Day    string        `json:"day"`
		Intake domain.Intake `json:"intake"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Day == "" {
		body.Day = dayQuery(r)
	}

	id, err := s.intakes.RecordIntake(r.Context(), user.ID, body.Day, body.Intake)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (s *Server) handleIntakesRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	limit := intQuery(r, "limit", 20)

	items, err := s.intakes.ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleIntakeDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	var body struct {
		ID int64 `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.intakes.Delete(r.Context(), user.ID, body.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": body.ID})
}

func (s *Server) handleIntakeUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	undone, id, err := s.intakes.UndoLast(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"undone": undone, "id": id})
}
