package adapthttp

import (
	"net/http"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// handleProfile returns (GET) or replaces (POST) the user's profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getProfile(w, r)
	case http.MethodPost:
		s.saveProfile(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	p, err := s.profiles.GetProfile(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}

func (s *Server) saveProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	var body struct {
		Age    int               `json:"age"`
		Sex    domain.Sex        `json:"sex"`
		Weight float64           `json:"weight"`
		Unit   domain.WeightUnit `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Unit == "" {
		body.Unit = domain.UnitMetric
	}

	p, err := s.profiles.SaveProfile(r.Context(), user.ID, body.Age, body.Sex, body.Weight, body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}
