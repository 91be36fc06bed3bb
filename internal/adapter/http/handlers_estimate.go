package adapthttp

import (
	"errors"
	"net/http"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// handleEstimate computes the bedtime projection for a day.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	day := dayQuery(r)

	bedtimeStr := r.URL.Query().Get("bedtime")
	if bedtimeStr == "" {
		writeError(w, http.StatusBadRequest, errors.New("bedtime is required"))
		return
	}
	bedtime, err := domain.ParseClock(bedtimeStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ev, err := s.estimate.Evaluate(r.Context(), user.ID, day, bedtime)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}
