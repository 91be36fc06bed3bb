package adapthttp

import (
	"errors"
	"net/http"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

func (s *Server) handleChartsSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	day := dayQuery(r)
	step := intQuery(r, "step", 0)

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

	res, err := s.charts.GetSeries(r.Context(), user.ID, day, bedtime, step)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
