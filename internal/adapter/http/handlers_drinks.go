package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) handleDrinkSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	q := r.URL.Query().Get("q")
	limit := intQuery(r, "limit", 20)

	items, err := s.drinks.Search(r.Context(), user.ID, q, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleDrinkResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	drink, err := s.drinks.Resolve(r.Context(), user.ID, name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if drink == nil {
		writeError(w, http.StatusNotFound, errors.New("unknown drink"))
		return
	}
	writeJSON(w, http.StatusOK, drink)
}

func (s *Server) handleCustomDrink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	var body struct {
		Name   string  `json:"name"`
		DoseMg float64 `json:"doseMg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.drinks.AddCustom(r.Context(), user.ID, body.Name, body.DoseMg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCustomDrinkDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.drinks.DeleteCustom(r.Context(), user.ID, body.Name); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
