package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raako71/RClone-Diff/compare"
	"github.com/raako71/RClone-Diff/metrics"
)

func (s *Server) router() *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	router.StrictSlash(true)
	router.HandleFunc("/", BaseHandler)
	router.Handle("/metrics", metrics.Handler())

	router.HandleFunc("/api", s.StatusHandler).Methods("GET")
	router.HandleFunc("/api/delta", s.DeltaHandler).Methods("GET")
	router.HandleFunc("/api/compare", s.CompareHandler).Methods("POST")
	router.HandleFunc("/api/sync", s.SyncHandler).Methods("POST")

	return router
}

// Base route redirects to the API root.
func BaseHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api", http.StatusMovedPermanently)
}

func (s *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	writeData(w, newStatusResponse(s, s.LastResult()))
}

func (s *Server) DeltaHandler(w http.ResponseWriter, r *http.Request) {
	last := s.LastResult()
	if last == nil {
		writeError(w, http.StatusNotFound, "no comparison result available")
		return
	}

	writeData(w, last.Root)
}

func (s *Server) CompareHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.Compare(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeData(w, newStatusResponse(s, result))
}

func (s *Server) SyncHandler(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	err := s.Sync(r.Context(), confirmed)

	switch {
	case err == nil:
		writeData(w, map[string]string{"status": "synced"})
	case errors.Is(err, compare.ErrNoComparison):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, compare.ErrNotConfirmed):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}
