// apps/go-solver/internal/httpserver/routes_history.go
//
// Finished-run ledger:
//   - GET /history/mine   → caller's recent runs and stats (requires auth)
//   - GET /history/stats  → aggregate stats over all runs

package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
)

func (s *Server) mountHistory() {
	s.r.With(s.requireAuth()).Get("/history/mine", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		runs, err := s.history.RunsByUser(r.Context(), me.ID, 50)
		if err != nil {
			log.Error().Err(err).Msg("runs by user")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		stats, err := s.history.Stats(r.Context(), me.ID)
		if err != nil {
			log.Error().Err(err).Msg("user stats")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Stats history.Stats `json:"stats"`
			Runs  []history.Run `json:"runs"`
		}{stats, runs})
	})

	s.r.Get("/history/stats", func(w http.ResponseWriter, r *http.Request) {
		if s.history == nil {
			writeJSON(w, http.StatusOK, history.Stats{})
			return
		}
		stats, err := s.history.Stats(r.Context(), "")
		if err != nil {
			log.Error().Err(err).Msg("stats")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}
