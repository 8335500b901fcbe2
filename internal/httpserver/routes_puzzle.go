// apps/go-solver/internal/httpserver/routes_puzzle.go
//
// Archive puzzle picker:
//   - GET /puzzle/today   → deterministic puzzle for the UTC date (or ?date=YYYY-MM-DD)
//   - GET /puzzle/random  → any archive puzzle

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/puzzle"
)

type puzzleRes struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
	Date   string `json:"date,omitempty"`
}

func (s *Server) mountPuzzle(r chi.Router) {
	r.Route("/puzzle", func(r chi.Router) {
		r.Get("/today", func(w http.ResponseWriter, r *http.Request) {
			day := s.now()
			if q := r.URL.Query().Get("date"); q != "" {
				t, err := time.Parse("2006-01-02", q)
				if err != nil {
					writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
					return
				}
				day = t
			}
			n := puzzle.Number(day, s.cfg.PuzzleSalt, s.cfg.PuzzleCount)
			writeJSON(w, http.StatusOK, puzzleRes{Number: n, URL: puzzle.URL(s.cfg.PuzzleBaseURL, n), Date: puzzle.DateKey(day)})
		})
		r.Get("/random", func(w http.ResponseWriter, r *http.Request) {
			n := puzzle.Random(s.cfg.PuzzleCount)
			writeJSON(w, http.StatusOK, puzzleRes{Number: n, URL: puzzle.URL(s.cfg.PuzzleBaseURL, n)})
		})
	})
}
