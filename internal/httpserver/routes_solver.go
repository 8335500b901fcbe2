// apps/go-solver/internal/httpserver/routes_solver.go
//
// HTTP routes for solving sessions.
// Exposes, under /solver:
//   - POST   /solver/new    → start a session over the loaded word list
//   - POST   /solver/guess  → submit a guess word and its 0/1/2 feedback
//   - GET    /solver/{id}   → current constraints and candidates
//   - DELETE /solver/{id}   → drop a session
//
// Rejected rounds (malformed input, unknown all-correct word) leave the
// session untouched and do not use an attempt. When a session finishes it is
// written to the history ledger, attributed to the caller if logged in.

package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// mountSolver registers all /solver routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
		r.Delete("/{id}", s.handleDeleteGame)
	})
}

// newGameReq/Res payloads for POST /solver/new.
type newGameReq struct {
	MaxAttempts int `json:"maxAttempts" validate:"min=0,max=100"`
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	MaxAttempts int    `json:"maxAttempts"`
	Remaining   int    `json:"remaining"`
}

// handleNewGame creates a new in-memory session.
// An empty body uses the configured attempt budget.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = jsonDecode(r, &req)
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid maxAttempts")
		return
	}
	budget := req.MaxAttempts
	if budget == 0 {
		budget = s.cfg.MaxAttempts
	}

	g := game.New(s.words, budget)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	metrics.GameStarted()
	log.Info().Str("gameId", g.ID).Int("maxAttempts", g.MaxAttempts).Msg("game started")

	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, MaxAttempts: g.MaxAttempts, Remaining: g.Remaining()})
}

// guessReq/Res payloads for POST /solver/guess.
type guessReq struct {
	GameID   string `json:"gameId" validate:"required"`
	Word     string `json:"word" validate:"required,len=5,alpha"`
	Feedback []int  `json:"feedback" validate:"len=5,dive,min=0,max=2"`
}
type guessRes struct {
	Round game.Round    `json:"round"`
	Game  game.Snapshot `json:"game"`
}

// handleGuess validates and applies one round to a session.
//
// Status codes:
//   - 400 malformed payload, word or feedback
//   - 404 unknown gameId
//   - 409 session already finished
//   - 422 all-correct feedback for a word outside the list
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := jsonDecode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	req.Word = strings.TrimSpace(req.Word)
	if err := s.validate.Struct(req); err != nil {
		metrics.RoundRejected(metrics.KindMalformed)
		writeError(w, http.StatusBadRequest, solver.ErrMalformedGuess.Error()+": "+fieldErrors(err))
		return
	}

	var res guessRes
	var finished *history.Run
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		round, err := g.Play(req.Word, req.Feedback)
		if err != nil {
			return err
		}
		res = guessRes{Round: round, Game: g.Snapshot()}
		if g.State.Finished() {
			run := history.RunFromGame(g, userID(r), s.now())
			finished = &run
		}
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, solver.ErrMalformedGuess):
		metrics.RoundRejected(metrics.KindMalformed)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, game.ErrUnknownSolution):
		metrics.RoundRejected(metrics.KindUnknownSolution)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, game.ErrGameOver):
		metrics.RoundRejected(metrics.KindGameOver)
		writeError(w, http.StatusConflict, err.Error())
		return
	default:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	metrics.RoundAccepted(string(res.Round.State), res.Round.Remaining)
	ev := log.Info()
	if res.Round.Empty {
		ev = log.Warn()
	}
	ev.Str("gameId", req.GameID).
		Str("word", res.Round.Word).
		Int("remaining", res.Round.Remaining).
		Str("state", string(res.Round.State)).
		Msg("round applied")

	if finished != nil && s.history != nil {
		if err := s.history.RecordRun(r.Context(), *finished); err != nil {
			log.Warn().Err(err).Str("gameId", finished.ID).Msg("record run")
		}
	}

	writeJSON(w, http.StatusOK, res)
}

// handleGetGame returns the session snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		snap = g.Snapshot()
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleDeleteGame drops a session.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	_ = s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// userID returns the logged-in user's ID or "" for guests.
func userID(r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return ""
}
