// internal/httpserver/routes_game.go
//
// HTTP routes for playing hangman from a browser.
//   - POST /game/new      → start a game (random, daily, or a fixed answer for testing)
//   - POST /game/guess    → apply one guess
//   - POST /game/forfeit  → give up; the word is revealed
//   - GET  /game/{id}     → current state of a game (resume after reload)
//
// The word is only included in responses once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/forfeit", s.handleForfeit)
		r.Get("/{id}", s.handleGetGame)
	})
}

// newGameReq payload for POST /game/new.
type newGameReq struct {
	Daily  bool   `json:"daily"`  // use today's word
	Answer string `json:"answer"` // optional fixed answer (testing)
}

// gameRes is returned by every /game endpoint.
type gameRes struct {
	Game    game.View     `json:"game"`
	Outcome *game.Outcome `json:"outcome,omitempty"`
	Word    string        `json:"word,omitempty"` // set once finished
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	word := req.Answer
	switch {
	case word != "":
	case req.Daily:
		word = s.words.Daily(s.now(), s.salt)
	default:
		word = s.words.Random()
	}

	g, err := game.New(word)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Bool("daily", req.Daily).Msg("game started")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(gameRes{Game: g.View()})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("get game")
		writeError(w, http.StatusInternalServerError, "get_failed")
		return
	}

	res := gameRes{Game: g.View()}
	if g.Finished() {
		res.Word = g.Word()
	}
	_ = json.NewEncoder(w).Encode(res)
}

// guessReq payload for POST /game/guess and /game/forfeit.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	s.play(w, r, func(g *game.Game, req guessReq) game.Outcome { return g.ApplyGuess(req.Guess) })
}

func (s *Server) handleForfeit(w http.ResponseWriter, r *http.Request) {
	s.play(w, r, func(g *game.Game, _ guessReq) game.Outcome { return g.Forfeit() })
}

// play decodes the request, runs move on the stored game and writes the result.
func (s *Server) play(w http.ResponseWriter, r *http.Request, move func(*game.Game, guessReq) game.Outcome) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res gameRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		out := move(g, req)
		res.Outcome = &out
		res.Game = g.View()
		if g.Finished() {
			res.Word = g.Word()
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", req.GameID).Msg("update game")
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	hlog.FromRequest(r).Debug().
		Str("gameId", req.GameID).
		Str("kind", string(res.Outcome.Kind)).
		Str("state", res.Game.State).
		Msg("move")
	_ = json.NewEncoder(w).Encode(res)
}
