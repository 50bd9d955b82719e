// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games from a secret word with a fixed attempt budget.
//   - Classify and apply guesses (malformed, whole word, repeat, fresh letter).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The engine does no I/O; the word comes from the caller.
//   - A lost game never reveals its word here; that is left to the presenter.
package game

import (
	"bytes"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Option customises a new game.
type Option func(*Game)

// WithAttempts overrides the attempt budget. Values below 1 are ignored.
func WithAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.attempts = n
		}
	}
}

// WithID sets the game identifier instead of generating one.
func WithID(id string) Option {
	return func(g *Game) { g.ID = id }
}

// New constructs a new game for word. The word is lowercased and must be
// made of ASCII letters only.
func New(word string, opts ...Option) (*Game, error) {
	if !isASCIIAlpha(word) {
		return nil, ErrInvalidWord
	}
	w := strings.ToLower(word)
	g := &Game{
		ID:       uuid.NewString(),
		word:     w,
		revealed: bytes.Repeat([]byte{Placeholder}, len(w)),
		tried:    make(map[string]struct{}),
		attempts: MaxAttempts,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// ApplyGuess advances the game by one round.
//
// Classification, first match wins:
//  1. anything but letters a–z (an empty guess counts as " ") → Malformed
//  2. the whole word → Win
//  3. a guess already in the history → RepeatPresent / RepeatAbsent
//  4. otherwise every matching position is revealed → Hit, or Miss / Loss
//
// Single-letter guesses are recorded in the history whether they hit or not.
// Once the game is over ApplyGuess changes nothing and returns the outcome
// that ended it.
func (g *Game) ApplyGuess(raw string) Outcome {
	if g.finished {
		return g.last
	}
	if raw == "" {
		raw = " "
	}
	if !isASCIIAlpha(raw) {
		return Outcome{Kind: KindMalformed, Remaining: g.attempts}
	}
	guess := strings.ToLower(raw)

	if guess == g.word {
		copy(g.revealed, g.word)
		return g.finish(true, Outcome{Kind: KindWin, Word: g.word, Remaining: g.attempts})
	}

	if _, seen := g.tried[guess]; seen {
		kind := KindRepeatAbsent
		if strings.Contains(g.word, guess) {
			kind = KindRepeatPresent
		}
		return Outcome{Kind: kind, Letter: guess, Remaining: g.attempts}
	}

	out := g.reveal(guess)
	if len(guess) == 1 {
		g.tried[guess] = struct{}{}
	}
	return out
}

// reveal handles a fresh, well-formed guess.
func (g *Game) reveal(guess string) Outcome {
	var hits []int
	if len(guess) == 1 {
		for i := 0; i < len(g.word); i++ {
			if g.word[i] == guess[0] && g.revealed[i] == Placeholder {
				g.revealed[i] = guess[0]
				hits = append(hits, i)
			}
		}
	}

	if len(hits) > 0 {
		out := Outcome{Kind: KindHit, Positions: hits, Remaining: g.attempts}
		if bytes.IndexByte(g.revealed, Placeholder) < 0 {
			out.Complete = true
			return g.finish(true, out)
		}
		return out
	}

	g.attempts--
	if g.attempts <= 0 {
		g.attempts = 0
		return g.finish(false, Outcome{Kind: KindLoss})
	}
	return Outcome{Kind: KindMiss, Remaining: g.attempts, MultiChar: len(guess) > 1}
}

// Forfeit ends the game as a loss with no attempts left, as when the player
// cancels. It is a no-op on a finished game.
func (g *Game) Forfeit() Outcome {
	if g.finished {
		return g.last
	}
	g.attempts = 0
	return g.finish(false, Outcome{Kind: KindLoss})
}

func (g *Game) finish(won bool, out Outcome) Outcome {
	g.finished, g.won = true, won
	g.last = out
	return out
}

// Word returns the secret word.
func (g *Game) Word() string { return g.word }

// Revealed returns the revealed buffer, Placeholder for hidden letters.
func (g *Game) Revealed() string { return string(g.revealed) }

// Attempts returns the number of misses left.
func (g *Game) Attempts() int { return g.attempts }

// Finished reports whether the game is over.
func (g *Game) Finished() bool { return g.finished }

// Won reports whether the game ended with the word revealed.
func (g *Game) Won() bool { return g.won }

// Tried returns the single-letter guesses made so far, sorted.
func (g *Game) Tried() []string {
	out := make([]string, 0, len(g.tried))
	for l := range g.tried {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.finished {
		if g.won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// View returns a snapshot of the game that does not expose the word.
func (g *Game) View() View {
	return View{
		ID:       g.ID,
		Length:   len(g.word),
		Revealed: g.Revealed(),
		Attempts: g.attempts,
		Tried:    g.Tried(),
		State:    g.State(),
	}
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.revealed = append([]byte(nil), g.revealed...)
	c.tried = make(map[string]struct{}, len(g.tried))
	for l := range g.tried {
		c.tried[l] = struct{}{}
	}
	c.last.Positions = append([]int(nil), g.last.Positions...)
	return &c
}

// isASCIIAlpha reports whether s is non-empty and all ASCII letters.
func isASCIIAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
