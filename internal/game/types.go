// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Kind: the classification of a single guess.
//   - Outcome: what one call to ApplyGuess did, with enough data to render it.
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// MaxAttempts is the number of misses a player may make before losing.
const MaxAttempts = 10

// Placeholder marks a letter of the word that has not been revealed yet.
const Placeholder = '*'

// ErrInvalidWord is returned by New when the secret word is empty or
// contains anything other than ASCII letters.
var ErrInvalidWord = errors.New("game: word must be one or more letters a-z")

// Kind classifies the result of a guess.
type Kind string

const (
	// KindMalformed: the guess contained something other than letters a–z.
	KindMalformed Kind = "malformed"
	// KindWin: the guess was the whole word.
	KindWin Kind = "win"
	// KindRepeatPresent: a letter guessed before that is in the word.
	KindRepeatPresent Kind = "repeat_present"
	// KindRepeatAbsent: a letter guessed before that is not in the word.
	KindRepeatAbsent Kind = "repeat_absent"
	// KindHit: a fresh letter that revealed at least one position.
	KindHit Kind = "hit"
	// KindMiss: a fresh guess that revealed nothing and cost an attempt.
	KindMiss Kind = "miss"
	// KindLoss: the last attempt was spent; the game is over.
	KindLoss Kind = "loss"
)

// Outcome is returned by ApplyGuess. Only the fields relevant to Kind are set.
type Outcome struct {
	Kind Kind `json:"kind"`

	// Letter is the repeated letter (RepeatPresent, RepeatAbsent).
	Letter string `json:"letter,omitempty"`

	// Word is the revealed word (Win).
	Word string `json:"word,omitempty"`

	// Positions are the newly revealed indexes (Hit).
	Positions []int `json:"positions,omitempty"`
	// Complete is set when a hit revealed the last hidden letter.
	Complete bool `json:"complete,omitempty"`

	// Remaining is the attempt budget after the guess.
	Remaining int `json:"remaining"`
	// MultiChar is set when a miss came from a multi-letter guess.
	MultiChar bool `json:"multiChar,omitempty"`
}

// Terminal reports whether the outcome ended the game.
func (o Outcome) Terminal() bool {
	switch o.Kind {
	case KindWin, KindLoss:
		return true
	case KindHit:
		return o.Complete
	}
	return false
}

// Game holds the state of a single hangman game.
// All state is private; it changes only through ApplyGuess and Forfeit.
type Game struct {
	ID string // Unique game identifier.

	word     string              // secret word, lowercase a–z
	revealed []byte              // same length as word; Placeholder or letter
	tried    map[string]struct{} // single-letter guesses seen so far
	attempts int                 // misses left
	finished bool
	won      bool
	last     Outcome // terminal outcome, replayed after the game ends
}

// View is a read-only snapshot of a game, suitable for JSON responses.
type View struct {
	ID       string   `json:"gameId"`
	Length   int      `json:"length"`
	Revealed string   `json:"revealed"`
	Attempts int      `json:"attempts"`
	Tried    []string `json:"tried"`
	State    string   `json:"state"` // "playing" | "won" | "lost"
}
