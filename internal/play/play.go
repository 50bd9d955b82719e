// internal/play/play.go
//
// Driver loop for one console game.
// Responsibilities:
//   - Get the secret word from a WordSource and start a game.
//   - Read guesses from an Input, apply them, and render each outcome.
//   - Stop calling ApplyGuess as soon as the game is over.
//   - Treat a cancelled input as an immediate loss (the word is still shown),
//     and an exhausted input as the end of the session.

package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrCancelled may be returned by an Input when the player cancels.
// A context error from a cancelled ctx is treated the same way.
var ErrCancelled = errors.New("play: input cancelled")

const guessPrompt = "Guess a letter or the entire word: "

// WordSource supplies the secret word. It must not fail.
type WordSource interface {
	Word(ctx context.Context) string
}

// Input returns one raw line per prompt.
type Input interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Presenter renders messages; it holds no state.
type Presenter interface {
	Banner(title string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Success(msg string)
}

// Options wires a session together.
type Options struct {
	Words     WordSource
	Input     Input
	Presenter Presenter
	Log       zerolog.Logger

	// Attempts overrides game.MaxAttempts when positive.
	Attempts int
}

// Result summarizes a finished (or abandoned) session.
type Result struct {
	GameID    string
	Word      string
	Won       bool
	Finished  bool
	Cancelled bool
	Attempts  int // attempts left at the end
	Rounds    int // number of ApplyGuess calls
}

// Run plays one game to completion.
// It returns an error only for an unusable word or a failing Input.
func Run(ctx context.Context, opts Options) (Result, error) {
	p := opts.Presenter
	p.Banner("HANGMAN")

	word := strings.ToLower(opts.Words.Word(ctx))
	g, err := game.New(word, game.WithAttempts(opts.Attempts))
	if err != nil {
		return Result{}, fmt.Errorf("play: word %q: %w", word, err)
	}
	log := opts.Log.With().Str("gameId", g.ID).Logger()
	log.Info().Int("length", len(word)).Msg("game started")

	p.Info(fmt.Sprintf("We've got a word for you. It consists of %d letters.\n"+
		"Guess the entire word or try letter by letter.\n"+
		"You have %d attempts. Good luck!", len(word), g.Attempts()))

	res := Result{GameID: g.ID, Word: g.Word()}
	for !g.Finished() {
		p.Info(Spaced(g.Revealed()))

		raw, err := opts.Input.ReadLine(ctx, guessPrompt)
		switch {
		case err == nil:
		case errors.Is(err, ErrCancelled) || ctx.Err() != nil:
			p.Info("> let me out of here.")
			g.Forfeit()
			res.Cancelled = true
			log.Info().Msg("game cancelled")
			continue
		case errors.Is(err, io.EOF):
			log.Info().Int("rounds", res.Rounds).Msg("input closed")
			res.Attempts = g.Attempts()
			return res, nil
		default:
			res.Attempts = g.Attempts()
			return res, fmt.Errorf("play: read guess: %w", err)
		}

		out := g.ApplyGuess(raw)
		res.Rounds++
		log.Debug().Str("kind", string(out.Kind)).Int("remaining", g.Attempts()).Msg("guess")
		Report(p, out)
	}

	End(p, g)
	res.Finished, res.Won, res.Attempts = true, g.Won(), g.Attempts()
	log.Info().Bool("won", res.Won).Int("rounds", res.Rounds).Msg("game over")
	return res, nil
}

// Report renders a single outcome. Terminal wins are left to End.
func Report(p Presenter, out game.Outcome) {
	switch out.Kind {
	case game.KindMalformed:
		p.Warning("Wrong input. Try again...")
	case game.KindRepeatAbsent:
		p.Warning(fmt.Sprintf("Remember the past. There's no %q.", out.Letter))
	case game.KindRepeatPresent:
		p.Warning(fmt.Sprintf("You've found all %q.", out.Letter))
	case game.KindHit:
		if !out.Complete {
			p.Success("That is correct.")
		}
	case game.KindMiss:
		if out.MultiChar {
			p.Error("Haste makes waste.")
		}
		p.Error(AttemptsLeft(out.Remaining))
	case game.KindLoss:
		p.Error(AttemptsLeft(0))
	}
}

// End renders the final message. A lost game shows its word.
func End(p Presenter, g *game.Game) {
	if g.Won() {
		p.Success(Spaced(g.Word()))
		p.Success(fmt.Sprintf("Victory! You guessed the word %q.", g.Word()))
		return
	}
	p.Error(fmt.Sprintf("Game over! The word was %q.", g.Word()))
}

// AttemptsLeft formats the remaining-attempts message.
func AttemptsLeft(n int) string {
	if n == 1 {
		return "You have 1 attempt left."
	}
	if n == 0 {
		return "0 attempts left."
	}
	return fmt.Sprintf("You have %d attempts left.", n)
}

// Spaced separates the letters of s with two spaces.
func Spaced(s string) string {
	return strings.Join(strings.Split(s, ""), "  ")
}
