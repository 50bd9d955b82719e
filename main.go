// main.go
//
// Console hangman: one game per run, no flags.
// Configuration comes from the environment (and .env); see internal/config.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/play"
	"github.com/robalobadob/hangman/internal/words"
	"github.com/robalobadob/hangman/internal/wordsource"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level(zerolog.WarnLevel))

	offline, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load word list, using built-in words")
		offline = words.Default()
	}

	src := &wordsource.Source{Offline: offline, Log: log.Logger}
	if !cfg.Offline {
		src.Remote = wordsource.NewClient(cfg.WordAPIURL, cfg.WordAPITimeout)
	}

	// Ctrl-C cancels the game: a forced loss that still shows the word.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = play.Run(ctx, play.Options{
		Words:     src,
		Input:     console.NewReader(os.Stdin, os.Stdout),
		Presenter: console.Stdout(cfg.ColorDisabled()),
		Log:       log.Logger,
	})
	if err != nil {
		log.Error().Err(err).Msg("game aborted")
	}
}
