// Browser flavor: serves the word endpoints and the /game API.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level(zerolog.InfoLevel))

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	srv := httpserver.New(httpserver.Options{
		Store:        store.NewMemoryStore(store.WithTTL(cfg.GameTTL), store.WithMaxGames(cfg.MaxGames)),
		Words:        list,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
		Log:          zerolog.New(os.Stderr).With().Timestamp().Logger(),
	})
	log.Info().Str("port", cfg.Port).Int("words", list.Len()).Msg("starting hangman server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
