package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/citidle/go-server/internal/cities"
	"github.com/citidle/go-server/internal/game"
	"github.com/citidle/go-server/internal/httpserver"
	"github.com/citidle/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ds, err := cities.LoadDefault()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load city dataset")
	}
	log.Info().Int("cities", ds.Len()).Msg("city dataset loaded")

	eval := game.NewEvaluator(ds)
	mem := store.NewMemoryStore()
	srv := httpserver.New(eval, mem)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
