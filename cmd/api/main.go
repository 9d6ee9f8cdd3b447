package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/adarsh/schoolsite/internal/pkg/logger"
	"github.com/adarsh/schoolsite/internal/server"
)

func main() {
	// A missing .env is fine; configs/config.yaml and real env vars cover it
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
