package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/upslabs/reservalab/internal/pkg/logger"
	"github.com/upslabs/reservalab/internal/server"
)

func main() {
	// A missing .env file is fine, the environment may already be set.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
