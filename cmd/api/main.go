package main

import (
	"os"

	"github.com/placemate/placemate/internal/pkg/logger"
	"github.com/placemate/placemate/internal/server"
)

// @title Placemate API
// @version 1.0
// @description Training & Placement Office portal API: approval-gated registration, job postings, applications and placement analytics

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
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
