package main

import (
	"context"
	"os"

	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/server"
)

// @title Registrar API
// @version 1.0
// @description Read-only API over student, course and instructor records
// @BasePath /api
// @schemes http https

func main() {
	ctx := context.Background()

	srv, err := server.NewServer(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
