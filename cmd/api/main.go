package main

import (
	"os"

	"github.com/Javohir0411/global-school/internal/pkg/logger"
	"github.com/Javohir0411/global-school/internal/server"
)

// @title Global School API
// @version 1.0
// @description Backend API for the Global School administration platform: subjects, teachers, students, groups, payments, attendance and user accounts.

// @contact.name API Support
// @contact.email support@global-school.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
	os.Exit(0)
}
