package bootstrap

import (
	"fmt"

	"dbvaultapi/config"
	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"
)

// Migrate creates or updates the application tables at startup.
func Migrate() error {
	logger.Infof("Running database migrations...")

	if err := config.DB.AutoMigrate(&models.User{}, &models.DBCredential{}); err != nil {
		logger.Errorf("Migration failed: %v", err)
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	logger.Infof("Database migrations completed successfully")
	return nil
}
