package database

import (
	"healthmate/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.HealthLog{},
		&models.AIInsight{},
	)
	if err != nil {
		log.Error("Error during migration", zap.Error(err))
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
