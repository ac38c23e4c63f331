package database

import (
	"lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// ModelsToMigrate lists every table owned by the catalog, referenced tables first.
var ModelsToMigrate = []any{
	&models.User{},
	&models.Location{},
	&models.Slot{},
	&models.Heart{},
	&models.RatedLevel{},
	&models.VisitedLevel{},
}

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	for _, model := range ModelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("Failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}
