package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/models"
)

// Migrate brings the schema up to date. On Postgres the pgvector extension
// is installed first so the recipe embedding column can be created.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to install pgvector extension: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Recipe{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Printf("Database schema is up to date")
	return nil
}
