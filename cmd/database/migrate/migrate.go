package migration

import (
	"Matrafl-Backend/entities"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const consumableCheck = "consumptions_one_consumable"

// Migrate brings the schema up to date. It is safe to run repeatedly.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("error creating uuid-ossp extension: %w", err)
	}

	// Order matters: every table comes after the tables it references.
	tables := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"session", &entities.Session{}},
		{"food", &entities.Food{}},
		{"recipe", &entities.Recipe{}},
		{"ingredient", &entities.Ingredient{}},
		{"consumption", &entities.Consumption{}},
		{"weight", &entities.Weight{}},
	}
	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", t.name, err)
		}
	}

	// has-many foreign keys live on the child table and are not created while
	// migrating the parent.
	if !db.Migrator().HasConstraint(&entities.Recipe{}, "Ingredients") {
		if err := db.Migrator().CreateConstraint(&entities.Recipe{}, "Ingredients"); err != nil {
			return fmt.Errorf("error adding ingredient foreign key: %w", err)
		}
	}

	if !db.Migrator().HasConstraint(&entities.Consumption{}, consumableCheck) {
		err := db.Exec(
			"ALTER TABLE consumptions ADD CONSTRAINT " + consumableCheck +
				" CHECK ((food_id IS NULL) <> (recipe_id IS NULL))",
		).Error
		if err != nil {
			return fmt.Errorf("error adding %s constraint: %w", consumableCheck, err)
		}
	}

	log.Info("database migration complete")
	return nil
}
