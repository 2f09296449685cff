package migration

import (
	"fmt"
	"log"

	"github.com/whyismycodered/NomNom/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InstructionStep{}); err != nil {
		log.Fatalf("Error migrating instruction step database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
