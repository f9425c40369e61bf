// database/migrate.go - Schema migration and book catalog seeding
package database

import (
	"log"

	"outliner/models"
	"outliner/refscan"
)

// RunMigrations creates the schema and seeds the 66-book catalog.
func RunMigrations() {
	if err := db.AutoMigrate(&models.Book{}, &models.Verse{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seedBooks()
}

// seedBooks fills the books table from the canonical catalog. Idempotent;
// an already seeded table is left alone.
func seedBooks() {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		log.Printf("Warning: could not check books table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	catalog := refscan.AllBooks()
	rows := make([]models.Book, 0, len(catalog))
	for i, b := range catalog {
		testament := "OT"
		if b >= refscan.Matthew {
			testament = "NT"
		}
		rows = append(rows, models.Book{
			Name:         b.Name(),
			Abbreviation: b.Abbrev(),
			Testament:    testament,
			Position:     i + 1,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("Warning: failed to seed book catalog: %v", err)
		return
	}
	log.Printf("✅ Seeded %d books", len(rows))
}
