// models/models.go - Bible text models
package models

// Book is one catalog row per canonical book, seeded at migration time.
type Book struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;not null;size:50"`
	Abbreviation string `json:"abbreviation" gorm:"size:20"`
	Testament    string `json:"testament" gorm:"size:2"` // OT or NT
	Position     int    `json:"position" gorm:"uniqueIndex;not null"`
}

// Verse is a single verse of the stored translation. Book holds the
// canonical book name, matching what the reference engine emits.
type Verse struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Book        string `json:"book" gorm:"index:idx_verse_lookup;not null;size:50"`
	Chapter     int    `json:"chapter" gorm:"index:idx_verse_lookup;not null"`
	Verse       int    `json:"verse" gorm:"index:idx_verse_lookup;not null"`
	Text        string `json:"text" gorm:"not null;type:text"`
	Translation string `json:"translation" gorm:"index;default:'KJV';size:20"`
}
