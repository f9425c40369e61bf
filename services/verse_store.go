// services/verse_store.go - Verse text lookup backed by gorm
package services

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"outliner/models"
	"outliner/refscan"
)

// VerseStore resolves verse keys to verse text. Implementations return
// ok=false for verses not present in the store; lookups never fail hard,
// a missing verse just renders without text.
type VerseStore interface {
	Lookup(book refscan.Book, chapter, verse int) (string, bool)
}

// DBVerseStore serves verse text from the verses table, scoped to one
// translation. The importer can load several translations side by side;
// the store reads the one BIBLE_TRANSLATION selects.
type DBVerseStore struct {
	db          *gorm.DB
	translation string
}

var verseStore *DBVerseStore

// InitVerseStore initializes the singleton store.
func InitVerseStore(db *gorm.DB) {
	verseStore = NewDBVerseStore(db)
}

// GetVerseStore returns the initialized store.
func GetVerseStore() *DBVerseStore {
	return verseStore
}

func NewDBVerseStore(db *gorm.DB) *DBVerseStore {
	translation := os.Getenv("BIBLE_TRANSLATION")
	if translation == "" {
		translation = "KJV"
	}
	return &DBVerseStore{db: db, translation: translation}
}

// Lookup returns the text of a single verse.
func (s *DBVerseStore) Lookup(book refscan.Book, chapter, verse int) (string, bool) {
	var v models.Verse
	err := s.db.Where("book = ? AND chapter = ? AND verse = ? AND translation = ?",
		book.Name(), chapter, verse, s.translation).
		First(&v).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error looking up %s %d:%d: %v", book.Name(), chapter, verse, err)
		}
		return "", false
	}
	return v.Text, true
}

// ChapterVerses returns all verses of a chapter in verse order.
func (s *DBVerseStore) ChapterVerses(book refscan.Book, chapter int) ([]models.Verse, error) {
	var verses []models.Verse
	err := s.db.Where("book = ? AND chapter = ? AND translation = ?", book.Name(), chapter, s.translation).
		Order("verse ASC").
		Find(&verses).Error
	if err != nil {
		return nil, err
	}
	return verses, nil
}

// Search returns verses whose text contains the query, capped at limit.
func (s *DBVerseStore) Search(query string, limit int) ([]models.Verse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var verses []models.Verse
	err := s.db.Where("text LIKE ? AND translation = ?", "%"+query+"%", s.translation).
		Limit(limit).
		Find(&verses).Error
	if err != nil {
		return nil, err
	}
	return verses, nil
}
