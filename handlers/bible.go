// handlers/bible.go
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"outliner/database"
	"outliner/models"
	"outliner/refscan"
	"outliner/services"
)

// GetBooks returns the seeded 66-book catalog.
func GetBooks(c *fiber.Ctx) error {
	var books []models.Book
	if err := database.GetDB().Order("position ASC").Find(&books).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load books",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"books":   books,
	})
}

// GetVerse returns a single verse by book, chapter, and verse. The book
// query parameter accepts any recognized name or abbreviation.
func GetVerse(c *fiber.Ctx) error {
	book, ok := refscan.NormalizeBook(c.Query("book"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown book",
		})
	}

	chapter, err1 := strconv.Atoi(c.Query("chapter"))
	verse, err2 := strconv.Atoi(c.Query("verse"))
	if err1 != nil || err2 != nil || chapter < 1 || verse < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "chapter and verse must be positive integers",
		})
	}

	store := services.GetVerseStore()
	text, ok := store.Lookup(book, chapter, verse)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Verse not found",
		})
	}

	key := refscan.VerseKey{Book: book, Chapter: chapter, Verse: verse}
	return c.JSON(fiber.Map{
		"success":   true,
		"reference": key.Ref(),
		"book":      book.Name(),
		"chapter":   chapter,
		"verse":     verse,
		"text":      text,
	})
}

// GetChapter returns every verse of a chapter.
func GetChapter(c *fiber.Ctx) error {
	book, ok := refscan.NormalizeBook(c.Query("book"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown book",
		})
	}

	chapter, err := strconv.Atoi(c.Query("chapter"))
	if err != nil || chapter < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "chapter must be a positive integer",
		})
	}

	verses, err := services.GetVerseStore().ChapterVerses(book, chapter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load chapter",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"book":    book.Name(),
		"chapter": chapter,
		"verses":  verses,
	})
}

// SearchVerses returns verses whose text contains the query string.
func SearchVerses(c *fiber.Ctx) error {
	query := c.Query("q")
	if len(query) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Query must be at least 3 characters",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	verses, err := services.GetVerseStore().Search(query, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Search failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(verses),
		"verses":  verses,
	})
}
