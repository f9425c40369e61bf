// handlers/outlines.go
package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"outliner/services"
)

type uploadOutlineRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// UploadOutline accepts an outline either as JSON {filename, text} or as
// a multipart file upload under the "outline" field, scans it, and
// returns the new session with its detected references.
func UploadOutline(c *fiber.Ctx) error {
	svc := services.GetOutlineService()

	var filename, text string
	if file, err := c.FormFile("outline"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Could not read uploaded file",
			})
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Could not read uploaded file",
			})
		}
		filename = file.Filename
		text = string(data)
	} else {
		var req uploadOutlineRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid request body",
			})
		}
		filename = req.Filename
		text = req.Text
	}

	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Outline text is required",
		})
	}

	session := svc.Process(filename, text)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"session": sessionResponse(session),
	})
}

// GetOutline returns a stored session and its references.
func GetOutline(c *fiber.Ctx) error {
	session := services.GetOutlineService().Get(c.Params("id"))
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Session not found or expired",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"session": sessionResponse(session),
	})
}

// PopulateOutline returns the outline text with verse text inserted
// beneath each referencing line.
func PopulateOutline(c *fiber.Ctx) error {
	svc := services.GetOutlineService()
	session := svc.Get(c.Params("id"))
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Session not found or expired",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"id":        session.ID,
		"populated": svc.Populate(session),
	})
}

// DeleteOutline discards a session before its TTL runs out.
func DeleteOutline(c *fiber.Ctx) error {
	services.GetSessionStore().Delete(c.Params("id"))
	return c.JSON(fiber.Map{"success": true})
}

func sessionResponse(s *services.OutlineSession) fiber.Map {
	refs := make([]fiber.Map, 0, len(s.References))
	for _, r := range s.References {
		refs = append(refs, fiber.Map{
			"reference": r.Key.Ref(),
			"book":      r.Key.Book.Name(),
			"chapter":   r.Key.Chapter,
			"verse":     r.Key.Verse,
			"start":     r.Start,
			"end":       r.End,
			"matched":   r.Text,
		})
	}

	return fiber.Map{
		"id":         s.ID,
		"filename":   s.Filename,
		"created_at": s.CreatedAt,
		"references": refs,
	}
}
