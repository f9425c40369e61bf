// services/outline.go - Outline processing: detection and verse population
package services

import (
	"fmt"
	"strings"

	"outliner/refscan"
)

// OutlineService ties the reference engine, the verse store, and the
// session store together behind the HTTP handlers.
type OutlineService struct {
	engine   *refscan.Engine
	store    VerseStore
	sessions *SessionStore
}

var outlineService *OutlineService

// InitOutlineService initializes the singleton outline service.
func InitOutlineService(engine *refscan.Engine, store VerseStore, sessions *SessionStore) {
	outlineService = &OutlineService{
		engine:   engine,
		store:    store,
		sessions: sessions,
	}
}

// GetOutlineService returns the initialized outline service.
func GetOutlineService() *OutlineService {
	return outlineService
}

// Process scans an uploaded outline and stores the result as a session.
func (s *OutlineService) Process(filename, text string) *OutlineSession {
	refs := s.engine.Scan(text)
	return s.sessions.Create(filename, text, refs)
}

// Get returns a stored session, or nil when expired or unknown.
func (s *OutlineService) Get(id string) *OutlineSession {
	return s.sessions.Get(id)
}

// Populate renders the outline with verse text inserted beneath each
// line that carries references. Verses missing from the store render as
// the bare reference so the outline stays complete either way.
func (s *OutlineService) Populate(session *OutlineSession) string {
	var b strings.Builder

	text := session.Text
	lineStart := 0
	for lineStart < len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		b.WriteString(text[lineStart:lineEnd])
		b.WriteByte('\n')
		s.writeLineVerses(&b, session.References, lineStart, lineEnd)

		lineStart = lineEnd + 1
	}

	return b.String()
}

// writeLineVerses appends one indented line per reference anchored in
// the byte range [start, end).
func (s *OutlineService) writeLineVerses(b *strings.Builder, refs []refscan.ResolvedReference, start, end int) {
	for _, r := range refs {
		if r.Start < start || r.Start >= end {
			continue
		}
		text, ok := s.store.Lookup(r.Key.Book, r.Key.Chapter, r.Key.Verse)
		if !ok {
			fmt.Fprintf(b, "    %s\n", r.Key.Ref())
			continue
		}
		fmt.Fprintf(b, "    %s %s\n", r.Key.Ref(), text)
	}
}
