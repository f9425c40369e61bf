// refscan/resolver.go - expansion of raw matches into verse keys
package refscan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// VerseKey addresses a single verse. Two keys are equal iff all three
// fields are equal; it is the unit of output and of deduplication.
type VerseKey struct {
	Book    Book
	Chapter int
	Verse   int
}

// Ref renders the key in outline notation, e.g. "Eph. 4:11".
func (k VerseKey) Ref() string {
	return fmt.Sprintf("%s %d:%d", k.Book.Abbrev(), k.Chapter, k.Verse)
}

// ResolvedReference is one expanded verse plus the provenance of the
// match that produced it.
type ResolvedReference struct {
	Key   VerseKey
	Start int
	End   int
	Shape Shape
	Text  string
}

var (
	reSegBookChapList = regexp.MustCompile(`^(` + bookPattern + `)\.?` + spc + `+(\d+):(.+)$`)
	reSegBookChap     = regexp.MustCompile(`^(` + bookPattern + `)\.?` + spc + `+(\d+)$`)
	reSegChapList     = regexp.MustCompile(`^(\d+):(.+)$`)
	reVerseItem       = regexp.MustCompile(`^(\d+)[a-z]?(?:` + spc + `*` + dash + spc + `*(\d+)[a-z]?)?$`)
	reCrossRefCue     = regexp.MustCompile(`^(?i:cf\.?|see)` + spc + `+`)
	reStandaloneCue   = regexp.MustCompile(`^(?:vv?\.|verses?)` + spc + `*`)
)

// Resolve expands one raw match against the current context. Malformed
// pieces are dropped silently; there is no error path. Fully qualified
// segments update ctx as a side effect.
func Resolve(m RawMatch, ctx *ScanContext) []VerseKey {
	return resolveMatch(m, ctx, false)
}

// resolveMatch is Resolve plus the seeding rule: in seed mode only the
// first fully qualified segment moves the context, so that standalone
// verses keep resolving against the passage a Scripture Reading heading
// names first.
func resolveMatch(m RawMatch, ctx *ScanContext, seed bool) []VerseKey {
	text := strings.TrimSpace(m.Text)

	switch m.Shape {
	case ShapeParenthetical:
		text = strings.TrimPrefix(text, "(")
		text = strings.TrimSuffix(text, ")")
		text = strings.TrimSpace(text)
		text = reCrossRefCue.ReplaceAllString(text, "")
		return resolveChain(text, ctx, seed)

	case ShapeCrossRef:
		return resolveChain(reCrossRefCue.ReplaceAllString(text, ""), ctx, seed)

	case ShapeChapterOnly:
		// Chapter citations carry no verse; they only move the cursor.
		if mm := reSegBookChap.FindStringSubmatch(text); mm != nil {
			if b, ok := NormalizeBook(mm[1]); ok {
				if ch, err := strconv.Atoi(mm[2]); err == nil && ch >= 1 {
					observe(ctx, b, ch, seed)
				}
			}
		}
		return nil

	case ShapeStandalone:
		book, chapter, ok := ctx.Current()
		if !ok {
			// No context yet: dropped by design, not an error.
			return nil
		}
		return expandList(book, chapter, reStandaloneCue.ReplaceAllString(text, ""))

	default: // Full, CommaList, SemicolonChain, Suggested
		return resolveChain(text, ctx, seed)
	}
}

// resolveChain walks semicolon-separated segments left to right. A
// segment lacking a book inherits the previous segment's book; one
// lacking a chapter inherits the chapter too. Inheritance is strictly
// intra-chain and never consults ctx.
func resolveChain(text string, ctx *ScanContext, seed bool) []VerseKey {
	var keys []VerseKey
	book := NoBook
	chapter := 0

	for _, seg := range strings.Split(text, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		var list string
		if mm := reSegBookChapList.FindStringSubmatch(seg); mm != nil {
			b, ok := NormalizeBook(mm[1])
			if !ok {
				continue
			}
			book = b
			chapter, _ = strconv.Atoi(mm[2])
			list = mm[3]
		} else if mm := reSegBookChap.FindStringSubmatch(seg); mm != nil {
			// "Luke 15" inside a chain: chapter-level segment, no verses.
			b, ok := NormalizeBook(mm[1])
			if !ok {
				continue
			}
			book = b
			chapter, _ = strconv.Atoi(mm[2])
			if chapter >= 1 {
				observe(ctx, book, chapter, seed)
			}
			continue
		} else if mm := reSegChapList.FindStringSubmatch(seg); mm != nil {
			if book == NoBook {
				continue
			}
			chapter, _ = strconv.Atoi(mm[1])
			list = mm[2]
		} else {
			// Bare verse numbers inherit both book and chapter.
			if book == NoBook || chapter < 1 {
				continue
			}
			list = seg
		}

		if chapter < 1 {
			continue
		}
		keys = append(keys, expandList(book, chapter, list)...)
		observe(ctx, book, chapter, seed)
	}
	return keys
}

func observe(ctx *ScanContext, b Book, ch int, seed bool) {
	if seed {
		if _, _, ok := ctx.Current(); ok {
			return
		}
	}
	ctx.Observe(b, ch)
}

// expandList expands "1, 4-5, 16" into individual keys, left to right,
// unsorted. Letter suffixes ("6a") are cosmetic and stripped. A range
// whose end precedes its start is discarded.
func expandList(book Book, chapter int, list string) []VerseKey {
	var keys []VerseKey
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		mm := reVerseItem.FindStringSubmatch(item)
		if mm == nil {
			continue
		}
		start, _ := strconv.Atoi(mm[1])
		end := start
		if mm[2] != "" {
			end, _ = strconv.Atoi(mm[2])
		}
		if start < 1 || end < start {
			continue
		}
		for v := start; v <= end; v++ {
			keys = append(keys, VerseKey{Book: book, Chapter: chapter, Verse: v})
		}
	}
	return keys
}
