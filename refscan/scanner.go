// refscan/scanner.go - citation shape matchers
package refscan

import (
	"regexp"
	"sort"
	"strings"
)

// Shape tags the citation form a RawMatch was recognized as. The order
// is the priority order used when overlapping matches conflict: earlier
// shapes carry stronger evidence.
type Shape int

const (
	ShapeFull Shape = iota
	ShapeCommaList
	ShapeSemicolonChain
	ShapeParenthetical
	ShapeCrossRef
	ShapeChapterOnly
	ShapeStandalone
	ShapeSuggested
)

var shapeNames = [...]string{
	"full", "comma_list", "semicolon_chain", "parenthetical",
	"cross_ref", "chapter_only", "standalone", "suggested",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// RawMatch is one candidate span produced by the scanner. Start and End
// are byte offsets into the scanned text.
type RawMatch struct {
	Start int
	End   int
	Shape Shape
	Text  string
}

// Whitespace and dash classes. Outline text extracted from PDFs carries
// narrow no-break spaces, NBSPs, en and em dashes; matching them here
// keeps byte offsets aligned with the source instead of rewriting it.
const (
	spc  = `[\s` + "\u00A0\u202F" + `]`
	dash = `[-` + "\u2013\u2014" + `]`
)

// bookPattern recognizes the book spellings that occur in outline
// citations. Capitalized forms only; NormalizeBook accepts a superset.
const bookPattern = `(?:` +
	`Gen(?:esis)?|Exo(?:d(?:us)?)?|Lev(?:iticus)?|Num(?:bers)?|Deut(?:eronomy)?|` +
	`Josh(?:ua)?|Judg(?:es)?|Ruth|[12]` + spc + `*Sam(?:uel)?|[12]` + spc + `*Kings?|` +
	`[12]` + spc + `*Chr(?:on(?:icles)?)?|Ezra|Neh(?:emiah)?|Esth(?:er)?|Job|` +
	`Psa(?:lms?)?|Pss?|Prov(?:erbs)?|Eccl(?:esiastes)?|Song(?:` + spc + `*of` + spc + `*(?:Songs?|Solomon))?|S\.S\.|` +
	`Isa(?:iah)?|Jer(?:emiah)?|Lam(?:entations)?|Ezek(?:iel)?|Dan(?:iel)?|Hos(?:ea)?|Joel|` +
	`Amos|Obad(?:iah)?|Jon(?:ah)?|Mic(?:ah)?|Nah(?:um)?|Hab(?:akkuk)?|Zeph(?:aniah)?|` +
	`Hag(?:gai)?|Zech(?:ariah)?|Mal(?:achi)?|` +
	`Matt(?:hew)?|Mark|Luke|John|Acts|Rom(?:ans)?|[12]` + spc + `*Cor(?:inthians)?|` +
	`Gal(?:atians)?|Eph(?:esians)?|Philem(?:on)?|Phil(?:ippians)?|Col(?:ossians)?|` +
	`[12]` + spc + `*Thess(?:alonians)?|[12]` + spc + `*Tim(?:othy)?|Titus|Heb(?:rews)?|` +
	`James|Jas|[12]` + spc + `*Pet(?:er)?|[1-3]` + spc + `*John|Jude|Rev(?:elation)?` +
	`)`

const (
	verseNum   = `\d+[a-z]?`
	verseRange = verseNum + `(?:` + spc + `*` + dash + spc + `*` + verseNum + `)?`
	verseList  = verseRange + `(?:` + spc + `*,` + spc + `*` + verseRange + `)*`

	// A chain continuation after ";" may repeat the book, give a bare
	// chapter:list, or give bare verse numbers inheriting both.
	chainSeg = `(?:` + bookPattern + `\.?` + spc + `+)?(?:\d+:)?` + verseList

	// refExpr covers Full, CommaList and SemicolonChain in one greedy
	// pattern so the three never overlap each other.
	refExpr = bookPattern + `\.?` + spc + `+\d+:` + verseList +
		`(?:` + spc + `*;` + spc + `*` + chainSeg + `)*`
)

var (
	reRefExpr       = regexp.MustCompile(`\b` + refExpr)
	reParenthetical = regexp.MustCompile(`\(` + spc + `*(?:(?i:cf\.?|see)` + spc + `+)?` + refExpr + spc + `*\)`)
	reCrossRef      = regexp.MustCompile(`(?i:\bcf\.?|\bsee)` + spc + `+` + refExpr)
	reChapterOnly   = regexp.MustCompile(`\b` + bookPattern + `\.?` + spc + `+\d+\b`)
	// Lowercase only: "V." is an outline label, not a verse cue.
	reStandalone = regexp.MustCompile(`(?:\bvv?\.|\bverses?\b)` + spc + `*` + verseList)
)

// Scanner applies every shape matcher over the input and reports all
// candidate spans, unfiltered and possibly overlapping. Conflict
// resolution belongs to the merge stage, not here.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) Scan(text string) []RawMatch {
	var out []RawMatch

	for _, loc := range reRefExpr.FindAllStringIndex(text, -1) {
		m := RawMatch{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}
		switch {
		case strings.Contains(m.Text, ";"):
			m.Shape = ShapeSemicolonChain
		case strings.Contains(m.Text, ","):
			m.Shape = ShapeCommaList
		default:
			m.Shape = ShapeFull
		}
		out = append(out, m)
	}

	for _, loc := range reParenthetical.FindAllStringIndex(text, -1) {
		out = append(out, RawMatch{loc[0], loc[1], ShapeParenthetical, text[loc[0]:loc[1]]})
	}

	for _, loc := range reCrossRef.FindAllStringIndex(text, -1) {
		out = append(out, RawMatch{loc[0], loc[1], ShapeCrossRef, text[loc[0]:loc[1]]})
	}

	for _, loc := range reChapterOnly.FindAllStringIndex(text, -1) {
		// "Luke 7" inside "Luke 7:30" is part of a full reference, not a
		// chapter citation. RE2 has no lookahead, so check the next byte.
		if loc[1] < len(text) && text[loc[1]] == ':' {
			continue
		}
		out = append(out, RawMatch{loc[0], loc[1], ShapeChapterOnly, text[loc[0]:loc[1]]})
	}

	for _, loc := range reStandalone.FindAllStringIndex(text, -1) {
		out = append(out, RawMatch{loc[0], loc[1], ShapeStandalone, text[loc[0]:loc[1]]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Shape < out[j].Shape
	})
	return out
}
