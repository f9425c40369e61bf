// refscan/engine.go - full scan pipeline
package refscan

import "regexp"

// Suggester is an optional external oracle (e.g. an LLM) that proposes
// additional candidate spans. Its matches enter the merge at the lowest
// priority and are never required for correctness.
type Suggester interface {
	Suggest(text string) []RawMatch
}

// Engine runs the complete pipeline over one document: scan, Scripture
// Reading seeding, in-order resolution with context tracking, overlap
// pruning and final dedup. An Engine is stateless between calls and safe
// to reuse; each Scan gets its own ScanContext.
type Engine struct {
	scanner   *Scanner
	suggester Suggester
}

type Option func(*Engine)

// WithSuggester attaches an external match oracle.
func WithSuggester(s Suggester) Option {
	return func(e *Engine) { e.suggester = s }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{scanner: NewScanner()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var reScriptureReading = regexp.MustCompile(`(?im)^[^\S\n]*Scripture` + spc + `+Reading:[^\n]*`)

// Scan extracts every verse reference from the document and returns
// them expanded, in first-seen source order, deduplicated by VerseKey.
// Any input is valid; the worst outcome is an empty result.
//
// If the document contains a "Scripture Reading:" line, that line is
// processed first in isolation so that standalone citations anywhere in
// the body resolve against the announced passage rather than the
// nearest preceding reference.
func (e *Engine) Scan(text string) []ResolvedReference {
	ctx := &ScanContext{}
	var out []ResolvedReference

	srStart, srEnd := -1, -1
	if loc := reScriptureReading.FindStringIndex(text); loc != nil {
		srStart, srEnd = loc[0], loc[1]
		for _, m := range PruneOverlaps(e.scanner.Scan(text[srStart:srEnd])) {
			keys := resolveMatch(m, ctx, true)
			for _, k := range keys {
				out = append(out, ResolvedReference{
					Key:   k,
					Start: srStart + m.Start,
					End:   srStart + m.End,
					Shape: m.Shape,
					Text:  m.Text,
				})
			}
		}
	}

	matches := e.scanner.Scan(text)
	if e.suggester != nil {
		for _, m := range e.suggester.Suggest(text) {
			m.Shape = ShapeSuggested
			matches = append(matches, m)
		}
	}

	for _, m := range PruneOverlaps(matches) {
		if srStart >= 0 && m.Start >= srStart && m.End <= srEnd {
			continue // the Scripture Reading line was already processed
		}
		for _, k := range resolveMatch(m, ctx, false) {
			out = append(out, ResolvedReference{
				Key:   k,
				Start: m.Start,
				End:   m.End,
				Shape: m.Shape,
				Text:  m.Text,
			})
		}
	}

	return DedupReferences(out)
}
