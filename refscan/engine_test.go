package refscan

import (
	"strings"
	"testing"
)

func hasKey(refs []ResolvedReference, k VerseKey) bool {
	for _, r := range refs {
		if r.Key == k {
			return true
		}
	}
	return false
}

func countKey(refs []ResolvedReference, k VerseKey) int {
	n := 0
	for _, r := range refs {
		if r.Key == k {
			n++
		}
	}
	return n
}

func TestEngineStandaloneNeedsContext(t *testing.T) {
	e := NewEngine()
	if got := e.Scan("v. 5"); len(got) != 0 {
		t.Errorf("Scan(\"v. 5\") = %v; want nothing without context", got)
	}
}

func TestEngineStandaloneAfterFullReference(t *testing.T) {
	e := NewEngine()
	got := e.Scan("Paul writes in Rom. 5:1 of peace, and in v. 5 of hope.")

	if !hasKey(got, VerseKey{Romans, 5, 1}) {
		t.Errorf("missing Rom 5:1 in %v", got)
	}
	if !hasKey(got, VerseKey{Romans, 5, 5}) {
		t.Errorf("standalone v. 5 did not resolve against Rom. 5: %v", got)
	}
}

func TestEngineScriptureReadingSeeding(t *testing.T) {
	doc := "Scripture Reading: Rom. 5:1-11\n\nI. The hope spoken of in v. 13 sustains the believers.\n"
	e := NewEngine()
	got := e.Scan(doc)

	for v := 1; v <= 11; v++ {
		if !hasKey(got, VerseKey{Romans, 5, v}) {
			t.Errorf("missing Rom 5:%d from the Scripture Reading expansion", v)
		}
	}
	if !hasKey(got, VerseKey{Romans, 5, 13}) {
		t.Errorf("v. 13 did not resolve against the Scripture Reading: %v", got)
	}
}

func TestEngineSeedingPrecedesInlineReferences(t *testing.T) {
	// The standalone verse appears before the first inline reference;
	// it must still resolve against the Scripture Reading, not Luke 7.
	doc := "Scripture Reading: Rom. 5:1-11\n\n" +
		"A. The love of God poured out in v. 13 of this chapter.\n" +
		"B. The Lord's compassion according to Luke 7 toward the widow, vv. 12-13.\n"
	e := NewEngine()
	got := e.Scan(doc)

	if !hasKey(got, VerseKey{Romans, 5, 13}) {
		t.Errorf("v. 13 before any inline reference should resolve to Rom 5:13: %v", got)
	}
	// After "Luke 7" moves the cursor, the trailing vv. 12-13 follow it.
	if !hasKey(got, VerseKey{Luke, 7, 12}) || !hasKey(got, VerseKey{Luke, 7, 13}) {
		t.Errorf("vv. 12-13 after Luke 7 should resolve to Luke 7: %v", got)
	}
}

func TestEngineSeedingUsesFirstSegment(t *testing.T) {
	// A chained Scripture Reading seeds from its first passage, the one
	// the heading announces. v. 21 falls outside both chain ranges, so
	// the chapter it lands in exposes which segment seeded the context.
	doc := "Scripture Reading: Eph. 4:7-16; 6:10-20\n\nThe truth in v. 21 is in Jesus.\n"
	e := NewEngine()
	got := e.Scan(doc)

	if !hasKey(got, VerseKey{Ephesians, 4, 21}) {
		t.Errorf("v. 21 did not resolve against the first chain segment: %v", got)
	}
	if hasKey(got, VerseKey{Ephesians, 6, 21}) {
		t.Errorf("v. 21 resolved against the chain's last segment: %v", got)
	}
	// The standalone citation never outranks the chain expansion's keys.
	for _, r := range got {
		if r.Shape == ShapeStandalone && r.Key != (VerseKey{Ephesians, 4, 21}) {
			t.Errorf("unexpected standalone resolution %+v", r)
		}
	}
}

func TestEngineEndToEnd(t *testing.T) {
	doc := "Scripture Reading: Eph. 4:7-16; 6:10-20\n\n" +
		"I. Christ ascended and gave gifts to the Body, v. 11.\n"
	e := NewEngine()
	got := e.Scan(doc)

	var want []VerseKey
	for v := 7; v <= 16; v++ {
		want = append(want, VerseKey{Ephesians, 4, v})
	}
	for v := 10; v <= 20; v++ {
		want = append(want, VerseKey{Ephesians, 6, v})
	}
	if len(got) != len(want) {
		t.Fatalf("got %d references; want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("ref[%d] = %v; want %v", i, got[i].Key, k)
		}
	}
	// The standalone v. 11 deduplicated against the range expansion and
	// kept the explicit occurrence's text.
	idx := -1
	for i, r := range got {
		if r.Key == (VerseKey{Ephesians, 4, 11}) {
			idx = i
			break
		}
	}
	if idx < 0 || !strings.Contains(got[idx].Text, "Eph") {
		t.Errorf("Eph 4:11 should carry the Scripture Reading's text, got %+v", got[idx])
	}
}

func TestEngineParentheticalProducesSingleReference(t *testing.T) {
	e := NewEngine()
	got := e.Scan("forgiveness of sins (Acts 10:43) preached to all")

	if len(got) != 1 {
		t.Fatalf("got %d references; want exactly 1: %v", len(got), got)
	}
	if got[0].Key != (VerseKey{Acts, 10, 43}) {
		t.Errorf("key = %v; want Acts 10:43", got[0].Key)
	}
}

func TestEngineDedupKeepsExplicitOccurrence(t *testing.T) {
	e := NewEngine()
	got := e.Scan("Rom. 5:1-11 speaks of hope; later v. 5 repeats it.")

	if n := countKey(got, VerseKey{Romans, 5, 5}); n != 1 {
		t.Fatalf("Rom 5:5 occurs %d times; want 1", n)
	}
	for _, r := range got {
		if r.Key == (VerseKey{Romans, 5, 5}) && r.Shape == ShapeStandalone {
			t.Errorf("duplicate standalone occurrence kept over the explicit range: %+v", r)
		}
	}
}

type fakeSuggester struct {
	matches []RawMatch
}

func (f *fakeSuggester) Suggest(string) []RawMatch { return f.matches }

func TestEngineSuggesterLowestPriority(t *testing.T) {
	text := "grace reigns per Rom. 5:21 unto life"
	sug := &fakeSuggester{matches: []RawMatch{
		// Overlaps the regex-confirmed full match: must lose.
		{Start: 17, End: 26, Text: "Rom. 5:21"},
		// Non-overlapping suggestion elsewhere in the text.
		{Start: 0, End: 5, Text: "John 3:16"},
	}}
	e := NewEngine(WithSuggester(sug))
	got := e.Scan(text)

	if !hasKey(got, VerseKey{Romans, 5, 21}) {
		t.Errorf("missing the regex-confirmed Rom 5:21: %v", got)
	}
	for _, r := range got {
		if r.Key == (VerseKey{Romans, 5, 21}) && r.Shape == ShapeSuggested {
			t.Errorf("suggested match outranked the full match: %+v", r)
		}
	}
	if !hasKey(got, VerseKey{John, 3, 16}) {
		t.Errorf("non-overlapping suggestion dropped: %v", got)
	}
}
