package refscan

import "testing"

func TestPruneOverlapsPriority(t *testing.T) {
	// Full outranks parenthetical on the same span.
	matches := []RawMatch{
		{Start: 0, End: 12, Shape: ShapeParenthetical, Text: "(Acts 10:43)"},
		{Start: 1, End: 11, Shape: ShapeFull, Text: "Acts 10:43"},
	}
	got := PruneOverlaps(matches)
	if len(got) != 1 {
		t.Fatalf("kept %d matches; want 1", len(got))
	}
	if got[0].Shape != ShapeFull {
		t.Errorf("winner shape = %v; want %v", got[0].Shape, ShapeFull)
	}
}

func TestPruneOverlapsWeakShapesLose(t *testing.T) {
	matches := []RawMatch{
		{Start: 10, End: 19, Shape: ShapeChapterOnly, Text: "Luke 7"},
		{Start: 10, End: 22, Shape: ShapeFull, Text: "Luke 7:30"},
	}
	got := PruneOverlaps(matches)
	if len(got) != 1 || got[0].Shape != ShapeFull {
		t.Errorf("got %v; want only the full match", got)
	}
}

func TestPruneOverlapsKeepsIndependentMatches(t *testing.T) {
	matches := []RawMatch{
		{Start: 0, End: 9, Shape: ShapeFull, Text: "Rom. 5:18"},
		{Start: 20, End: 25, Shape: ShapeStandalone, Text: "v. 5"},
		{Start: 40, End: 46, Shape: ShapeChapterOnly, Text: "Luke 7"},
	}
	got := PruneOverlaps(matches)
	if len(got) != 3 {
		t.Fatalf("kept %d matches; want all 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Start > got[i].Start {
			t.Errorf("output not ordered by position: %v", got)
		}
	}
}

func TestDedupReferencesKeepsFirstOccurrence(t *testing.T) {
	refs := []ResolvedReference{
		{Key: VerseKey{Romans, 5, 5}, Start: 0, End: 11, Shape: ShapeCommaList, Text: "Rom. 5:1-11"},
		{Key: VerseKey{Romans, 5, 6}, Start: 0, End: 11, Shape: ShapeCommaList, Text: "Rom. 5:1-11"},
		{Key: VerseKey{Romans, 5, 5}, Start: 50, End: 54, Shape: ShapeStandalone, Text: "v. 5"},
	}
	got := DedupReferences(refs)
	if len(got) != 2 {
		t.Fatalf("kept %d refs; want 2", len(got))
	}
	if got[0].Text != "Rom. 5:1-11" || got[0].Shape != ShapeCommaList {
		t.Errorf("first occurrence metadata lost: %+v", got[0])
	}
}
