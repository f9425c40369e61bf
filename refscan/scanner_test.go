package refscan

import "testing"

func findShape(matches []RawMatch, shape Shape) (RawMatch, bool) {
	for _, m := range matches {
		if m.Shape == shape {
			return m, true
		}
	}
	return RawMatch{}, false
}

func TestScanShapes(t *testing.T) {
	s := NewScanner()

	tests := []struct {
		name     string
		input    string
		shape    Shape
		wantText string
	}{
		{"full", "as stated in Rom. 5:18 the gift came", ShapeFull, "Rom. 5:18"},
		{"full with letter suffix", "the way in John 14:6a is Christ", ShapeFull, "John 14:6a"},
		{"full range", "see Matt. 24:45-51 for the parable", ShapeFull, "Matt. 24:45-51"},
		{"comma list", "the saints in Rom. 16:1, 4-5, 16, 20 greeted", ShapeCommaList, "Rom. 16:1, 4-5, 16, 20"},
		{"semicolon chain two books", "clothed per Isa. 61:10; Luke 15:22 anew", ShapeSemicolonChain, "Isa. 61:10; Luke 15:22"},
		{"semicolon chain inherited book", "gifts in Eph. 4:7-16; 6:10-20 equip us", ShapeSemicolonChain, "Eph. 4:7-16; 6:10-20"},
		{"parenthetical", "forgiveness of sins (Acts 10:43) is preached", ShapeParenthetical, "(Acts 10:43)"},
		{"parenthetical with cue", "the Spirit (cf. Rom. 8:16) witnesses", ShapeParenthetical, "(cf. Rom. 8:16)"},
		{"cross ref", "cf. Rom. 12:3 on the measure of faith", ShapeCrossRef, "cf. Rom. 12:3"},
		{"chapter only", "according to Luke 7 the Lord entered", ShapeChapterOnly, "Luke 7"},
		{"standalone single", "the hope in v. 5 never puts us to shame", ShapeStandalone, "v. 5"},
		{"standalone range", "seen in vv. 47-48 of this chapter", ShapeStandalone, "vv. 47-48"},
		{"standalone list", "note vv. 1, 10-11 here", ShapeStandalone, "vv. 1, 10-11"},
		{"ordinal book", "love in 1 Cor. 13:4 is patient", ShapeFull, "1 Cor. 13:4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := s.Scan(tt.input)
			m, ok := findShape(matches, tt.shape)
			if !ok {
				t.Fatalf("Scan(%q) produced no %v match; got %v", tt.input, tt.shape, matches)
			}
			if m.Text != tt.wantText {
				t.Errorf("matched %q; want %q", m.Text, tt.wantText)
			}
			if tt.input[m.Start:m.End] != m.Text {
				t.Errorf("span [%d,%d) = %q, disagrees with Text %q",
					m.Start, m.End, tt.input[m.Start:m.End], m.Text)
			}
		})
	}
}

func TestScanEmitsOverlappingCandidates(t *testing.T) {
	s := NewScanner()
	matches := s.Scan("(Acts 10:43)")

	if _, ok := findShape(matches, ShapeParenthetical); !ok {
		t.Errorf("no parenthetical candidate in %v", matches)
	}
	if _, ok := findShape(matches, ShapeFull); !ok {
		t.Errorf("no full candidate in %v", matches)
	}
}

func TestScanChapterOnlyNotInsideFullRef(t *testing.T) {
	s := NewScanner()
	for _, m := range s.Scan("the Lord in Luke 7:30 spoke") {
		if m.Shape == ShapeChapterOnly {
			t.Errorf("chapter-only candidate %q inside a full reference", m.Text)
		}
	}
}

func TestScanIgnoresProse(t *testing.T) {
	s := NewScanner()
	inputs := []string{
		"there were 12 baskets and 5 loaves",
		"the meeting starts at 10:30 sharp",
		"V. The church life",
		"",
	}
	for _, in := range inputs {
		for _, m := range s.Scan(in) {
			// "10:30" alone has no book and must not match; bare numbers
			// likewise.
			t.Errorf("Scan(%q) produced unexpected match %v %q", in, m.Shape, m.Text)
		}
	}
}

func TestScanUnicodeSpacing(t *testing.T) {
	s := NewScanner()
	// NBSP between book and chapter, en dash in the range.
	input := "Rom. 5:18–19"
	m, ok := findShape(s.Scan(input), ShapeFull)
	if !ok {
		t.Fatalf("Scan(%q) found no full match", input)
	}
	if m.Start != 0 || m.End != len(input) {
		t.Errorf("span [%d,%d); want [0,%d)", m.Start, m.End, len(input))
	}
}
