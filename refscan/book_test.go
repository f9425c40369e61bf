package refscan

import "testing"

func TestNormalizeBookRoundTrip(t *testing.T) {
	for _, b := range AllBooks() {
		if got, ok := NormalizeBook(b.Name()); !ok || got != b {
			t.Errorf("NormalizeBook(%q) = %v, %v; want %v", b.Name(), got, ok, b)
		}
		if got, ok := NormalizeBook(b.Abbrev()); !ok || got != b {
			t.Errorf("NormalizeBook(%q) = %v, %v; want %v", b.Abbrev(), got, ok, b)
		}
		for _, alias := range books[b].aliases {
			if got, ok := NormalizeBook(alias); !ok || got != b {
				t.Errorf("NormalizeBook(%q) = %v, %v; want %v", alias, got, ok, b)
			}
		}
	}
}

func TestNormalizeBookVariants(t *testing.T) {
	tests := []struct {
		alias string
		want  Book
	}{
		{"1 Cor", FirstCorinthians},
		{"1Cor", FirstCorinthians},
		{"1 Corinthians", FirstCorinthians},
		{"1 Co", FirstCorinthians},
		{"1.Cor.", FirstCorinthians},
		{"PSALMS", Psalms},
		{"ps", Psalms},
		{"Song of Solomon", SongOfSongs},
		{"S.S.", SongOfSongs},
		{"  Rom.  ", Romans},
		{"2Tim", SecondTimothy},
		{"3 John", ThirdJohn},
		{"rev", Revelation},
	}
	for _, tt := range tests {
		got, ok := NormalizeBook(tt.alias)
		if !ok || got != tt.want {
			t.Errorf("NormalizeBook(%q) = %v, %v; want %v", tt.alias, got, ok, tt.want)
		}
	}
}

func TestNormalizeBookRejectsProse(t *testing.T) {
	for _, word := range []string{"", "the", "Scripture", "Reading", "outline", "verse", "grace", "4"} {
		if b, ok := NormalizeBook(word); ok {
			t.Errorf("NormalizeBook(%q) = %v; want no match", word, b)
		}
	}
}

func TestAllBooksCount(t *testing.T) {
	if got := len(AllBooks()); got != 66 {
		t.Fatalf("AllBooks() has %d entries; want 66", got)
	}
	if len(books) != 66 {
		t.Fatalf("book table has %d entries; want 66", len(books))
	}
}
