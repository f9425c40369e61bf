// refscan/context.go - mutable book/chapter cursor for one document scan
package refscan

// ScanContext is the book/chapter cursor carried through a single scan.
// Fully qualified references overwrite it as they are walked in source
// order; standalone "v."/"vv." citations read it. One instance per
// document, never shared across scans.
type ScanContext struct {
	book    Book
	chapter int
	set     bool
}

// Observe records the book and chapter of a fully resolved reference.
// Last write wins; there is no history.
func (c *ScanContext) Observe(book Book, chapter int) {
	c.book = book
	c.chapter = chapter
	c.set = true
}

// Current returns the cursor, or ok=false if nothing has been observed.
func (c *ScanContext) Current() (book Book, chapter int, ok bool) {
	return c.book, c.chapter, c.set
}
