// refscan/book.go - canonical book catalog
package refscan

import (
	"strings"
	"unicode"
)

// Book identifies one of the 66 canonical books. Values compare by
// identity; spelling variants are handled by NormalizeBook.
type Book int

const (
	NoBook Book = iota
	Genesis
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	FirstSamuel
	SecondSamuel
	FirstKings
	SecondKings
	FirstChronicles
	SecondChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSongs
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	FirstCorinthians
	SecondCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	FirstThessalonians
	SecondThessalonians
	FirstTimothy
	SecondTimothy
	Titus
	Philemon
	Hebrews
	James
	FirstPeter
	SecondPeter
	FirstJohn
	SecondJohn
	ThirdJohn
	Jude
	Revelation
)

// bookInfo holds the display forms and accepted spellings of one book.
// Aliases are stored in normalized form (see normalizeAlias); the full
// name and abbreviation are registered automatically.
type bookInfo struct {
	name    string
	abbrev  string
	aliases []string
}

var books = map[Book]bookInfo{
	Genesis:             {"Genesis", "Gen.", []string{"gn", "ge"}},
	Exodus:              {"Exodus", "Exo.", []string{"exod", "ex"}},
	Leviticus:           {"Leviticus", "Lev.", []string{"lv"}},
	Numbers:             {"Numbers", "Num.", []string{"nm", "nu"}},
	Deuteronomy:         {"Deuteronomy", "Deut.", []string{"deu", "dt"}},
	Joshua:              {"Joshua", "Josh.", []string{"jos"}},
	Judges:              {"Judges", "Judg.", []string{"jdg", "jud"}},
	Ruth:                {"Ruth", "Ruth", []string{"rt", "ru"}},
	FirstSamuel:         {"1 Samuel", "1 Sam.", []string{"1 sa", "1 sm"}},
	SecondSamuel:        {"2 Samuel", "2 Sam.", []string{"2 sa", "2 sm"}},
	FirstKings:          {"1 Kings", "1 Kings", []string{"1 king", "1 kgs", "1 ki"}},
	SecondKings:         {"2 Kings", "2 Kings", []string{"2 king", "2 kgs", "2 ki"}},
	FirstChronicles:     {"1 Chronicles", "1 Chron.", []string{"1 chr", "1 ch"}},
	SecondChronicles:    {"2 Chronicles", "2 Chron.", []string{"2 chr", "2 ch"}},
	Ezra:                {"Ezra", "Ezra", []string{"ezr"}},
	Nehemiah:            {"Nehemiah", "Neh.", []string{"ne"}},
	Esther:              {"Esther", "Esth.", []string{"est", "et"}},
	Job:                 {"Job", "Job", nil},
	Psalms:              {"Psalms", "Psa.", []string{"psalm", "pss", "ps"}},
	Proverbs:            {"Proverbs", "Prov.", []string{"pro", "prv"}},
	Ecclesiastes:        {"Ecclesiastes", "Eccl.", []string{"ecc", "ec"}},
	SongOfSongs:         {"Song of Songs", "S.S.", []string{"song of solomon", "song", "ss", "so"}},
	Isaiah:              {"Isaiah", "Isa.", []string{"is"}},
	Jeremiah:            {"Jeremiah", "Jer.", []string{"je", "jr"}},
	Lamentations:        {"Lamentations", "Lam.", []string{"la", "lm"}},
	Ezekiel:             {"Ezekiel", "Ezek.", []string{"eze", "ezk", "ez"}},
	Daniel:              {"Daniel", "Dan.", []string{"da", "dn"}},
	Hosea:               {"Hosea", "Hosea", []string{"hos", "ho"}},
	Joel:                {"Joel", "Joel", []string{"jl"}},
	Amos:                {"Amos", "Amos", []string{"am"}},
	Obadiah:             {"Obadiah", "Obad.", []string{"ob"}},
	Jonah:               {"Jonah", "Jonah", []string{"jon", "jnh", "jo"}},
	Micah:               {"Micah", "Micah", []string{"mic", "mi"}},
	Nahum:               {"Nahum", "Nahum", []string{"nah", "na"}},
	Habakkuk:            {"Habakkuk", "Hab.", []string{"hk"}},
	Zephaniah:           {"Zephaniah", "Zeph.", []string{"zep", "zp"}},
	Haggai:              {"Haggai", "Hag.", []string{"hg"}},
	Zechariah:           {"Zechariah", "Zech.", []string{"zec", "zc"}},
	Malachi:             {"Malachi", "Mal.", []string{"ml"}},
	Matthew:             {"Matthew", "Matt.", []string{"mat", "mt"}},
	Mark:                {"Mark", "Mark", []string{"mar", "mk"}},
	Luke:                {"Luke", "Luke", []string{"luk", "lk"}},
	John:                {"John", "John", []string{"joh", "jn"}},
	Acts:                {"Acts", "Acts", []string{"act", "ac"}},
	Romans:              {"Romans", "Rom.", []string{"ro", "rm"}},
	FirstCorinthians:    {"1 Corinthians", "1 Cor.", []string{"1 co"}},
	SecondCorinthians:   {"2 Corinthians", "2 Cor.", []string{"2 co"}},
	Galatians:           {"Galatians", "Gal.", []string{"ga", "gl"}},
	Ephesians:           {"Ephesians", "Eph.", []string{"ep"}},
	Philippians:         {"Philippians", "Phil.", []string{"php", "ph"}},
	Colossians:          {"Colossians", "Col.", []string{"cl"}},
	FirstThessalonians:  {"1 Thessalonians", "1 Thes.", []string{"1 thess", "1 th", "1 ts"}},
	SecondThessalonians: {"2 Thessalonians", "2 Thes.", []string{"2 thess", "2 th", "2 ts"}},
	FirstTimothy:        {"1 Timothy", "1 Tim.", []string{"1 ti", "1 tm"}},
	SecondTimothy:       {"2 Timothy", "2 Tim.", []string{"2 ti", "2 tm"}},
	Titus:               {"Titus", "Titus", []string{"tit", "tt"}},
	Philemon:            {"Philemon", "Philem.", []string{"phm", "phlm"}},
	Hebrews:             {"Hebrews", "Heb.", []string{"hb"}},
	James:               {"James", "James", []string{"jas", "jm"}},
	FirstPeter:          {"1 Peter", "1 Pet.", []string{"1 pe", "1 pt"}},
	SecondPeter:         {"2 Peter", "2 Pet.", []string{"2 pe", "2 pt"}},
	FirstJohn:           {"1 John", "1 John", []string{"1 jn", "1 jo"}},
	SecondJohn:          {"2 John", "2 John", []string{"2 jn", "2 jo"}},
	ThirdJohn:           {"3 John", "3 John", []string{"3 jn", "3 jo"}},
	Jude:                {"Jude", "Jude", []string{"jd"}},
	Revelation:          {"Revelation", "Rev.", []string{"re", "rv"}},
}

// aliasTable maps normalized spellings to books. Built once at process
// start, read-only afterwards.
var aliasTable = buildAliasTable()

func buildAliasTable() map[string]Book {
	table := make(map[string]Book, len(books)*4)
	add := func(alias string, b Book) {
		key := normalizeAlias(alias)
		if key == "" {
			return
		}
		if prev, ok := table[key]; ok && prev != b {
			panic("refscan: ambiguous book alias " + key)
		}
		table[key] = b
	}
	for b, info := range books {
		add(info.name, b)
		add(info.abbrev, b)
		for _, a := range info.aliases {
			add(a, b)
		}
	}
	return table
}

// normalizeAlias lower-cases, strips periods, collapses internal
// whitespace and separates a leading ordinal ("1Cor" -> "1 cor").
func normalizeAlias(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	fields := strings.Fields(s)
	s = strings.Join(fields, " ")
	if len(s) >= 2 && s[0] >= '1' && s[0] <= '3' && unicode.IsLetter(rune(s[1])) {
		s = s[:1] + " " + s[1:]
	}
	return s
}

// NormalizeBook resolves any known spelling or abbreviation to its
// canonical book. A false return is the ordinary outcome for words that
// are not book names.
func NormalizeBook(alias string) (Book, bool) {
	b, ok := aliasTable[normalizeAlias(alias)]
	return b, ok
}

// Name returns the full display name, e.g. "1 Corinthians".
func (b Book) Name() string {
	return books[b].name
}

// Abbrev returns the customary outline abbreviation, e.g. "1 Cor.".
func (b Book) Abbrev() string {
	return books[b].abbrev
}

func (b Book) String() string {
	return b.Name()
}

// AllBooks returns the 66 books in canonical order.
func AllBooks() []Book {
	out := make([]Book, 0, len(books))
	for b := Genesis; b <= Revelation; b++ {
		out = append(out, b)
	}
	return out
}
