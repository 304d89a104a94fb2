package language

// scriptBlock is a single Unicode block range belonging to a script.
type scriptBlock struct {
	name string
	lo   rune
	hi   rune
}

// scriptBlocks lists one block range per detectable script. Order matters:
// the first block containing a codepoint wins.
var scriptBlocks = []scriptBlock{
	{"Devanagari", 0x0900, 0x097F},
	{"Bengali", 0x0980, 0x09FF},
	{"Gurmukhi", 0x0A00, 0x0A7F},
	{"Gujarati", 0x0A80, 0x0AFF},
	{"Oriya", 0x0B00, 0x0B7F},
	{"Tamil", 0x0B80, 0x0BFF},
	{"Telugu", 0x0C00, 0x0C7F},
	{"Kannada", 0x0C80, 0x0CFF},
	{"Malayalam", 0x0D00, 0x0D7F},
	{"Sinhala", 0x0D80, 0x0DFF},
	{"Thai", 0x0E00, 0x0E7F},
	{"Lao", 0x0E80, 0x0EFF},
	{"Myanmar", 0x1000, 0x109F},
	{"Khmer", 0x1780, 0x17FF},
	{"Arabic", 0x0600, 0x06FF},
	{"Hebrew", 0x0590, 0x05FF},
	{"Cyrillic", 0x0400, 0x04FF},
	{"Greek", 0x0370, 0x03FF},
	{"Georgian", 0x10A0, 0x10FF},
	{"Armenian", 0x0530, 0x058F},
	{"Ethiopic", 0x1200, 0x137F},
	{"Hangul", 0xAC00, 0xD7AF},
	{"Japanese", 0x3040, 0x30FF}, // Hiragana + Katakana
	{"Han", 0x4E00, 0x9FFF},
}

// DetectScript classifies raw text by testing codepoints against the block
// table. The first codepoint that falls inside a known block decides; text
// with no match (including pure ASCII) is Latin.
func DetectScript(text string) string {
	for _, r := range text {
		for _, b := range scriptBlocks {
			if r >= b.lo && r <= b.hi {
				return b.name
			}
		}
	}
	return "Latin"
}

// IsLatinText reports whether the text contains no codepoints from any
// registered non-Latin block.
func IsLatinText(text string) bool {
	return DetectScript(text) == "Latin"
}
