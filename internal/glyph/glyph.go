// internal/glyph/glyph.go
//
// Character classification for guesses and target words.
// Responsibilities:
//   - Segment raw text into logical characters (glyphs) using UTF-8 lead and
//     continuation byte markers.
//   - Map a glyph to its accented lowercase, accented uppercase and plain ASCII
//     equivalents for the Spanish alphabet (á é í ó ú ñ).
//   - ASCII-only case folding for single-byte comparisons.
//
// Notes:
//   - Segmentation is best effort: malformed input never fails, it just yields
//     shorter glyphs.
//   - The equivalence tables are closed on purpose; this is not a general
//     Unicode normalizer.

package glyph

import "strings"

// Glyph is one user-visible character. Plain characters are a single byte,
// extended ones span a lead byte plus its continuation bytes.
type Glyph string

// Len reports the byte length of the glyph.
func (g Glyph) Len() int { return len(g) }

// IsPlain reports whether g is a single plain (ASCII) byte.
func (g Glyph) IsPlain() bool { return len(g) == 1 && isPlain(g[0]) }

// IsSpace reports whether g is the ASCII space separator used in phrases.
func (g Glyph) IsSpace() bool { return g == " " }

func isPlain(c byte) bool        { return c < 0x80 }
func isLead(c byte) bool         { return c&0xC0 == 0xC0 }
func isContinuation(c byte) bool { return c&0xC0 == 0x80 }

// First returns the leading glyph of text and its byte length.
//
// A plain first byte is a glyph on its own. Otherwise the first byte is taken
// together with the continuation bytes that follow it, stopping before the
// next lead byte, the next plain byte or the end of input.
func First(text string) (Glyph, int) {
	if text == "" {
		return "", 0
	}
	if isPlain(text[0]) {
		return Glyph(text[:1]), 1
	}
	n := 1
	for n < len(text) {
		c := text[n]
		if isLead(c) || isPlain(c) {
			break
		}
		n++
	}
	return Glyph(text[:n]), n
}

// Split segments text into glyphs in order.
func Split(text string) []Glyph {
	out := make([]Glyph, 0, len(text))
	for len(text) > 0 {
		g, n := First(text)
		out = append(out, g)
		text = text[n:]
	}
	return out
}

// Count returns the number of glyphs in text.
func Count(text string) int {
	n := 0
	for len(text) > 0 {
		_, size := First(text)
		text = text[size:]
		n++
	}
	return n
}

// Join concatenates glyphs back into a string.
func Join(glyphs []Glyph) string {
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteString(string(g))
	}
	return sb.String()
}

// ToLower folds A–Z to a–z and leaves every other byte untouched.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFold compares two glyphs byte by byte, folding ASCII letters only.
func EqualFold(a, b Glyph) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToLower(a[i]) != ToLower(b[i]) {
			return false
		}
	}
	return true
}

var lowerTable = map[Glyph]Glyph{
	"a": "á", "e": "é", "i": "í", "o": "ó", "u": "ú",
	"Á": "á", "É": "é", "Í": "í", "Ó": "ó", "Ú": "ú",
	"Ñ": "ñ",
}

var upperTable = map[Glyph]Glyph{
	"a": "Á", "e": "É", "i": "Í", "o": "Ó", "u": "Ú",
	"á": "Á", "é": "É", "í": "Í", "ó": "Ó", "ú": "Ú",
	"ñ": "Ñ",
}

var asciiTable = map[Glyph]Glyph{
	"á": "a", "é": "e", "í": "i", "ó": "o", "ú": "u",
	"Á": "a", "É": "e", "Í": "i", "Ó": "o", "Ú": "u",
}

// LowerEquivalent returns the accented lowercase glyph for a plain vowel (either
// case) or for an accented uppercase letter.
func LowerEquivalent(g Glyph) (Glyph, bool) {
	eq, ok := lowerTable[foldPlain(g)]
	return eq, ok
}

// UpperEquivalent returns the accented uppercase glyph for a plain vowel (either
// case) or for an accented lowercase letter.
func UpperEquivalent(g Glyph) (Glyph, bool) {
	eq, ok := upperTable[foldPlain(g)]
	return eq, ok
}

// ASCIIEquivalent maps an accented vowel of either case back to its plain
// lowercase vowel.
func ASCIIEquivalent(g Glyph) (Glyph, bool) {
	eq, ok := asciiTable[g]
	return eq, ok
}

// Equivalents lists the existing lower, upper and ASCII equivalents of g, in
// that order.
func Equivalents(g Glyph) []Glyph {
	var out []Glyph
	if eq, ok := LowerEquivalent(g); ok {
		out = append(out, eq)
	}
	if eq, ok := UpperEquivalent(g); ok {
		out = append(out, eq)
	}
	if eq, ok := ASCIIEquivalent(g); ok {
		out = append(out, eq)
	}
	return out
}

// foldPlain lowercases single-byte glyphs so both cases hit the same table key.
func foldPlain(g Glyph) Glyph {
	if g.IsPlain() {
		return Glyph([]byte{ToLower(g[0])})
	}
	return g
}
