// internal/game/engine.go
//
// Core engine for a single guessing round.
// Responsibilities:
//   - Create rounds from a selected word with a starting number of lives.
//   - Reveal glyphs, bridging plain vowels and their accented forms.
//   - Check whole-word guesses.
//   - Track state transitions: ongoing → won/lost.
//
// Notes:
//   - Spaces in the word (phrases) are revealed from the start.
//   - Reveal operations never fail; a guess that reveals nothing returns false.
//   - Glyph comparisons fold ASCII case only; accented letters are bridged
//     through the glyph equivalence tables.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Diego-Ivan/adivinador/internal/errs"
	"github.com/Diego-Ivan/adivinador/internal/glyph"
)

const (
	// DefaultLives is the number of lives a round starts with unless configured.
	DefaultLives = 4

	// placeholder is printed once per hidden glyph, whatever its byte length.
	placeholder = "_"

	// maxEquivalentDepth caps accent bridging: equivalents of equivalents are
	// never expanded.
	maxEquivalentDepth = 1
)

// NewRound starts a round for word with the given number of lives.
func NewRound(word string, lives int) (*Round, error) {
	if strings.TrimSpace(word) == "" {
		return nil, fmt.Errorf("round word %q: %w", word, errs.ErrInvalidArgument)
	}
	if lives < 1 {
		return nil, fmt.Errorf("round lives %d: %w", lives, errs.ErrInvalidArgument)
	}
	target := glyph.Split(word)
	revealed := make([]bool, len(target))
	for i, g := range target {
		revealed[i] = g.IsSpace()
	}
	return &Round{
		ID:       uuid.NewString(),
		word:     word,
		target:   target,
		revealed: revealed,
		lives:    lives,
	}, nil
}

// Guess applies one attempt of the given kind and reports whether it was
// valid. A failed attempt costs a life. Once the round is over Guess is a
// no-op returning false.
func (r *Round) Guess(kind Attempt, input string) bool {
	if r.Outcome() != Ongoing || !kind.Valid() {
		return false
	}
	var ok bool
	switch kind {
	case AttemptGlyph:
		g, _ := glyph.First(strings.TrimSpace(input))
		ok = r.RevealGlyph(g)
	case AttemptWord:
		ok = r.RevealWord(input)
	}
	r.attempts++
	if !ok {
		r.misses++
		r.LoseLife()
	}
	return ok
}

// RevealGlyph reveals every hidden position holding g and reports whether at
// least one new position became visible.
//
// Guessing a glyph that is already visible is always a failed attempt. The
// lowercase-accented, uppercase-accented and ASCII equivalents of g are tried
// as well, so "e" also uncovers "é" and "É" and vice versa.
func (r *Round) RevealGlyph(g glyph.Glyph) bool {
	return r.reveal(g, 0)
}

func (r *Round) reveal(g glyph.Glyph, depth int) bool {
	if g == "" {
		return false
	}
	valid := r.revealExact(g)
	if depth < maxEquivalentDepth {
		for _, eq := range glyph.Equivalents(g) {
			if r.reveal(eq, depth+1) {
				valid = true
			}
		}
	}
	return valid
}

// revealExact handles a single glyph without equivalents.
func (r *Round) revealExact(g glyph.Glyph) bool {
	for i, t := range r.target {
		if r.revealed[i] && glyph.EqualFold(t, g) {
			return false
		}
	}
	valid := false
	for i, t := range r.target {
		if !r.revealed[i] && glyph.EqualFold(t, g) {
			r.revealed[i] = true
			valid = true
		}
	}
	return valid
}

// RevealWord reports whether candidate is the round's word, ignoring case and
// surrounding whitespace. It never reveals positions; a match ends the round
// as won.
func (r *Round) RevealWord(candidate string) bool {
	got := glyph.Split(strings.TrimSpace(candidate))
	if len(got) != len(r.target) {
		return false
	}
	for i := range got {
		if !sameLetter(got[i], r.target[i]) {
			return false
		}
	}
	r.solved = true
	return true
}

// sameLetter folds ASCII case and the case of accented letters, but keeps
// accented and plain letters apart.
func sameLetter(a, b glyph.Glyph) bool {
	if glyph.EqualFold(a, b) {
		return true
	}
	if a.IsPlain() || b.IsPlain() {
		return false
	}
	return accentLower(a) == accentLower(b)
}

func accentLower(g glyph.Glyph) glyph.Glyph {
	if l, ok := glyph.LowerEquivalent(g); ok {
		return l
	}
	return g
}

// Complete reports whether every position is visible.
func (r *Round) Complete() bool {
	for _, v := range r.revealed {
		if !v {
			return false
		}
	}
	return true
}

// Outcome derives the round state.
func (r *Round) Outcome() Outcome {
	switch {
	case r.solved || r.Complete():
		return Won
	case r.lives == 0:
		return Lost
	default:
		return Ongoing
	}
}

// LoseLife takes one life, never going below zero.
func (r *Round) LoseLife() {
	if r.lives > 0 {
		r.lives--
	}
}

// Masked renders the word with one placeholder per hidden glyph.
func (r *Round) Masked() string {
	var sb strings.Builder
	sb.Grow(len(r.word))
	for i, g := range r.target {
		if r.revealed[i] {
			sb.WriteString(string(g))
		} else {
			sb.WriteString(placeholder)
		}
	}
	return sb.String()
}

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// Word returns the secret word.
func (r *Round) Word() string { return r.word }

// Len returns the number of glyphs in the word.
func (r *Round) Len() int { return len(r.target) }

// Attempts returns how many guesses were applied through Guess, and how many
// of them failed.
func (r *Round) Attempts() (total, misses int) { return r.attempts, r.misses }
