// internal/game/types.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - Outcome: coarse state of a round (ongoing/won/lost).
//   - Attempt: kind of guess the player makes (single glyph or whole word).
//   - Round: state for a single in-progress or finished round.

package game

import "github.com/Diego-Ivan/adivinador/internal/glyph"

// Outcome is the derived state of a round.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Attempt is the kind of guess made by the player.
// Values start at 1 so they double as menu options.
type Attempt int

const (
	AttemptGlyph Attempt = iota + 1
	AttemptWord
)

func (a Attempt) String() string {
	switch a {
	case AttemptGlyph:
		return "glyph"
	case AttemptWord:
		return "word"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the known attempt kinds.
func (a Attempt) Valid() bool { return a == AttemptGlyph || a == AttemptWord }

// Round holds the state of one play-through, from word selection to win/loss.
type Round struct {
	ID string // Random identifier, used to correlate log lines.

	word     string        // The secret word as it was selected.
	target   []glyph.Glyph // word split into glyphs.
	revealed []bool        // Parallel to target; true = visible to the player.
	lives    int           // Remaining lives, never below zero.
	solved   bool          // Set by a correct whole-word guess.

	attempts int
	misses   int
}
