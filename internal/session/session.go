// internal/session/session.go
//
// Game controller for one terminal session.
// Responsibilities:
//   - Load the categories offered in the menu from a store.Source.
//   - Run the prompt loop: menu → category → guesses → result → play again.
//   - Pick words uniformly at random and reset lives for every round.
//
// States:
//   Menu → Playing → RoundEnd → (Playing | Terminated)
//
// Notes:
//   - Input is read line by line; invalid answers are asked again.
//   - End of input and context cancellation (Ctrl-C) terminate the session
//     without an error. Input is read on its own goroutine so a cancelled
//     context interrupts a pending prompt.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Diego-Ivan/adivinador/internal/game"
	"github.com/Diego-Ivan/adivinador/internal/glyph"
	"github.com/Diego-Ivan/adivinador/internal/store"
	"github.com/Diego-Ivan/adivinador/internal/texture"
	"github.com/Diego-Ivan/adivinador/internal/words"
)

// ErrNoCategories is returned by Run when the source offers nothing to play.
var ErrNoCategories = errors.New("no playable categories")

// State is the controller state.
type State int

const (
	Menu State = iota
	Playing
	RoundEnd
	Terminated
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case RoundEnd:
		return "round_end"
	default:
		return "terminated"
	}
}

// Textures groups the banners printed by the session. Any of them may be nil.
type Textures struct {
	Splash  *texture.Texture
	Heart   *texture.Texture
	Victory *texture.Texture
	Defeat  *texture.Texture
}

// Options configures a Session.
type Options struct {
	Source   store.Source
	Textures Textures
	Display  *Display
	In       io.Reader
	Lives    int   // lives per round; game.DefaultLives when zero
	Seed     int64 // word selection seed; wall clock when zero
}

// Session owns every piece of state of a running game.
type Session struct {
	source   store.Source
	textures Textures
	display  *Display
	in       io.Reader
	lines    <-chan inputLine
	lives    int
	rng      *rand.Rand

	state      State
	categories []*words.Category
	category   *words.Category
	round      *game.Round
	played     int
	won        int
}

// New constructs a session from opts.
func New(opts Options) *Session {
	lives := opts.Lives
	if lives <= 0 {
		lives = game.DefaultLives
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.Display == nil {
		opts.Display = NewDisplay(os.Stdout, false)
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	return &Session{
		source:   opts.Source,
		textures: opts.Textures,
		display:  opts.Display,
		in:       opts.In,
		lives:    lives,
		rng:      rand.New(rand.NewSource(seed)),
		state:    Menu,
	}
}

// State reports the current controller state.
func (s *Session) State() State { return s.state }

// Stats returns how many rounds were played and how many of them were won.
func (s *Session) Stats() (played, won int) { return s.played, s.won }

// Run plays rounds until the player declines to continue, input ends or ctx
// is cancelled.
func (s *Session) Run(ctx context.Context) error {
	defer func() { s.state = Terminated }()

	err := s.run(ctx)
	switch {
	case errors.Is(err, io.EOF):
		log.Debug().Str("state", s.state.String()).Msg("input closed")
		return nil
	case errors.Is(err, context.Canceled):
		log.Debug().Str("state", s.state.String()).Msg("interrupted")
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	cats, err := s.source.Categories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if len(cats) == 0 {
		return ErrNoCategories
	}
	s.categories = cats

	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.in, done)

	return s.loop(ctx)
}

func (s *Session) loop(ctx context.Context) error {
	s.display.Clear()
	s.display.Splash(s.textures.Splash)
	if _, err := s.readLine(ctx); err != nil {
		return err
	}
	s.display.Clear()

	for {
		s.state = Playing
		if err := s.chooseCategory(ctx); err != nil {
			return err
		}
		if err := s.newRound(); err != nil {
			return err
		}
		if err := s.play(ctx); err != nil {
			return err
		}

		s.state = RoundEnd
		s.finishRound()

		again, err := s.askContinue(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) chooseCategory(ctx context.Context) error {
	for {
		s.display.Printf("Seleccione la categoría con la que quiera jugar:")
		for i, c := range s.categories {
			s.display.Printf("%d. %s", i+1, c.Name())
		}
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(s.categories) {
			s.category = s.categories[n-1]
			return nil
		}
		s.display.Invalid()
	}
}

func (s *Session) newRound() error {
	word, err := s.category.Random(s.rng)
	if err != nil {
		return err
	}
	round, err := game.NewRound(word, s.lives)
	if err != nil {
		return err
	}
	s.round = round
	log.Info().
		Str("round", round.ID).
		Str("category", s.category.Name()).
		Int("glyphs", round.Len()).
		Int("lives", round.Lives()).
		Msg("round started")
	return nil
}

func (s *Session) play(ctx context.Context) error {
	for s.round.Outcome() == game.Ongoing {
		s.display.Clear()
		s.display.Hearts(s.textures.Heart, s.round.Lives())
		s.display.Masked(s.round.Masked())

		kind, err := s.askAttempt(ctx)
		if err != nil {
			return err
		}
		input, err := s.askGuess(ctx, kind)
		if err != nil {
			return err
		}
		ok := s.round.Guess(kind, input)
		log.Debug().
			Str("round", s.round.ID).
			Stringer("attempt", kind).
			Bool("valid", ok).
			Int("lives", s.round.Lives()).
			Msg("guess applied")
	}
	return nil
}

func (s *Session) askAttempt(ctx context.Context) (game.Attempt, error) {
	for {
		s.display.Printf("Ingrese el tipo de intento que quiere realizar:")
		s.display.Printf("%d. %s", game.AttemptGlyph, "Adivinar Carácter")
		s.display.Printf("%d. %s", game.AttemptWord, "Adivinar Palabra")
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if kind := game.Attempt(n); err == nil && kind.Valid() {
			return kind, nil
		}
		s.display.Invalid()
	}
}

// askGuess reads the first token for a glyph attempt and the whole line for a
// word attempt, so phrases can be guessed at once.
func (s *Session) askGuess(ctx context.Context, kind game.Attempt) (string, error) {
	prompt := "Ingrese el caracter: "
	if kind == game.AttemptWord {
		prompt = "Ingrese la palabra: "
	}
	for {
		s.display.Prompt(prompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if kind == game.AttemptWord {
			if w := strings.TrimSpace(line); w != "" {
				return w, nil
			}
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

func (s *Session) finishRound() {
	outcome := s.round.Outcome()
	total, misses := s.round.Attempts()
	s.played++

	s.display.Clear()
	if outcome == game.Won {
		s.won++
		s.display.Victory(s.textures.Victory, s.round.Word())
	} else {
		s.display.Defeat(s.textures.Defeat, s.round.Word())
	}
	log.Info().
		Str("round", s.round.ID).
		Stringer("outcome", outcome).
		Int("attempts", total).
		Int("misses", misses).
		Msg("round finished")
}

func (s *Session) askContinue(ctx context.Context) (bool, error) {
	for {
		s.display.Prompt("¿Desea iniciar una nueva partida? (s/n): ")
		line, err := s.readLine(ctx)
		if err != nil {
			return false, err
		}
		if answer := strings.TrimSpace(line); len(answer) == 1 {
			switch glyph.ToLower(answer[0]) {
			case 's':
				return true, nil
			case 'n':
				return false, nil
			}
		}
		s.display.Invalid()
	}
}

// inputLine is one result of the input goroutine.
type inputLine struct {
	text string
	err  error
}

// readLines scans r on a new goroutine and delivers each line, then the
// terminating error (io.EOF on a clean end), on the returned channel. The
// goroutine stops sending once done is closed; if it is blocked reading r at
// that point it exits when r returns.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	out := make(chan inputLine)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case out <- inputLine{text: sc.Text()}:
			case <-done:
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case out <- inputLine{err: err}:
		case <-done:
		}
	}()
	return out
}

// readLine blocks for the next input line or until ctx is cancelled. It
// returns io.EOF once input ends.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}
