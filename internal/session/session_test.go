package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/Diego-Ivan/adivinador/internal/store"
	"github.com/Diego-Ivan/adivinador/internal/texture"
	"github.com/Diego-Ivan/adivinador/internal/words"
)

func newTestSession(t *testing.T, input string, lives int, cats ...*words.Category) (*Session, *bytes.Buffer) {
	t.Helper()
	return newSessionReading(t, strings.NewReader(input), lives, cats...)
}

func newSessionReading(t *testing.T, in io.Reader, lives int, cats ...*words.Category) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d := NewDisplay(&out, false)
	d.SetColorProfile(termenv.Ascii)

	heart, err := texture.Parse(strings.NewReader("<3\n"))
	if err != nil {
		t.Fatalf("heart texture: %v", err)
	}
	s := New(Options{
		Source:   store.NewMemory(cats...),
		Textures: Textures{Heart: heart},
		Display:  d,
		In:       in,
		Lives:    lives,
		Seed:     7,
	})
	return s, &out
}

func singleWord(t *testing.T, name, word string) *words.Category {
	t.Helper()
	c, err := words.New(name)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Register(word); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return c
}

func lines(parts ...string) string { return strings.Join(parts, "\n") + "\n" }

func TestRun_WinByWordThenLoseThenQuit(t *testing.T) {
	input := lines(
		"",                 // splash
		"1", "2", "PERA",   // round 1: word guess wins
		"S",                // play again
		"9", "1",           // invalid category, then Frutas
		"3", "1", "x",      // invalid attempt kind, then glyph x
		"1", "   ", "zeta", // blank glyph is asked again; z from "zeta"
		"quizá", "n",       // invalid answer, then quit
	)
	s, out := newTestSession(t, input, 2, singleWord(t, "Frutas", "pera"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State() != Terminated {
		t.Fatalf("state=%v, want terminated", s.State())
	}
	if played, won := s.Stats(); played != 2 || won != 1 {
		t.Fatalf("stats=(%d,%d), want (2,1)", played, won)
	}

	text := out.String()
	for _, want := range []string{
		"PRESIONE ENTER PARA COMENZAR",
		"1. Frutas",
		"1. Adivinar Carácter",
		"2. Adivinar Palabra",
		"____",
		"<3<3",
		"¡GANASTE!",
		"PERDISTE",
		"La palabra era: pera",
		"¿Desea iniciar una nueva partida? (s/n): ",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(text, "¡Opción inválida!"); n != 3 {
		t.Errorf("invalid notices=%d, want 3", n)
	}
}

func TestRun_WinByRevealingEveryGlyph(t *testing.T) {
	input := lines("", "2",
		"1", "p",
		"1", "e",
		"1", "r",
		"1", "a",
		"n",
	)
	s, out := newTestSession(t, input, 4, singleWord(t, "Animales", "oso panda"), singleWord(t, "Frutas", "pera"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if played, won := s.Stats(); played != 1 || won != 1 {
		t.Fatalf("stats=(%d,%d), want (1,1)", played, won)
	}
	for _, want := range []string{"2. Frutas", "p___", "pe__", "per_", "¡GANASTE!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_PhraseStartsWithSpacesRevealed(t *testing.T) {
	input := lines("", "1", "1", "a", "1", "o")
	s, out := newTestSession(t, input, 4, singleWord(t, "Animales", "oso panda"))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	for _, want := range []string{"___ _____", "___ _a__a", "o_o _a__a"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if played, _ := s.Stats(); played != 0 {
		t.Fatalf("round should still be in progress when input ends")
	}
}

func TestRun_EndOfInputTerminates(t *testing.T) {
	s, _ := newTestSession(t, "", 4, singleWord(t, "Frutas", "pera"))
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State() != Terminated {
		t.Fatalf("state=%v, want terminated", s.State())
	}
}

func TestRun_NoCategories(t *testing.T) {
	empty, _ := words.New("Vacía")
	blank, err := words.FromReader("Espacios", strings.NewReader("   \n \n"))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	s, _ := newTestSession(t, lines("", "1", "n"), 4, empty, blank)
	if err := s.Run(context.Background()); !errors.Is(err, ErrNoCategories) {
		t.Fatalf("err=%v, want ErrNoCategories", err)
	}
	if played, _ := s.Stats(); played != 0 {
		t.Fatalf("played=%d, want 0", played)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := newTestSession(t, lines("", "1"), 4, singleWord(t, "Frutas", "pera"))
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State() != Terminated {
		t.Fatalf("state=%v, want terminated", s.State())
	}
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	s, _ := newSessionReading(t, pr, 4, singleWord(t, "Frutas", "pera"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	// Get past the splash screen; the next prompt blocks on the open pipe.
	if _, err := fmt.Fprintln(pw); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run still blocked on input after cancellation")
	}
	if s.State() != Terminated {
		t.Fatalf("state=%v, want terminated", s.State())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Menu: "menu", Playing: "playing", RoundEnd: "round_end", Terminated: "terminated",
	} {
		if s.String() != want {
			t.Errorf("%d.String()=%q, want %q", s, s.String(), want)
		}
	}
}
