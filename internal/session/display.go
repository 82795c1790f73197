package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Diego-Ivan/adivinador/internal/texture"
)

// Display is the text surface the session prints to.
type Display struct {
	out      io.Writer
	term     *termenv.Output
	renderer *lipgloss.Renderer
	clear    bool
	styles   styles
}

type styles struct {
	banner  lipgloss.Style
	hearts  lipgloss.Style
	masked  lipgloss.Style
	victory lipgloss.Style
	defeat  lipgloss.Style
	notice  lipgloss.Style
	err     lipgloss.Style
}

// NewDisplay writes to out. When clear is set the screen is wiped before
// each turn.
func NewDisplay(out io.Writer, clear bool) *Display {
	d := &Display{
		out:      out,
		term:     termenv.NewOutput(out),
		renderer: lipgloss.NewRenderer(out),
		clear:    clear,
	}
	d.restyle()
	return d
}

// SetColorProfile overrides the detected terminal color profile.
func (d *Display) SetColorProfile(p termenv.Profile) {
	d.renderer.SetColorProfile(p)
	d.restyle()
}

func (d *Display) restyle() {
	r := d.renderer
	d.styles = styles{
		banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		hearts:  r.NewStyle().Foreground(lipgloss.Color("196")),
		masked:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		victory: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		defeat:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("241")),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Clear wipes the screen when clearing is enabled.
func (d *Display) Clear() {
	if d.clear {
		d.term.ClearScreen()
	}
}

// Printf formats one line and terminates it with a newline.
func (d *Display) Printf(format string, args ...any) {
	fmt.Fprintf(d.out, format+"\n", args...)
}

// Prompt prints a question without a trailing newline.
func (d *Display) Prompt(text string) {
	fmt.Fprint(d.out, text)
}

// Invalid reports a rejected menu answer.
func (d *Display) Invalid() {
	fmt.Fprintln(d.out, d.styles.err.Render("¡Opción inválida!"))
}

// Splash prints the title screen.
func (d *Display) Splash(t *texture.Texture) {
	d.texture(t, d.styles.banner, "ADIVINADOR")
	fmt.Fprint(d.out, "\n\n\n")
	fmt.Fprintln(d.out, d.styles.notice.Render("PRESIONE ENTER PARA COMENZAR"))
	fmt.Fprint(d.out, "\n\n\n")
}

// Hearts prints one heart per remaining life, side by side.
func (d *Display) Hearts(t *texture.Texture, lives int) {
	fmt.Fprint(d.out, "Tus vidas:\n\n")
	if t == nil || t.Height() == 0 {
		fmt.Fprintln(d.out, d.styles.hearts.Render(strings.Repeat("<3 ", lives)))
	} else if lives > 0 {
		fmt.Fprintln(d.out, d.styles.hearts.Render(t.Tile(lives)))
	}
	fmt.Fprint(d.out, "\n\n")
}

// Masked prints the partially revealed word.
func (d *Display) Masked(masked string) {
	fmt.Fprintln(d.out, d.styles.masked.Render(masked))
}

// Victory prints the winning banner.
func (d *Display) Victory(t *texture.Texture, word string) {
	d.texture(t, d.styles.victory, "¡GANASTE!")
	d.Printf("La palabra era: %s", word)
}

// Defeat prints the losing banner and reveals the word.
func (d *Display) Defeat(t *texture.Texture, word string) {
	d.texture(t, d.styles.defeat, "PERDISTE")
	d.Printf("La palabra era: %s", word)
}

// texture prints t, or fallback when the texture could not be loaded.
func (d *Display) texture(t *texture.Texture, st lipgloss.Style, fallback string) {
	if t == nil || t.Height() == 0 {
		fmt.Fprintln(d.out, st.Render(fallback))
		return
	}
	fmt.Fprintln(d.out, st.Render(t.String()))
}
