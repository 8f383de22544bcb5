package style

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/rulecast/pkg/errors"
)

// Format selects how command output is rendered.
type Format string

const (
	// FormatAuto picks term or text based on the output stream
	FormatAuto Format = "auto"

	// FormatTerm renders styled terminal output
	FormatTerm Format = "term"

	// FormatText renders plain text
	FormatText Format = "text"

	// FormatJSON emits machine-readable output; commands serialize their
	// results directly instead of going through a Renderer
	FormatJSON Format = "json"
)

// ParseFormat maps a --format flag value to a Format. The empty string
// means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerm, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s)
}

// Detect resolves FormatAuto against the stream the output goes to: text
// when NO_COLOR is set, when out is not a terminal, or when the terminal
// cannot do color; term otherwise. Formats other than auto pass through
// unchanged.
func (f Format) Detect(out *os.File) Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerm
}

// RendererFor returns the renderer matching a resolved format. JSON and
// anything unresolved fall back to the plain renderer.
func RendererFor(f Format) Renderer {
	if f == FormatTerm {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}
