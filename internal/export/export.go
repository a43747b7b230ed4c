package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	toml "github.com/pelletier/go-toml/v2"

	"notepad/internal/types"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatHTML = "html"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

func ResolveFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w %q: must be text, json, toml or html", ErrUnsupportedFormat, raw)
	}
}

// Write renders snap to out in the given format.
func Write(out io.Writer, format string, snap types.Snapshot) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(out, Text(snap))
		return err
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	case FormatTOML:
		data, err := toml.Marshal(snap)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	case FormatHTML:
		_, err := out.Write(HTML(snap))
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// Text renders a numbered plain-text list.
func Text(snap types.Snapshot) string {
	var b strings.Builder
	if len(snap.Notes) == 0 {
		b.WriteString("(no notes)\n")
	}
	for _, note := range snap.Notes {
		fmt.Fprintf(&b, "%d. %s", note.Index, note.Text)
		if note.Disabled {
			b.WriteString(" [disabled]")
		}
		if note.Editing {
			b.WriteString(" [editing]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders the list as a markdown document; disabled notes are
// struck through.
func Markdown(snap types.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Notes\n\n")
	if len(snap.Notes) == 0 {
		b.WriteString("_No notes._\n")
		return b.String()
	}
	for _, note := range snap.Notes {
		text := strings.ReplaceAll(note.Text, "\n", " ")
		if note.Disabled {
			fmt.Fprintf(&b, "1. ~~%s~~ (disabled)\n", text)
			continue
		}
		fmt.Fprintf(&b, "1. %s\n", text)
	}
	return b.String()
}

// HTML renders Markdown(snap) and sanitizes the result. Note text is user
// input, so it passes through the UGC policy. Smartypants stays off so quotes
// and dashes export as typed.
func HTML(snap types.Snapshot) []byte {
	extensions := parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(Markdown(snap)))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.HrefTargetBlank})
	rendered := markdown.Render(doc, renderer)
	return bluemonday.UGCPolicy().SanitizeBytes(rendered)
}
