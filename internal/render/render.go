// Package render provides the callbacks that turn an item into the string
// painted for it. The list never interprets the result beyond measuring its
// height.
package render

import (
	"fmt"
	"strings"

	"github.com/atomicstack/uvlist/internal/item"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Func renders one resident item.
type Func func(it item.Item, index int, selected, expanded bool) string

// Content returns the text an item displays: its "content" field when set,
// otherwise its label, otherwise its id.
func Content(it item.Item) string {
	if text, ok := it.Text("content"); ok && text != "" {
		return text
	}
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// Plain word-wraps the item content to width. A width of zero disables
// wrapping.
func Plain(width int) Func {
	return func(it item.Item, _ int, _, _ bool) string {
		text := fmt.Sprintf("%s: %s", it.ID, Content(it))
		if width <= 0 {
			return text
		}
		return wordwrap.String(text, width)
	}
}

// Markdown renders the item content as markdown with glamour, using the
// named standard style ("dark", "light", "notty", ...).
func Markdown(width int, style string) (Func, error) {
	if style == "" {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	fallback := Plain(width)
	return func(it item.Item, index int, selected, expanded bool) string {
		md := fmt.Sprintf("**%s:** %s", it.ID, Content(it))
		out, err := r.Render(md)
		if err != nil {
			return fallback(it, index, selected, expanded)
		}
		return strings.Trim(out, "\n")
	}, nil
}

// New returns the renderer called name: "plain" or "markdown".
func New(name string, width int) (Func, error) {
	switch name {
	case "", "plain":
		return Plain(width), nil
	case "markdown":
		return Markdown(width, "dark")
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
