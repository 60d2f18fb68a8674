package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// defaultMarkdownStyle is the glamour standard style used for the help guide.
const defaultMarkdownStyle = "dark"

// minGuideWidth keeps the guide readable inside narrow overlays.
const minGuideWidth = 24

// guideKey identifies one cached glamour renderer.
type guideKey struct {
	style string
	width int
}

// markdownRenderer renders the help guide with a named glamour style. One
// renderer is kept per style and wrap width, so resizing back and forth
// does not rebuild it.
type markdownRenderer struct {
	style     string
	renderers map[guideKey]*glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	style = strings.TrimSpace(style)
	if style == "" {
		style = defaultMarkdownStyle
	}
	return &markdownRenderer{style: style, renderers: map[guideKey]*glamour.TermRenderer{}}
}

// render wraps markdown to width. Any glamour failure, including an unknown
// style, falls back to the raw text.
func (r *markdownRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}
	tr, err := r.rendererFor(max(width, minGuideWidth))
	if err != nil {
		return markdown
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.Trim(out, "\n")
}

func (r *markdownRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	if r.renderers == nil {
		r.renderers = map[guideKey]*glamour.TermRenderer{}
	}
	k := guideKey{style: r.style, width: width}
	if tr, ok := r.renderers[k]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[k] = tr
	return tr, nil
}
