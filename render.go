package props

import (
	"strconv"
	"strings"
)

// DefaultMarker replaces sensitive values in rendered output.
const DefaultMarker = "[REDACTED]"

// RenderOption configures Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	marker string
	masks  map[string]Masker
}

// WithMarker replaces DefaultMarker. An empty marker keeps the default.
func WithMarker(marker string) RenderOption {
	return func(c *renderConfig) {
		if marker != "" {
			c.marker = marker
		}
	}
}

// WithMasks masks the values of non-sensitive entries by key.
func WithMasks(masks map[string]Masker) RenderOption {
	return func(c *renderConfig) {
		c.masks = masks
	}
}

// Render returns a display form of c for logs and diagnostics.
//
// Every entry is listed with its key, index, and group. Sensitive entries
// show the marker in place of their value, whatever the token looks like.
// The output is not meant to be parsed.
func Render(c Collection, opts ...RenderOption) string {
	cfg := renderConfig{marker: DefaultMarker}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString("props{")
	for _, e := range c {
		b.WriteString("\n  ")
		b.WriteString(renderEntry(e, cfg.marker, cfg.masks[e.Key]))
	}
	if len(c) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func renderEntry(e Entry, marker string, masker Masker) string {
	var value string
	switch {
	case e.Sensitive:
		value = marker
	case masker != nil:
		value = strconv.Quote(masker.Mask(e.Value))
	default:
		value = strconv.Quote(e.Value)
	}

	if e.Group != "" {
		return e.label() + " (" + e.Group + ") = " + value
	}
	return e.label() + " = " + value
}
