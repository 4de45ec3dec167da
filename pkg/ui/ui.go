// Package ui renders command results as styled terminal tables, plain text
// or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/autopickup/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	RenderRules(views []RulesView) error
	RenderVerdicts(views []VerdictView) error
	RenderMatches(view MatchView) error
	RenderTiles(views []TileView) error
	RenderOptions(view OptionsView) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return newTextRenderer(output), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
