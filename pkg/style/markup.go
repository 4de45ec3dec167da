package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with the package styles
type MarkupParser struct {
	tags map[string]*markupTag
}

type markupTag struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// NewMarkupParser creates a parser knowing the default tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: make(map[string]*markupTag)}
	for tag, s := range map[string]lipgloss.Style{
		"title":       TitleStyle,
		"error":       ErrorStyle,
		"warning":     WarningStyle,
		"info":        InfoStyle,
		"code":        CodeStyle,
		"path":        PathStyle,
		"muted":       MutedStyle,
		"bold":        lipgloss.NewStyle().Bold(true),
		"whitelisted": WhitelistStyle,
		"blacklisted": BlacklistStyle,
		"none":        NoVerdictStyle,
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, s lipgloss.Style) {
	p.tags[tag] = &markupTag{
		pattern: regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`),
		style:   s,
	}
}

// Render replaces every tagged span with its styled text. Nested tags are
// resolved inside out.
func (p *MarkupParser) Render(text string) string {
	for {
		before := text
		for _, t := range p.tags {
			text = t.pattern.ReplaceAllStringFunc(text, func(match string) string {
				return t.style.Render(t.pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// Strip removes known tags and keeps their text
func (p *MarkupParser) Strip(text string) string {
	for {
		before := text
		for _, t := range p.tags {
			text = t.pattern.ReplaceAllString(text, "$1")
		}
		if text == before {
			return text
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	for key, value := range vars {
		template = strings.ReplaceAll(template, "{{"+key+"}}", value)
	}
	return p.Render(template)
}

var defaultParser = NewMarkupParser()

// Render uses the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate uses the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}

// Strip uses the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
