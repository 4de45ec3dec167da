package style

import (
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// VerdictStyle returns the style a verdict is shown in
func VerdictStyle(v types.Verdict) lipgloss.Style {
	switch v {
	case types.VerdictWhitelisted:
		return WhitelistStyle
	case types.VerdictBlacklisted:
		return BlacklistStyle
	default:
		return NoVerdictStyle
	}
}

// RenderVerdict renders the verdict's name in its style
func RenderVerdict(v types.Verdict) string {
	return VerdictStyle(v).Render(v.String())
}

// RuleIndicator is the one-character marker for a rule's state
func RuleIndicator(active, exclude bool) string {
	switch {
	case !active:
		return InactiveIndicator
	case exclude:
		return ExcludeIndicator
	default:
		return IncludeIndicator
	}
}

// RenderPattern renders a rule pattern the way its rule acts
func RenderPattern(pattern string, active, exclude bool) string {
	switch {
	case !active:
		return InactiveStyle.Render(pattern)
	case exclude:
		return BlacklistStyle.Render(pattern)
	default:
		return WhitelistStyle.Render(pattern)
	}
}
