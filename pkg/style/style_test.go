package style

import (
	"testing"

	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestVerdictStyle(t *testing.T) {
	assert.Equal(t, WhitelistStyle.GetForeground(), VerdictStyle(types.VerdictWhitelisted).GetForeground())
	assert.Equal(t, BlacklistStyle.GetForeground(), VerdictStyle(types.VerdictBlacklisted).GetForeground())
	assert.Equal(t, NoVerdictStyle.GetForeground(), VerdictStyle(types.VerdictNone).GetForeground())

	assert.Contains(t, RenderVerdict(types.VerdictBlacklisted), "blacklisted")
}

func TestRuleIndicator(t *testing.T) {
	assert.Equal(t, InactiveIndicator, RuleIndicator(false, true))
	assert.Equal(t, ExcludeIndicator, RuleIndicator(true, true))
	assert.Equal(t, IncludeIndicator, RuleIndicator(true, false))

	assert.Contains(t, RenderPattern("*arrow", false, false), "*arrow")
}

func TestMarkup(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.TrueColor) })

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no tags", "no tags"},
		{"single", "[whitelisted]wooden arrow[/whitelisted]", "wooden arrow"},
		{"nested", "[bold][path]/tmp/[muted]x[/muted][/path][/bold]", "/tmp/x"},
		{"unknown tag kept", "[shiny]x[/shiny]", "[shiny]x[/shiny]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}

	assert.Equal(t, "Added rule *arrow", Strip("Added rule [code]*arrow[/code]"))
	assert.Equal(t, "rule *arrow", RenderTemplate("rule {{pattern}}", map[string]string{"pattern": "*arrow"}))
}
