package cli

import (
	"io"
	"strconv"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/paths"
	"github.com/arthur-debert/autopickup/pkg/settings"
	"github.com/arthur-debert/autopickup/pkg/store"
	"github.com/arthur-debert/autopickup/pkg/ui"
	"github.com/arthur-debert/autopickup/pkg/world"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// app is what a command works with: resolved paths, the catalog and the
// player's loaded rules.
type app struct {
	flags   *globalFlags
	paths   paths.Paths
	fs      afero.Fs
	catalog *world.Catalog
	player  *settings.PlayerSettings
	logger  zerolog.Logger
}

func newApp(g *globalFlags) (*app, error) {
	logger := logging.GetLogger("cli")

	p, err := paths.New(g.configDir)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	catalog := world.DefaultCatalog()
	if g.catalog != "" {
		catalog, err = world.LoadCatalog(fs, paths.ExpandHome(g.catalog))
		if err != nil {
			return nil, err
		}
	}

	saveBase := paths.ExpandHome(g.save)
	player := settings.NewPlayer(catalog, store.New(fs), settings.Files{
		Global:   p.GlobalRulesPath(),
		SaveBase: saveBase,
	})
	if err := player.Load(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("configDir", p.ConfigDir()).
		Str("save", saveBase).
		Int("global", player.Global().Len()).
		Int("character", player.Character().Len()).
		Msg("Rules loaded")

	return &app{
		flags:   g,
		paths:   p,
		fs:      fs,
		catalog: catalog,
		player:  player,
		logger:  logger,
	}, nil
}

func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.flags.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// listPath is the file the list for scope persists to
func (a *app) listPath(scope settings.Scope) string {
	if scope == settings.ScopeCharacter {
		return a.paths.CharacterRulesPath(a.flags.save)
	}
	return a.paths.GlobalRulesPath()
}

// scope parses a --scope value; character scope needs a character
func (a *app) scope(s string) (settings.Scope, error) {
	scope, ok := settings.ParseScope(s)
	if !ok {
		return scope, errors.Newf(errors.ErrInvalidInput, "unknown scope %q", s).WithDetail("scope", s)
	}
	if scope == settings.ScopeCharacter && !a.player.HasCharacter() {
		return scope, errors.New(errors.ErrRuleScope, MsgErrNoCharacter)
	}
	return scope, nil
}

// save persists the list for scope, telling the user when character rules
// had to be held back.
func (a *app) save(r ui.Renderer, scope settings.Scope) error {
	if err := a.player.Save(scope); err != nil {
		return err
	}
	if scope == settings.ScopeCharacter && !paths.CharacterSaved(a.fs, paths.ExpandHome(a.flags.save)) {
		return r.RenderMessage(MsgCharacterUnsav)
	}
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, errors.Newf(errors.ErrRuleIndex, MsgErrIndex, s).WithDetail("index", s)
	}
	return i, nil
}
