package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/arthur-debert/autopickup/pkg/settings"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/arthur-debert/autopickup/pkg/ui"
	"github.com/arthur-debert/autopickup/pkg/world"
	"github.com/spf13/cobra"
)

// suggestions offered for a pattern that matches nothing
const suggestionLimit = 3

func newRulesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
	}

	cmd.AddCommand(
		newRulesListCmd(g),
		newRulesAddCmd(g),
		newRulesRemoveCmd(g),
		newRulesEditCmd(g),
		newRulesCopyCmd(g),
		newRulesActiveCmd(g, "enable", MsgRulesEnableShort, true),
		newRulesActiveCmd(g, "disable", MsgRulesDisableShort, false),
		newRulesExcludeCmd(g),
		newRulesMoveCmd(g),
		newRulesSwapCmd(g),
		newRulesTestCmd(g),
		newRulesClearCmd(g),
	)
	return cmd
}

// ruleEdit changes the rule at index i of l and returns the message to show
type ruleEdit func(l *rules.List, i int, r rules.Rule, scope settings.Scope) (string, error)

// editRule loads the rules, applies edit to the indexed rule of the --scope
// list and saves that list.
func editRule(cmd *cobra.Command, g *globalFlags, scopeName, index string, edit ruleEdit) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	scope, err := a.scope(scopeName)
	if err != nil {
		return err
	}
	i, err := parseIndex(index)
	if err != nil {
		return err
	}

	l := a.player.List(scope)
	rule, err := l.At(i)
	if err != nil {
		return err
	}
	msg, err := edit(l, i, rule, scope)
	if err != nil {
		return err
	}
	if err := a.save(r, scope); err != nil {
		return err
	}
	return r.RenderMessage(msg)
}

func addScopeFlag(cmd *cobra.Command, scope *string) {
	cmd.Flags().StringVarP(scope, "scope", "s", "global", MsgFlagScope)
	_ = cmd.RegisterFlagCompletionFunc("scope", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"global", "character"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func newRulesListCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgRulesListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var scopes []settings.Scope
			if scopeName == "all" {
				scopes = append(scopes, settings.ScopeGlobal)
				if a.player.HasCharacter() {
					scopes = append(scopes, settings.ScopeCharacter)
				}
			} else {
				scope, err := a.scope(scopeName)
				if err != nil {
					return err
				}
				scopes = append(scopes, scope)
			}

			views := make([]ui.RulesView, 0, len(scopes))
			for _, scope := range scopes {
				views = append(views, a.rulesView(scope))
			}
			return r.RenderRules(views)
		},
	}
	cmd.Flags().StringVarP(&scopeName, "scope", "s", "all", MsgFlagListAll)
	return cmd
}

func (a *app) rulesView(scope settings.Scope) ui.RulesView {
	view := ui.RulesView{Scope: scope.String(), Path: a.listPath(scope)}
	for i, r := range a.player.List(scope).Rules() {
		view.Rules = append(view.Rules, ui.RuleRow{Index: i, Pattern: r.Pattern, Active: r.Active, Exclude: r.Exclude})
	}
	return view
}

// itemFor returns an instance of the catalog type named by idOrName, or a
// bare item carrying just the name.
func itemFor(catalog *world.Catalog, idOrName string) types.Item {
	if t, ok := catalog.Find(idOrName); ok {
		return t.New()
	}
	return world.NewItem(idOrName, 0, 0, nil)
}

func newRulesAddCmd(g *globalFlags) *cobra.Command {
	var (
		scopeName string
		exclude   bool
		inactive  bool
		item      bool
	)

	cmd := &cobra.Command{
		Use:   "add PATTERN...",
		Short: MsgRulesAddShort,
		Example: `  autopickup rules add '*arrow'
  autopickup rules add --exclude 'steel*'
  autopickup rules add 'M:steel,iron'
  autopickup --save ~/saves/World/#Alice rules add --item flashlight`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			pattern := strings.Join(args, " ")

			if item {
				if _, err := a.scope("character"); err != nil {
					return err
				}
				it := itemFor(a.catalog, pattern)
				if err := a.player.AddRule(it, !exclude); err != nil {
					return err
				}
				if err := a.save(r, settings.ScopeCharacter); err != nil {
					return err
				}
				v := a.player.CheckItem(it.Name()).String()
				return r.RenderMessage(fmt.Sprintf(MsgItemRuleAdded, it.Name(), v, v, v))
			}

			scope, err := a.scope(scopeName)
			if err != nil {
				return err
			}
			rule, err := rules.NewRule(pattern, !inactive, exclude)
			if err != nil {
				return err
			}
			if err := a.player.List(scope).Append(rule); err != nil {
				return err
			}
			if err := a.save(r, scope); err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgRuleAdded, scope, rule.Pattern))
		},
	}
	addScopeFlag(cmd, &scopeName)
	cmd.Flags().BoolVarP(&exclude, "exclude", "x", false, MsgFlagExclude)
	cmd.Flags().BoolVar(&inactive, "inactive", false, MsgFlagInactive)
	cmd.Flags().BoolVar(&item, "item", false, MsgFlagItem)
	return cmd
}

func newRulesRemoveCmd(g *globalFlags) *cobra.Command {
	var (
		scopeName string
		item      bool
	)

	cmd := &cobra.Command{
		Use:     "remove INDEX",
		Aliases: []string{"rm"},
		Short:   MsgRulesRemoveShort,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !item {
				if len(args) != 1 {
					return errors.Newf(errors.ErrInvalidInput, "remove takes one INDEX, got %d arguments", len(args))
				}
				return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, rule rules.Rule, scope settings.Scope) (string, error) {
					return fmt.Sprintf(MsgRuleRemoved, scope, rule.Pattern), l.Remove(i)
				})
			}

			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if _, err := a.scope("character"); err != nil {
				return err
			}
			it := itemFor(a.catalog, strings.Join(args, " "))
			if !a.player.RemoveRule(it) {
				return r.RenderMessage(fmt.Sprintf(MsgItemRuleNone, it.Name()))
			}
			if err := a.save(r, settings.ScopeCharacter); err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgRuleRemoved, settings.ScopeCharacter, it.Name()))
		},
	}
	addScopeFlag(cmd, &scopeName)
	cmd.Flags().BoolVar(&item, "item", false, MsgFlagItem)
	return cmd
}

func newRulesEditCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "edit INDEX PATTERN...",
		Short: MsgRulesEditShort,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := strings.Join(args[1:], " ")
			return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, _ rules.Rule, scope settings.Scope) (string, error) {
				if err := l.SetPattern(i, pattern); err != nil {
					return "", err
				}
				updated, _ := l.At(i)
				return fmt.Sprintf(MsgRuleEdited, scope, i, updated.Pattern), nil
			})
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesCopyCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "copy INDEX",
		Short: MsgRulesCopyShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, _ rules.Rule, scope settings.Scope) (string, error) {
				return fmt.Sprintf(MsgRuleCopied, scope, i), l.Copy(i)
			})
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesActiveCmd(g *globalFlags, use, short string, active bool) *cobra.Command {
	var scopeName string

	state := "inactive"
	if active {
		state = "active"
	}

	cmd := &cobra.Command{
		Use:   use + " INDEX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, rule rules.Rule, scope settings.Scope) (string, error) {
				return fmt.Sprintf(MsgRuleActivated, titleCase(scope.String()), rule.Pattern, state), l.SetActive(i, active)
			})
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesExcludeCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "exclude INDEX",
		Short: MsgRulesExcludeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, rule rules.Rule, scope settings.Scope) (string, error) {
				mode := "exclude"
				if rule.Exclude {
					mode = "include"
				}
				return fmt.Sprintf(MsgRuleToggled, titleCase(scope.String()), rule.Pattern, mode), l.ToggleExclude(i)
			})
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesMoveCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:       "move INDEX up|down",
		Short:     MsgRulesMoveShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := strings.ToLower(args[1])
			if direction != "up" && direction != "down" {
				return errors.Newf(errors.ErrInvalidInput, MsgErrDirection, args[1])
			}
			return editRule(cmd, g, scopeName, args[0], func(l *rules.List, i int, rule rules.Rule, scope settings.Scope) (string, error) {
				move := l.MoveDown
				if direction == "up" {
					move = l.MoveUp
				}
				return fmt.Sprintf(MsgRuleMoved, scope, rule.Pattern, direction), move(i)
			})
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesSwapCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "swap INDEX",
		Short: MsgRulesSwapShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			from, err := a.scope(scopeName)
			if err != nil {
				return err
			}
			// both lists are written, so a character is needed either way
			if !a.player.HasCharacter() {
				return errors.New(errors.ErrRuleScope, MsgErrNoCharacter)
			}
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			rule, err := a.player.List(from).At(i)
			if err != nil {
				return err
			}
			if err := a.player.SwapScope(from, i); err != nil {
				return err
			}
			for _, scope := range []settings.Scope{from, from.Other()} {
				if err := a.save(r, scope); err != nil {
					return err
				}
			}
			return r.RenderMessage(fmt.Sprintf(MsgRuleSwapped, rule.Pattern, from.Other()))
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}

func newRulesTestCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "test PATTERN...",
		Short: MsgRulesTestShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			rule, err := rules.NewRule(strings.Join(args, " "), true, false)
			if err != nil {
				return err
			}

			view := ui.MatchView{Pattern: rule.Pattern, Matches: rule.Test(a.catalog)}
			if len(view.Matches) == 0 {
				view.Suggestions = rules.Suggest(rule.Pattern, a.catalog, suggestionLimit)
			}
			return r.RenderMatches(view)
		},
	}
}

func newRulesClearCmd(g *globalFlags) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: MsgRulesClearShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			scope, err := a.scope(scopeName)
			if err != nil {
				return err
			}

			l := a.player.List(scope)
			n := l.Len()
			if scope == settings.ScopeCharacter {
				a.player.ClearCharacterRules()
			} else {
				l.Clear()
			}
			if err := a.save(r, scope); err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgRulesCleared, n, scope))
		},
	}
	addScopeFlag(cmd, &scopeName)
	return cmd
}
