package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Manage auto-pickup rules"
	MsgRulesShort        = "Edit the auto-pickup rule lists"
	MsgRulesListShort    = "List rules"
	MsgRulesAddShort     = "Add a rule"
	MsgRulesRemoveShort  = "Remove a rule"
	MsgRulesEditShort    = "Change a rule's pattern"
	MsgRulesCopyShort    = "Duplicate a rule below itself"
	MsgRulesEnableShort  = "Activate a rule"
	MsgRulesDisableShort = "Deactivate a rule"
	MsgRulesExcludeShort = "Toggle a rule between include and exclude"
	MsgRulesMoveShort    = "Move a rule up or down its list"
	MsgRulesSwapShort    = "Move a rule to the other list"
	MsgRulesTestShort    = "Show which catalog items a pattern matches"
	MsgRulesClearShort   = "Remove every rule of a list"
	MsgCheckShort        = "Show the verdict for item names"
	MsgSimulateShort     = "Run auto-pickup over a scenario"
	MsgSyntaxShort       = "Explain the rule pattern syntax"
	MsgConfigShort       = "Show or change auto-pickup options"
	MsgConfigShowShort   = "Show the options in effect"
	MsgConfigToggleShort = "Switch auto-pickup on or off"
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"

	// Result messages, in style markup
	MsgRuleAdded      = "Added %s rule [code]%s[/code]"
	MsgRuleRemoved    = "Removed %s rule [code]%s[/code]"
	MsgRuleEdited     = "Changed %s rule %d to [code]%s[/code]"
	MsgRuleCopied     = "Copied %s rule %d"
	MsgRuleActivated  = "%s rule [code]%s[/code] is now [info]%s[/info]"
	MsgRuleToggled    = "%s rule [code]%s[/code] now [info]%s[/info]s"
	MsgRuleMoved      = "Moved %s rule [code]%s[/code] %s"
	MsgRuleSwapped    = "Moved rule [code]%s[/code] to %s rules"
	MsgRulesCleared   = "Cleared %d %s rule(s)"
	MsgItemRuleAdded  = "Added character rule for [code]%s[/code], now [%s]%s[/%s]"
	MsgItemRuleNone   = "No character rule names [code]%s[/code]"
	MsgCharacterUnsav = "[warning]Character has no save yet[/warning], character rules were not written"
	MsgToggled        = "Auto-pickup is now [bold]%s[/bold]"

	// Error messages
	MsgErrNoCharacter = "character rules need a character, pass --save"
	MsgErrIndex       = "invalid rule index %q"
	MsgErrDirection   = "direction must be up or down, not %q"
	MsgErrSetFlag     = "invalid --set value %q, expected key=value"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Configuration directory (default $AUTOPICKUP_CONFIG_DIR or XDG config home)"
	MsgFlagCatalog  = "YAML item catalog to use instead of the bundled one"
	MsgFlagSave     = "Character save path without extension"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagScope    = "Rule list: global or character"
	MsgFlagListAll  = "Rule list: global, character or all"
	MsgFlagExclude  = "Create an exclude rule"
	MsgFlagInactive = "Create the rule deactivated"
	MsgFlagItem     = "Treat the argument as an item and edit character rules by its name"
	MsgFlagSet      = "Override an option for this run, as key=value"
	MsgFlagMaxDepth = "Deepest container nesting searched"
	MsgFlagActor    = "Owner name treated as the one picking up"
	MsgFlagDefaults = "Print the bundled default options file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/simulate-long.txt
	msgSimulateLongRaw string
	MsgSimulateLong    = strings.TrimSpace(msgSimulateLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
