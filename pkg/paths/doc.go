// Package paths provides centralized path handling for autopickup.
//
// Rule files and options live under the XDG config directory:
//
//   - $XDG_CONFIG_HOME/autopickup/auto_pickup.json  global rules
//   - $XDG_CONFIG_HOME/autopickup/config.toml       options
//
// Character rules sit next to the character's save, named after the save
// base: "<base>.apu.json". A character counts as saved once "<base>.sav" or
// its compressed form "<base>.sav.zzip" exists.
//
// # Environment Variables
//
//   - AUTOPICKUP_CONFIG_DIR: overrides $XDG_CONFIG_HOME/autopickup
package paths
