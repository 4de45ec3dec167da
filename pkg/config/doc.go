// Package config handles the auto-pickup options.
//
// Options are layered, later sources winning:
//
//  1. built-in defaults (embedded defaults.toml)
//  2. the user's options file, TOML or YAML by extension, when it exists
//  3. AUTOPICKUP_* environment variables, e.g. AUTOPICKUP_WEIGHT_LIMIT=20
//  4. explicit overrides from the caller, such as command-line flags
//
// Limits accept a number of steps or one of "off", "none" and "unlimited".
package config
