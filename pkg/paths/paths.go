package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for autopickup
	EnvConfigDir = "AUTOPICKUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File and directory names
const (
	AppDirName = "autopickup"

	// GlobalRulesFile holds the rules shared by every character
	GlobalRulesFile = "auto_pickup.json"

	// OptionsFile holds the auto-pickup options
	OptionsFile = "config.toml"

	// CharacterRulesSuffix is appended to a save base for character rules
	CharacterRulesSuffix = ".apu.json"

	SaveSuffix           = ".sav"
	CompressedSaveSuffix = ".sav.zzip"
)

// Paths resolves where autopickup reads and writes its files
type Paths interface {
	ConfigDir() string
	GlobalRulesPath() string
	OptionsPath() string
	CharacterRulesPath(saveBase string) string
}

type paths struct {
	configDir string
}

// New creates a Paths instance. An empty configDir resolves from
// AUTOPICKUP_CONFIG_DIR, then the XDG config home.
func New(configDir string) (Paths, error) {
	if configDir == "" {
		configDir = os.Getenv(EnvConfigDir)
	}
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	abs, err := filepath.Abs(expandHome(configDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for config dir").
			WithDetail("dir", configDir)
	}
	return &paths{configDir: abs}, nil
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) GlobalRulesPath() string {
	return filepath.Join(p.configDir, GlobalRulesFile)
}

func (p *paths) OptionsPath() string {
	return filepath.Join(p.configDir, OptionsFile)
}

// CharacterRulesPath returns the rule file for the character saved at
// saveBase, or "" when there is no character.
func (p *paths) CharacterRulesPath(saveBase string) string {
	return CharacterRulesPath(saveBase)
}

// CharacterRulesPath maps a save base to its character rules file
func CharacterRulesPath(saveBase string) string {
	if saveBase == "" {
		return ""
	}
	return expandHome(saveBase) + CharacterRulesSuffix
}

// CharacterSaved reports whether the character at saveBase has been saved
// at least once, compressed or not.
func CharacterSaved(fs afero.Fs, saveBase string) bool {
	if saveBase == "" {
		return false
	}
	base := expandHome(saveBase)
	for _, suffix := range []string{SaveSuffix, CompressedSaveSuffix} {
		if ok, _ := afero.Exists(fs, base+suffix); ok {
			return true
		}
	}
	return false
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
