package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		configDir string
		envSetup  map[string]string
		want      func(t *testing.T) string
	}{
		{
			name:      "explicit dir",
			configDir: "/tmp/apu",
			want:      func(t *testing.T) string { return "/tmp/apu" },
		},
		{
			name:     "env override",
			envSetup: map[string]string{EnvConfigDir: "/env/apu"},
			want:     func(t *testing.T) string { return "/env/apu" },
		},
		{
			name:     "xdg config home",
			envSetup: map[string]string{"XDG_CONFIG_HOME": "/xdg/config"},
			want:     func(t *testing.T) string { return filepath.Join("/xdg/config", AppDirName) },
		},
		{
			name:      "tilde",
			configDir: "~/games/apu",
			want: func(t *testing.T) string {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				return filepath.Join(home, "games", "apu")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			p, err := New(tt.configDir)
			require.NoError(t, err)
			assert.Equal(t, tt.want(t), p.ConfigDir())
		})
	}
}

func TestFiles(t *testing.T) {
	p, err := New("/cfg")
	require.NoError(t, err)

	assert.Equal(t, "/cfg/auto_pickup.json", p.GlobalRulesPath())
	assert.Equal(t, "/cfg/config.toml", p.OptionsPath())
	assert.Equal(t, "/saves/Ada.apu.json", p.CharacterRulesPath("/saves/Ada"))
	assert.Empty(t, p.CharacterRulesPath(""))
}

func TestCharacterSaved(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.False(t, CharacterSaved(fs, "/saves/Ada"))
	assert.False(t, CharacterSaved(fs, ""))

	require.NoError(t, afero.WriteFile(fs, "/saves/Ada.sav.zzip", []byte("x"), 0644))
	assert.True(t, CharacterSaved(fs, "/saves/Ada"))

	require.NoError(t, afero.WriteFile(fs, "/saves/Bob.sav", []byte("x"), 0644))
	assert.True(t, CharacterSaved(fs, "/saves/Bob"))
	assert.False(t, CharacterSaved(fs, "/saves/Bo"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "", ExpandHome(""))
}
