package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENABLED", "PICKUP_OWNED", "WEIGHT_LIMIT", "VOLUME_LIMIT"} {
		t.Setenv(EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	opts, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, types.Options{Enabled: true}, opts)
	assert.Equal(t, opts, Defaults())
	assert.Contains(t, DefaultsContent(), "weight_limit")
}

func TestLoad_Layers(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		env       map[string]string
		overrides map[string]interface{}
		want      types.Options
	}{
		{
			name:    "toml file",
			file:    "config.toml",
			content: "enabled = false\nweight_limit = 20\n",
			want:    types.Options{Enabled: false, WeightLimit: 20},
		},
		{
			name:    "yaml file",
			file:    "config.yaml",
			content: "pickup_owned: true\nvolume_limit: 8\n",
			want:    types.Options{Enabled: true, PickupOwned: true, VolumeLimit: 8},
		},
		{
			name:    "env beats file",
			file:    "config.toml",
			content: "weight_limit = 20\n",
			env:     map[string]string{"AUTOPICKUP_WEIGHT_LIMIT": "5", "AUTOPICKUP_ENABLED": "false"},
			want:    types.Options{Enabled: false, WeightLimit: 5},
		},
		{
			name:      "overrides beat env",
			env:       map[string]string{"AUTOPICKUP_VOLUME_LIMIT": "5"},
			overrides: map[string]interface{}{"volume_limit": 9, "pickup_owned": true},
			want:      types.Options{Enabled: true, PickupOwned: true, VolumeLimit: 9},
		},
		{
			name: "limit words",
			env:  map[string]string{"AUTOPICKUP_WEIGHT_LIMIT": "unlimited", "AUTOPICKUP_VOLUME_LIMIT": "Off"},
			want: types.Options{Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file, tt.content)
			}

			opts, err := Load(path, tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts)
		})
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	opts, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.True(t, opts.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeFile(t, "config.toml", "enabled = [oops"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	t.Setenv("AUTOPICKUP_WEIGHT_LIMIT", "heavy")
	_, err = Load("", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestSaveAndToggle(t *testing.T) {
	clearEnv(t)
	fs := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := types.Options{Enabled: true, PickupOwned: true, WeightLimit: 12, VolumeLimit: 3}
	require.NoError(t, Save(fs, path, want))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	toggled, err := Toggle(fs, path)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	got, err = Load(path, nil)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, 12, got.WeightLimit)
}

func TestSave_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := Save(fs, "/cfg/config.toml", types.Options{})
	require.Error(t, err)
}
