package config

import (
	"path/filepath"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Save writes opts to path as TOML, creating the directory when needed
func Save(fs afero.Fs, path string, opts types.Options) error {
	data, err := toml.Marshal(opts)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode options")
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write options to %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Toggle flips the enabled switch in the options file at path and returns
// the resulting options.
func Toggle(fs afero.Fs, path string) (types.Options, error) {
	opts, err := Load(path, nil)
	if err != nil {
		return opts, err
	}
	opts.Enabled = !opts.Enabled
	if err := Save(fs, path, opts); err != nil {
		return opts, err
	}
	return opts, nil
}
