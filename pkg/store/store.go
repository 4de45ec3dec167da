package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store reads and writes rule files
type Store struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a store over fs
func New(fs afero.Fs) *Store {
	return &Store{
		fs:     fs,
		logger: logging.GetLogger("store"),
	}
}

// NewOS creates a store over the real filesystem
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Load decodes the rules at path. A missing file yields no rules and no
// error.
func (s *Store) Load(path string) ([]rules.Rule, error) {
	logger := s.logger.With().Str("path", path).Logger()

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No rules file, starting empty")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read rules from %s", path).
			WithDetail("path", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	format := FormatFor(path)
	rs, err := codecFor(format).decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesFormat, "invalid %s rules file %s", format, path).
			WithDetail("path", path).
			WithDetail("format", string(format))
	}

	logger.Debug().Int("rules", len(rs)).Str("format", string(format)).Msg("Rules loaded")
	return rs, nil
}

// LoadInto replaces the content of l with the rules at path. On error l is
// left untouched.
func (s *Store) LoadInto(path string, l *rules.List) error {
	rs, err := s.Load(path)
	if err != nil {
		return err
	}
	l.Replace(rs)
	return nil
}

// Save writes rs to path, creating parent directories. The file is written
// to a sibling temp file first and renamed into place.
func (s *Store) Save(path string, rs []rules.Rule) error {
	format := FormatFor(path)
	data, err := codecFor(format).encode(rs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRulesSave, "failed to encode rules for %s", path).
			WithDetail("format", string(format))
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
			WithDetail("path", dir)
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRulesSave, "failed to write rules to %s", path).
			WithDetail("path", path)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrRulesSave, "failed to replace %s", path).
			WithDetail("path", path)
	}

	s.logger.Debug().Str("path", path).Int("rules", len(rs)).Msg("Rules saved")
	return nil
}

// SaveList writes the rules held by l
func (s *Store) SaveList(path string, l *rules.List) error {
	return s.Save(path, l.Rules())
}
