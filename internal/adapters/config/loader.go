// Package config provides the configuration loader for makerun.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/makerun/internal/core/domain"
	"go.trai.ch/makerun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only config file version makerun understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves settings for cwd. An explicit path must exist; otherwise the nearest
// makerun.yaml above cwd is used, or the defaults when there is none.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "path", path)
		}
		return l.loadFile(path)
	}

	found, ok := findConfiguration(cwd)
	if !ok {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}
	return l.loadFile(found)
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadFile(path string) (domain.Settings, error) {
	var file Configfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Settings{}, err
	}

	settings, err := toSettings(&file, filepath.Dir(path))
	if err != nil {
		return domain.Settings{}, zerr.With(err, "file", path)
	}
	settings.Source = path

	l.Logger.Debug("loaded settings from " + path)
	return settings, nil
}

// toSettings overlays the file on the defaults. Relative state directories are
// resolved against the directory containing the config file.
func toSettings(file *Configfile, configDir string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.Version != "" && file.Version != SupportedVersion {
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	if file.Log.Format != "" {
		format, err := domain.ParseLogFormat(file.Log.Format)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.LogFormat = format
	}

	if file.Log.Level != "" {
		level, err := domain.ParseLogLevel(file.Log.Level)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.LogLevel = level
	}

	if file.PropagateExit != nil {
		settings.PropagateExit = *file.PropagateExit
	}

	if file.History != nil {
		settings.History = *file.History
	}

	stateDir := settings.StateDir
	if file.StateDir != "" {
		stateDir = file.StateDir
	}
	if !filepath.IsAbs(stateDir) {
		stateDir = filepath.Join(configDir, stateDir)
	}
	settings.StateDir = stateDir

	return settings, nil
}

func readAndUnmarshalYAML(path string, v any) error {
	//nolint:gosec // path is the discovered or user-provided config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "path", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return nil
}
