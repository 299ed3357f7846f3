// Package config provides the configuration loader for mum.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/mum/internal/core/domain"
	"go.trai.ch/mum/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only mum.yaml schema version understood by the loader.
const SupportedVersion = "1"

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the session settings. An explicit path must exist; otherwise
// mum.yaml is searched for in cwd and its parents, and defaults apply when
// none is found. The returned TasksPath is always absolute.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath := path
	if configPath != "" && !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}
	if configPath == "" {
		configPath = findConfiguration(cwd)
	}

	if configPath == "" {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		settings.TasksPath = resolvePath(cwd, settings.TasksPath)
		return settings, nil
	}

	var mumfile Mumfile
	if err := readAndUnmarshalYAML(configPath, &mumfile); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	if mumfile.Version != "" && mumfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, reading it as version %s",
			configPath, mumfile.Version, SupportedVersion))
	}

	if err := apply(&settings, &mumfile, filepath.Dir(configPath)); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug("loaded configuration from " + configPath)
	return settings, nil
}

// findConfiguration walks up from cwd and returns the first mum.yaml found,
// or an empty string.
func findConfiguration(cwd string) string {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func apply(settings *domain.Settings, mumfile *Mumfile, configDir string) error {
	storagePath := settings.TasksPath
	if p := strings.TrimSpace(mumfile.Storage.Path); p != "" {
		storagePath = p
	}
	settings.TasksPath = resolvePath(configDir, storagePath)

	settings.LogJSON = mumfile.Log.JSON
	if level := strings.ToLower(strings.TrimSpace(mumfile.Log.Level)); level != "" {
		if !slices.Contains(logLevels, level) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidLogLevel, "unknown log level"), "level", mumfile.Log.Level)
		}
		settings.LogLevel = level
	}

	mode, err := domain.ParseUIMode(mumfile.UI.Mode)
	if err != nil {
		return err
	}
	settings.UIMode = mode

	if mumfile.UI.Prompt != nil {
		settings.Prompt = *mumfile.UI.Prompt
	}

	return nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user or discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
