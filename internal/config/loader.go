package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative override location.
const LocalConfigPath = "configs/runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.tap-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only a broken customPath is reported; the other locations fall through.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{UserConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseRunner(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

// ParseRunner decodes YAML on top of the defaults, so a partial file only
// overrides the keys it names, and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the per-user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tap-runner", "configs", "runner.yaml")
}

// ResolvePath returns the file LoadRunner would read first, for watching.
// Returns empty when only the embedded default applies.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{UserConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
