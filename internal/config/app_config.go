package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/temirov/tema/internal/types"
	"github.com/temirov/tema/internal/utils"
)

// Configuration keys shared by files and environment variables.
const (
	KeyFormat    = "format"
	KeyCopy      = "copy"
	KeyExitCodes = "exit_codes"
	KeyLogLevel  = "log_level"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	HomeDirectory    string
	ExplicitFilePath string
	// IgnoreEnvironment skips TEMA_* variables.
	IgnoreEnvironment bool
}

// ApplicationConfiguration holds tool defaults. Nil and empty fields are unset so that
// later sources only override what they mention.
type ApplicationConfiguration struct {
	Format    string `mapstructure:"format"`
	Copy      *bool  `mapstructure:"copy"`
	ExitCodes *bool  `mapstructure:"exit_codes"`
	LogLevel  string `mapstructure:"log_level"`
}

// LoadApplicationConfiguration loads configuration from the global file, the local (or
// explicit) file and the environment, in increasing precedence.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if userHomeDirectory, err := os.UserHomeDir(); err == nil {
			homeDirectory = userHomeDirectory
		}
	}
	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	if !options.IgnoreEnvironment {
		environmentConfig, environmentErr := loadEnvironmentConfiguration()
		if environmentErr != nil {
			return ApplicationConfiguration{}, environmentErr
		}
		merged = merged.Merge(environmentConfig)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
}

// loadConfigurationFromPath decodes a YAML file. A missing file is empty unless required.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// loadEnvironmentConfiguration reads TEMA_FORMAT, TEMA_COPY, TEMA_EXIT_CODES and TEMA_LOG_LEVEL.
func loadEnvironmentConfiguration() (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	for _, key := range []string{KeyFormat, KeyCopy, KeyExitCodes, KeyLogLevel} {
		if bindErr := reader.BindEnv(key); bindErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("bind environment for %s: %w", key, bindErr)
		}
	}

	var config ApplicationConfiguration
	config.Format = strings.TrimSpace(reader.GetString(KeyFormat))
	config.LogLevel = strings.TrimSpace(reader.GetString(KeyLogLevel))
	for key, destination := range map[string]**bool{KeyCopy: &config.Copy, KeyExitCodes: &config.ExitCodes} {
		if !reader.IsSet(key) {
			continue
		}
		value, parseErr := cast.ToBoolE(strings.TrimSpace(reader.GetString(key)))
		if parseErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("parse %s_%s: %w", utils.EnvironmentPrefix, strings.ToUpper(key), parseErr)
		}
		*destination = &value
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	if override.ExitCodes != nil {
		result.ExitCodes = cloneBool(override.ExitCodes)
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	return result
}

// FormatOrDefault returns the configured result format or raw.
func (config ApplicationConfiguration) FormatOrDefault() string {
	if config.Format == "" {
		return types.FormatRaw
	}
	return strings.ToLower(config.Format)
}

// CopyEnabled reports whether results are copied to the clipboard.
func (config ApplicationConfiguration) CopyEnabled() bool {
	return config.Copy != nil && *config.Copy
}

// ExitCodesEnabled reports whether distinct exit codes are reported.
func (config ApplicationConfiguration) ExitCodesEnabled() bool {
	return config.ExitCodes != nil && *config.ExitCodes
}

// LogLevelOrDefault returns the configured log level or utils.DefaultLogLevel.
func (config ApplicationConfiguration) LogLevelOrDefault() string {
	if config.LogLevel == "" {
		return utils.DefaultLogLevel
	}
	return config.LogLevel
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
