package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"portside/log"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".portside"), nil
}

// Config holds the settings loaded at startup.
type Config struct {
	// MenuMargin is the edge margin, in cells, kept clear around menus.
	MenuMargin int `json:"menu_margin"`
	// MenuFlipThreshold overrides the placement flip threshold. Zero means
	// the built-in default; non-zero values are clamped to [0.5, 0.95].
	MenuFlipThreshold float64 `json:"menu_flip_threshold"`
	// ProtectChrome suppresses the default right-click behavior over the tab
	// strip chrome and title bar.
	ProtectChrome bool `json:"protect_chrome"`
	// DefaultShell is the program started in new terminal tabs. Empty means
	// $SHELL.
	DefaultShell string `json:"default_shell"`
	// AutoConnectProfile is a profile id to connect on startup.
	AutoConnectProfile string `json:"auto_connect_profile"`

	// LogsEnabled controls whether logs are written at all.
	LogsEnabled bool `json:"logs_enabled"`
	// LogsDir overrides the log directory. Empty means ~/.portside/logs.
	LogsDir string `json:"logs_dir"`
	// LogMaxSize is the maximum size in MB of a log file before rotation.
	LogMaxSize int `json:"log_max_size"`
	// LogMaxFiles is the number of rotated log files to keep.
	LogMaxFiles int `json:"log_max_files"`
	// LogMaxAge is the maximum age in days of a rotated log file.
	LogMaxAge int `json:"log_max_age"`
	// LogCompress controls compression of rotated log files.
	LogCompress bool `json:"log_compress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MenuMargin:    1,
		ProtectChrome: true,
		LogsEnabled:   true,
		LogMaxSize:    10,
		LogMaxFiles:   5,
		LogMaxAge:     30,
		LogCompress:   true,
	}
}

// LoadConfig loads the configuration from disk. If it can't be done, we
// return the default configuration.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if cfg.MenuMargin <= 0 {
		cfg.MenuMargin = 1
	}
	return &cfg
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath, data, 0644)
}

// LogConfig converts the app config into the log package's settings.
func (c *Config) LogConfig() *log.Config {
	return &log.Config{
		Enabled:  c.LogsEnabled,
		Dir:      c.LogsDir,
		MaxSize:  c.LogMaxSize,
		MaxFiles: c.LogMaxFiles,
		MaxAge:   c.LogMaxAge,
		Compress: c.LogCompress,
	}
}
