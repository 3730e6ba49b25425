package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	WarningLog *log.Logger
	InfoLog    *log.Logger
	ErrorLog   *log.Logger
)

// Config holds logging configuration.
type Config struct {
	Enabled  bool
	Dir      string
	MaxSize  int // megabytes per file
	MaxFiles int
	MaxAge   int // days
	Compress bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:  true,
		Dir:      "",
		MaxSize:  10,
		MaxFiles: 5,
		MaxAge:   30,
		Compress: true,
	}
}

var logFileName = filepath.Join(os.TempDir(), "portside.log")

// GetConfigDir returns the path to the application's configuration directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".portside"), nil
}

// GetLogDir returns the directory where logs should be stored, creating it
// when needed. Disabled logging falls back to the temp directory.
func GetLogDir(cfg *Config) (string, error) {
	if cfg != nil && !cfg.Enabled {
		return os.TempDir(), nil
	}
	if cfg != nil && cfg.Dir != "" {
		return cfg.Dir, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return os.TempDir(), fmt.Errorf("failed to get config directory: %w", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return os.TempDir(), fmt.Errorf("failed to create log directory: %w", err)
	}
	return logDir, nil
}

// GetLogFilePath returns the full path to the log file.
func GetLogFilePath(cfg *Config) (string, error) {
	logDir, err := GetLogDir(cfg)
	if err != nil {
		return logFileName, err
	}
	return filepath.Join(logDir, "portside.log"), nil
}

var globalLogFile io.WriteCloser

func init() {
	// Default loggers so log calls in tests never panic before Initialize.
	if InfoLog == nil {
		InfoLog = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	}
	if WarningLog == nil {
		WarningLog = log.New(os.Stderr, "WARNING: ", log.Ldate|log.Ltime)
	}
	if ErrorLog == nil {
		ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	}
}

// Initialize should be called once at the beginning of the program to set up
// logging; defer Close() after calling it. Log output goes to a rotating file
// in the configured log directory (default: ~/.portside/logs/).
func Initialize() {
	InitializeWithConfig(DefaultConfig())
}

// InitializeWithConfig sets up logging with the provided configuration.
func InitializeWithConfig(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logFilePath, err := GetLogFilePath(cfg)
	if err != nil {
		fmt.Printf("Warning: Using default log file location due to error: %v\n", err)
		logFilePath = logFileName
	}

	writer := createRotatingWriter(logFilePath, cfg)

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	InfoLog = log.New(writer, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(writer, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(writer, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	if closer, ok := writer.(io.WriteCloser); ok {
		globalLogFile = closer
	}
	logFileName = logFilePath
}

// createRotatingWriter creates a writer that handles log rotation based on
// config. A non-positive MaxSize disables rotation.
func createRotatingWriter(logFilePath string, cfg *Config) io.Writer {
	if cfg == nil || cfg.MaxSize <= 0 {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			panic(fmt.Sprintf("could not create log directory: %s", err))
		}
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			panic(fmt.Sprintf("could not open log file: %s", err))
		}
		return f
	}

	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxFiles,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}

func Close() {
	if globalLogFile != nil {
		_ = globalLogFile.Close()
	}
	fmt.Println("wrote logs to " + logFileName)
}

// Every is used to log at most once every timeout duration.
type Every struct {
	timeout time.Duration
	timer   *time.Timer
}

func NewEvery(timeout time.Duration) *Every {
	return &Every{timeout: timeout}
}

// ShouldLog returns true if the timeout has passed since the last log.
func (e *Every) ShouldLog() bool {
	if e.timer == nil {
		e.timer = time.NewTimer(e.timeout)
		e.timer.Reset(e.timeout)
		return true
	}

	select {
	case <-e.timer.C:
		e.timer.Reset(e.timeout)
		return true
	default:
		return false
	}
}
