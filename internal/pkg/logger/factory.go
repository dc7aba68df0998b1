package logger

// LoggerType represents different logger configurations
type LoggerType string

const (
	// FileLogger writes logs to file only
	FileLogger LoggerType = "file"
	// ConsoleLogger writes logs to console only
	ConsoleLogger LoggerType = "console"
	// HybridLogger writes logs to both file and console
	HybridLogger LoggerType = "hybrid"
)

const defaultLogFile = "logs/duespay.log"

// LoggerFactory creates different types of loggers
type LoggerFactory struct {
	defaultConfig Config
}

// NewLoggerFactory creates a new logger factory
func NewLoggerFactory(config Config) *LoggerFactory {
	return &LoggerFactory{defaultConfig: config}
}

// CreateLogger creates a logger based on the specified type
func (f *LoggerFactory) CreateLogger(loggerType LoggerType) (*AppLogger, error) {
	switch loggerType {
	case FileLogger:
		return f.createFileLogger()
	case ConsoleLogger:
		return f.createConsoleLogger()
	default:
		return f.createHybridLogger()
	}
}

func (f *LoggerFactory) createFileLogger() (*AppLogger, error) {
	config := f.defaultConfig
	if config.FilePath == "" {
		config.FilePath = defaultLogFile
	}
	config.Console = false

	return NewAppLogger(config)
}

func (f *LoggerFactory) createConsoleLogger() (*AppLogger, error) {
	config := f.defaultConfig
	config.FilePath = ""

	return NewAppLogger(config)
}

func (f *LoggerFactory) createHybridLogger() (*AppLogger, error) {
	config := f.defaultConfig
	if config.FilePath == "" {
		config.FilePath = defaultLogFile
	}
	config.Console = true

	return NewAppLogger(config)
}

// GetDefaultConfig returns a default logger configuration
func GetDefaultConfig() Config {
	return Config{
		Level:      "info",
		FilePath:   defaultLogFile,
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
	}
}
