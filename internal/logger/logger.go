package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config описывает параметры логирования
type Config struct {
	Level      string `yaml:"level"`       // trace, debug, info, warn, error
	Format     string `yaml:"format"`      // json или text
	File       string `yaml:"file"`        // путь к файлу логов (пусто - только stdout)
	MaxSize    int    `yaml:"max_size"`    // максимальный размер файла в MB
	MaxBackups int    `yaml:"max_backups"` // количество хранимых старых файлов
	MaxAge     int    `yaml:"max_age"`     // срок хранения в днях
}

// DefaultConfig возвращает конфигурацию логирования по умолчанию
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "json",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Log оборачивает logrus.Logger
type Log struct {
	*logrus.Logger
}

// New создает логгер по конфигурации. Переменная окружения LOG_LEVEL
// имеет приоритет над cfg.Level.
func New(cfg Config) (*Log, error) {
	logger := logrus.New()

	levelStr := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		levelStr = env
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		})
	}
	logger.SetOutput(out)

	return &Log{Logger: logger}, nil
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *Log {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Log{Logger: logger}
}

// WithComponent возвращает запись с полем component
func (l *Log) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}
