package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the configs used by the global logger.
type Config struct {
	Level      string `yaml:"level"`
	Filename   string `yaml:"filename"`
	MaxSize    int    `yaml:"max_size_in_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age_in_days"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// InitGlobalLogger replaces the default stderr logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, 2)
	if cfg.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if cfg.Console || cfg.Filename == "" {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log = zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyValues ...any) {
	withFields(log.Debug(), keyValues).Msg(msg)
}

func Info(msg string, keyValues ...any) {
	withFields(log.Info(), keyValues).Msg(msg)
}

func Warn(msg string, keyValues ...any) {
	withFields(log.Warn(), keyValues).Msg(msg)
}

func Error(msg string, keyValues ...any) {
	withFields(log.Error(), keyValues).Msg(msg)
}

// withFields applies alternating key-value pairs to an event. A trailing key
// without a value is dropped.
func withFields(ev *zerolog.Event, keyValues []any) *zerolog.Event {
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keyValues[i+1])
	}

	return ev
}
