package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much the global logger writes.
type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"` // "console", "file"
	Filename   string   `yaml:"filename"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAge     int      `yaml:"max_age_in_days"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu sync.RWMutex
	// global logs to stdout at info level until InitGlobalLogger runs, so
	// config failures during start-up are still reported.
	global = New(&Config{})
)

// InitGlobalLogger replaces the process-wide logger according to cfg.
func InitGlobalLogger(cfg *Config) {
	l := New(cfg)

	mu.Lock()
	global = l
	mu.Unlock()
}

// New builds a sugared zap logger without touching the global one.
func New(cfg *Config) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := parseLevel(cfg.Level)
	targets := cfg.Targets
	if len(targets) == 0 {
		targets = []string{"console"}
	}

	cores := make([]zapcore.Core, 0, len(targets))
	for _, t := range targets {
		switch t {
		case "console":
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg),
				stdout{}, level))
		case "file":
			if cfg.Filename == "" {
				continue
			}
			_ = os.MkdirAll(filepath.Dir(cfg.Filename), 0o755)
			lj := &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    orDefault(cfg.MaxSize, 100),
				MaxBackups: orDefault(cfg.MaxBackups, 3),
				MaxAge:     orDefault(cfg.MaxAge, 7),
				Compress:   cfg.Compress,
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg),
				zapcore.AddSync(lj), level))
		}
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if level == zapcore.DebugLevel {
		opts = append(opts, zap.Development())
	}

	return zap.New(zapcore.NewTee(cores...), opts...).Sugar()
}

func Debug(msg string, keysAndValues ...any) { get().Debugw(msg, keysAndValues...) }

func Info(msg string, keysAndValues ...any) { get().Infow(msg, keysAndValues...) }

func Warn(msg string, keysAndValues ...any) { get().Warnw(msg, keysAndValues...) }

func Error(msg string, keysAndValues ...any) { get().Errorw(msg, keysAndValues...) }

// Sync flushes buffered entries; call it before exiting.
func Sync() {
	_ = get().Sync()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// stdout resolves os.Stdout on every write instead of capturing it once.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdout) Sync() error { return nil }

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
