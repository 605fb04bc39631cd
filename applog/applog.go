// Package applog provides general-purpose application logging.
//
// Logs are written as JSON lines to ~/.paibi/logs/app.log through zap.
// Covers: app start/stop, config changes, queries, table lookups, seeding.
//
// The file is opened lazily on first use. If it cannot be opened the
// logger degrades to a no-op; logging never fails a command.
package applog

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	once   sync.Once
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

// Dir returns the directory holding paiBI's log files.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".paibi", "logs"), nil
}

func initFile() {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger != nil {
			return
		}
		logger = zap.NewNop()
		dir, err := Dir()
		if err != nil {
			sugar = logger.Sugar()
			return
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			sugar = logger.Sugar()
			return
		}
		f, err := os.OpenFile(filepath.Join(dir, "app.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			sugar = logger.Sugar()
			return
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.DebugLevel)
		logger = zap.New(core)
		sugar = logger.Sugar()
	})
}

// Use replaces the underlying logger. `serve` uses it to log to stderr
// and tests use it to capture entries.
func Use(l *zap.Logger) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	logger = l
	sugar = l.Sugar()
}

// L returns the structured logger.
func L() *zap.Logger {
	initFile()
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func s() *zap.SugaredLogger {
	initFile()
	mu.Lock()
	defer mu.Unlock()
	return sugar
}

// Info logs a general info message.
func Info(format string, args ...interface{}) {
	s().Infof(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	s().Errorf(format, args...)
}

// Event logs a message tagged with a category.
func Event(category string, format string, args ...interface{}) {
	s().With("category", category).Infof(format, args...)
}

// Close flushes buffered entries.
func Close() {
	_ = L().Sync()
}
