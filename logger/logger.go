// Package logger builds the process logger.
// The terminal owns stdout and stderr, so output goes to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-pong/constant"
)

// Setup returns a JSON file logger under dir when debug is set, otherwise a no-op logger
// The standard library logger is redirected alongside; cleanup flushes, restores it and closes the file
func Setup(dir string, debug bool) (*zap.Logger, func(), error) {
	if !debug {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() { log.SetOutput(prev) }, nil
	}

	f, err := openLogFile(dir)
	if err != nil {
		return nil, nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	logger := zap.New(core, zap.AddCaller()).With(zap.Int("pid", os.Getpid()))
	restore := zap.RedirectStdLog(logger)

	cleanup := func() {
		_ = logger.Sync()
		restore()
		_ = f.Close()
	}
	return logger, cleanup, nil
}

// openLogFile opens the log for append, rotating it aside first if it grew past MaxLogSize
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, constant.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > constant.MaxLogSize {
		ext := filepath.Ext(constant.LogFileName)
		base := constant.LogFileName[:len(constant.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s.%s%s", base, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
