package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/configurator.log"

// maxLines caps the in-memory buffer shown in the terminal overlay.
const maxLines = 500

// Logger is a zap logger whose output goes to a log file and to an in-memory line buffer
// the terminal overlay reads back.
type Logger struct {
	*zap.Logger

	buf  *lineBuffer
	file *os.File
}

// lineBuffer keeps the most recent formatted entries, one per Write.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	b.mu.Lock()
	b.lines = append(b.lines, line)
	if over := len(b.lines) - maxLines; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
	b.mu.Unlock()
	return len(p), nil
}

// New builds a logger appending JSON entries to path and console lines to memory. An empty
// path keeps output in memory only. debug lowers the level to Debug.
func New(path string, debug bool) (*Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	l := &Logger{buf: &lineBuffer{lines: make([]string, 0)}}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = "T"
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(l.buf), level),
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.Lock(f), level))
	}

	l.Logger = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// Log records a raw line of terminal input.
func (l *Logger) Log(line string) {
	l.Info("terminal", zap.String("input", line))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.buf.mu.Lock()
	defer l.buf.mu.Unlock()
	out := make([]string, len(l.buf.lines))
	copy(out, l.buf.lines)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
