package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the logger backend and where it writes.
type Options struct {
	// Backend is "slog" (default) or "zap".
	Backend string
	// Level is debug, info, warn or error. Unknown values mean info.
	Level string
	// File, when set, sends output to a size-rotated file instead of Writer.
	File string
	// Writer is used when File is empty; nil means os.Stderr.
	Writer io.Writer
}

// New builds a Logger from opts. The returned closer releases the log file
// (if any) and flushes buffered output; it is never nil.
func New(opts Options) (Logger, io.Closer, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = rotating
		closer = rotating
	}

	switch strings.ToLower(opts.Backend) {
	case "", "slog":
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), closer, nil
	case "zap":
		l := newZap(out, opts.Level)
		return NewZapLogger(l), closerFunc(func() error {
			_ = l.Sync()
			return closer.Close()
		}), nil
	default:
		_ = closer.Close()
		return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func slogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func newZap(w io.Writer, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		TimeKey:     "ts",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
