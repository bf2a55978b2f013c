// Package logging builds the board's zap logger.
//
// The terminal belongs to the UI while the board runs, so logs go to a file
// (or nowhere) rather than stderr.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	grey          = "\033[38;5;240m"
	boldLightGrey = "\033[1;38;5;240m"
	red           = "\033[38;5;9m"
	yellow        = "\033[38;5;11m"
	reset         = "\033[0m"
)

// fullLineColorLevelEncoder colors the entire output line based on log level
func fullLineColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var color string
	switch l {
	case zapcore.DebugLevel:
		color = grey
	case zapcore.InfoLevel:
		color = boldLightGrey
	case zapcore.WarnLevel:
		color = yellow
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		color = red
	default:
		color = reset
	}
	enc.AppendString(color + l.CapitalString())
}

// New creates a sugared console logger writing to w.
// The level is warn by default, info with verbose and debug with debug.
// Colors are used only when w is a terminal.
func New(w io.Writer, verbose, debug bool) (*zap.SugaredLogger, error) {
	if w == nil {
		w = os.Stderr
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "T"
	cfg.EncoderConfig.LevelKey = "L"
	cfg.EncoderConfig.NameKey = "N"
	cfg.EncoderConfig.FunctionKey = ""
	cfg.EncoderConfig.MessageKey = "M"
	cfg.EncoderConfig.StacktraceKey = "S"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncoderConfig.ConsoleSeparator = " "
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if isTerminal(w) {
		cfg.EncoderConfig.EncodeLevel = fullLineColorLevelEncoder
		cfg.EncoderConfig.LineEnding = reset + zapcore.DefaultLineEnding
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.InfoLevel)
	}
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
		cfg.DisableStacktrace = false
		cfg.EncoderConfig.CallerKey = "C"
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg.EncoderConfig), zapcore.AddSync(w), cfg.Level)

	var opts []zap.Option
	// Caller locations are noisy; only include them in debug mode.
	if debug {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Sugar(), nil
}

// Open returns a logger for path. An empty path discards everything.
// The returned close func flushes the logger and closes the file.
func Open(path string, verbose, debug bool) (*zap.SugaredLogger, func() error, error) {
	if path == "" {
		return zap.NewNop().Sugar(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	log, err := New(f, verbose, debug)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() error {
		_ = log.Sync()
		return f.Close()
	}, nil
}
