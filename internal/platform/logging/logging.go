package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Level        string
	Format       string // text or json
	Debug        bool
	ErrorLogPath string
	Output       io.Writer
}

// New builds the application logger. Outside debug mode every entry at error
// level or worse is also appended to ErrorLogPath.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if opts.Debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if opts.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if !opts.Debug && opts.ErrorLogPath != "" {
		hook, err := NewErrorFileHook(opts.ErrorLogPath)
		if err != nil {
			return nil, err
		}
		logger.AddHook(hook)
	}
	return logger, nil
}

// ErrorFileHook writes error, fatal and panic entries to a file.
type ErrorFileHook struct {
	w         io.Writer
	formatter logrus.Formatter
}

func NewErrorFileHook(path string) (*ErrorFileHook, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open error log %s: %w", path, err)
	}
	return &ErrorFileHook{w: f, formatter: &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}}, nil
}

func (h *ErrorFileHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
}

func (h *ErrorFileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}

type ctxKey struct{}

// ToContext stores a request-scoped entry.
func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the request-scoped entry, or one on the standard logger.
func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
