package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"wohnheimsbot/internal/config"
)

const (
	loggerField = "logger"
	timeLayout  = "2006-01-02 15:04:05"
)

// Log is the process-wide logging context. Every record is written once to
// stdout and once to the append-mode log file; both sinks share the
// "<timestamp> - <logger> - <level> - <message>" line layout. Construct it
// first thing in main and defer Close so the file handle is released on
// every exit path.
type Log struct {
	base zerolog.Logger
	root zerolog.Logger
	sink io.Closer
}

// New opens the file sink at cfg.FilePath and builds the dual-sink logger.
// The file is probed with an append-mode open up front: a missing parent
// directory or an unwritable path is a fatal startup error, not something
// to fall back from silently.
func New(cfg config.LogConfig) (*Log, error) {
	return newLog(cfg, os.Stdout)
}

func newLog(cfg config.LogConfig, console io.Writer) (*Log, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	probe, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.FilePath, err)
	}
	_ = probe.Close()

	sink := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}

	out := zerolog.MultiLevelWriter(lineWriter(console), lineWriter(sink))
	base := zerolog.New(out).Level(level).With().Timestamp().Logger()

	l := &Log{
		base: base,
		root: base.With().Str(loggerField, "root").Logger(),
		sink: sink,
	}
	return l, nil
}

// Root returns the root logger.
func (l *Log) Root() *zerolog.Logger {
	return &l.root
}

// Named derives a component logger. Named loggers share the root's sinks,
// so a record shows up exactly once per sink regardless of which logger
// emitted it.
func (l *Log) Named(name string) *zerolog.Logger {
	named := l.base.With().Str(loggerField, name).Logger()
	return &named
}

// Close releases the file sink. Safe to call exactly once, typically via
// defer in main.
func (l *Log) Close() error {
	return l.sink.Close()
}

// lineWriter renders events as "<timestamp> - <logger> - <LEVEL> - <msg>".
func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			loggerField,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{loggerField},
		FormatTimestamp: func(i interface{}) string {
			s, _ := i.(string)
			if t, err := time.Parse(zerolog.TimeFieldFormat, s); err == nil {
				s = t.Format(timeLayout)
			}
			return s + " -"
		},
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprint(i)) + " -"
		},
		FormatPartValueByName: func(i interface{}, name string) string {
			if name != loggerField {
				return fmt.Sprint(i)
			}
			if i == nil {
				return ""
			}
			return fmt.Sprint(i) + " -"
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}
}
