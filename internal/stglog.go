package internal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	ErrParseStrToLevel = errors.New("string can't be parsed to level, use: `error`, `warn`, `info`, `debug`")
)

type Level int

const (
	ERR Level = iota
	WRN
	INF
	DBG
)

func (l Level) String() string { return [4]string{"Error", "Warn", "Info", "Debug"}[l] }

// level tags, coloured only when the log goes to a terminal
var tags = [4]struct{ plain, color string }{
	{"ERR", "\033[31mERR\033[0m"},
	{"WRN", "\033[33mWRN\033[0m"},
	{"INF", "\033[32mINF\033[0m"},
	{"DBG", "\033[35mDBG\033[0m"},
}

func NewStdLog(opts ...Option) *StdLog {
	l := &StdLog{lvl: INF}
	l.setWriter(os.Stderr)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// StdLog is a levelled logger for a command run from a terminal or a build script.
type StdLog struct {
	loggers [4]*log.Logger
	lvl     Level
}

func (l *StdLog) setWriter(w io.Writer) {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	for i, tag := range tags {
		prefix := tag.plain
		if colored {
			prefix = tag.color
		}
		l.loggers[i] = log.New(w, "playassets "+prefix+" ", log.Ltime|log.Lmsgprefix)
	}
}

func (l *StdLog) logf(lvl Level, format string, v ...interface{}) {
	if l.lvl < lvl {
		return
	}
	l.loggers[lvl].Printf(format, v...)
}

func (l *StdLog) Debug(format string, v ...interface{}) { l.logf(DBG, format, v...) }

func (l *StdLog) Info(format string, v ...interface{}) { l.logf(INF, format, v...) }

func (l *StdLog) Warn(format string, v ...interface{}) { l.logf(WRN, format, v...) }

func (l *StdLog) Error(format string, v ...interface{}) { l.logf(ERR, format, v...) }

// Fatal logs at error level regardless of the configured level and exits with status 1.
func (l *StdLog) Fatal(format string, v ...interface{}) {
	l.loggers[ERR].Printf(format, v...)
	os.Exit(1)
}

type Option func(l *StdLog)

func WithLevel(level Level) Option { return func(l *StdLog) { l.lvl = level } }

// WithWriter redirects every level, e.g. to io.Discard in tests.
func WithWriter(w io.Writer) Option { return func(l *StdLog) { l.setWriter(w) } }

func ParseLevel(lvl string) (Level, error) {
	levels := map[string]Level{
		strings.ToLower(ERR.String()): ERR,
		strings.ToLower(WRN.String()): WRN,
		strings.ToLower(INF.String()): INF,
		strings.ToLower(DBG.String()): DBG,
	}
	level, ok := levels[strings.ToLower(lvl)]
	if !ok {
		return INF, fmt.Errorf("%s %w", lvl, ErrParseStrToLevel)
	}
	return level, nil
}
