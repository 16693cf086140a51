package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level is the severity of a log message
type Level int

const (
	LevelDefault Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

const (
	color = iota
	prefix
)

var colors = map[int]string{
	White:  "\033[0m",  // \033[0m
	Black:  "\033[30m", // \033[30m
	Red:    "\033[31m", // \033[31m
	Green:  "\033[32m", // \033[32m
	Yellow: "\033[33m", // \033[33m
	Blue:   "\033[34m", // \033[34m
	Purple: "\033[35m", // \033[35m
	Cyan:   "\033[36m", // \033[36m
	Grey:   "\033[37m", // \033[37m
}

var levels = map[Level][2]string{
	LevelTrace:   {colors[Grey], "TRCE"},
	LevelDebug:   {colors[Grey], "DBUG"},
	LevelInfo:    {colors[Blue], "INFO"},
	LevelWarn:    {colors[Yellow], "WARN"},
	LevelError:   {colors[Red], "EROR"},
	LevelFatal:   {colors[Red], "FATL"},
	LevelPanic:   {colors[Red], "PANC"},
	LevelDefault: {colors[White], "NORM"},
}

// ParseLevel returns the Level for names such as "debug" or "WARN"
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace", "trce":
		return LevelTrace, nil
	case "debug", "dbug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "eror":
		return LevelError, nil
	}
	return LevelDefault, fmt.Errorf("logger: unknown level %q", s)
}

func (lv Level) String() string {
	switch lv {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelPanic:
		return "panic"
	}
	return "default"
}

func (lv Level) MarshalText() ([]byte, error) {
	return []byte(lv.String()), nil
}

func (lv *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*lv = level
	return nil
}

var DefaultLogger = NewLogger(os.Stderr)

// Logger is a leveled logger. Messages below the configured level are
// discarded. Print, Fatal and Panic messages are always written.
type Logger struct {
	lock      sync.Mutex    // sync
	log       *log.Logger   // actual logger
	buf       *bytes.Buffer // buffer
	level     Level         // minimum level written
	printFunc bool
	printFile bool
	colored   bool
	dep       int // call depth
}

// NewLogger returns a Logger writing to out at LevelInfo
func NewLogger(out io.Writer) *Logger {
	l := &Logger{
		log:   log.New(out, "", log.LstdFlags),
		buf:   new(bytes.Buffer),
		level: LevelInfo,
		dep:   4,
	}
	return l
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level != LevelDefault && level < l.level && level < LevelFatal {
		return
	}
	levelInfo, ok := levels[level]
	if !ok {
		levelInfo = levels[LevelDefault]
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	if l.colored {
		l.buf.WriteString(levelInfo[color])
	}
	l.buf.WriteString(levelInfo[prefix])
	if l.colored {
		l.buf.WriteString(colors[White])
	}
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		if level != LevelPanic {
			fn, file := trace(depth)
			if l.printFunc {
				l.buf.WriteByte('[')
				if i := strings.LastIndexByte(fn, '.'); i >= 0 {
					fn = fn[i+1:]
				}
				l.buf.WriteString(fn)
				l.buf.WriteByte(']')
			}
			if l.printFunc && l.printFile {
				l.buf.WriteByte(' ')
			}
			if l.printFile {
				l.buf.WriteString(file)
			}
			l.buf.WriteString(" - ")
		}
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
		l.log.Print(l.buf.String())
		return
	}
	fmt.Fprintf(l.buf, format, args...)
	l.log.Print(l.buf.String())
}

func (l *Logger) SetOutput(out io.Writer) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetOutput(out)
}

func (l *Logger) SetFlags(flags int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetFlags(flags)
}

func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetPrefix(prefix)
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.level
}

func (l *Logger) SetColor(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.colored = ok
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func (l *Logger) Panic(message string) {
	l.logInternal(LevelPanic, l.dep, message)
	panic(message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logInternal(LevelPanic, l.dep, format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (l *Logger) Print(message string) {
	l.logInternal(LevelDefault, l.dep, message)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.logInternal(LevelDefault, l.dep, format, args...)
}

// trace returns the function and file:line of the frame calldepth levels
// up the stack, where zero is runtime.Callers itself
func trace(calldepth int) (string, string) {
	pc := make([]uintptr, calldepth+8)
	n := runtime.Callers(0, pc)
	frames := runtime.CallersFrames(pc[:n])
	var frame runtime.Frame
	for i, more := 0, true; more && i <= calldepth; i++ {
		frame, more = frames.Next()
	}
	if frame.Function == "" {
		return "unknown", "unknown:0"
	}
	return filepath.Base(frame.Function), fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
