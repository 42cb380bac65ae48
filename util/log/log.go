// package log defines a strict two-level logger, referenced from
// https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// InfoLevel outputs only calling Info*.
	// DebugLevel outputs all of outputting call, Info* and Debug*.
	InfoLevel = iota
	DebugLevel
)

// DebugPrefix marks debug output, placed between the logger prefix and
// the message text.
const DebugPrefix = "DEBUG: "

// Logger is a simple logger with info and debug levels only.
// Output errors are swallowed for convenience.
type Logger struct {
	logger *log.Logger

	mu    sync.Mutex
	level int
}

// construct new Logger. default output level is InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  InfoLevel,
	}
}

func (l *Logger) output(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.logger.Output(calldepth, msg)
}

func (l *Logger) Info(v ...interface{})                 { l.output(3, fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{})               { l.output(3, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) { l.output(3, fmt.Sprintf(format, v...)) }

func (l *Logger) debugOutput(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < DebugLevel {
		return
	}
	_ = l.logger.Output(calldepth, DebugPrefix+msg)
}

func (l *Logger) Debug(v ...interface{})   { l.debugOutput(3, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) { l.debugOutput(3, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.debugOutput(3, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// set logging level.
func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// return current logging level.
func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// same as standard package's log
func (l *Logger) SetFlags(flag int)       { l.logger.SetFlags(flag) }
func (l *Logger) SetPrefix(prefix string) { l.logger.SetPrefix(prefix) }

var std = New(os.Stdout, "", log.LstdFlags)

func Info(v ...interface{})                 { std.output(3, fmt.Sprint(v...)) }
func Infoln(v ...interface{})               { std.output(3, fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{}) { std.output(3, fmt.Sprintf(format, v...)) }

func Debug(v ...interface{})   { std.debugOutput(3, fmt.Sprint(v...)) }
func Debugln(v ...interface{}) { std.debugOutput(3, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) {
	std.debugOutput(3, fmt.Sprintf(format, v...))
}

func SetOutput(w io.Writer) { std.SetOutput(w) }

// set logging level to default logger.
func SetLevel(level int) { std.SetLevel(level) }

// return current logging level for default logger.
func Level() int { return std.Level() }

// SilentWriter implements io.Writer. it writes no content and returns
// no error so that any writing is ignored.
type SilentWriter struct{}

func (SilentWriter) Write(p []byte) (int, error) { return len(p), nil }
