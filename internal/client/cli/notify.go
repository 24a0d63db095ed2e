package cli

import (
	"fmt"
	"io"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

var levelPrefixes = map[Level]string{
	LevelSuccess: "[ok]",
	LevelInfo:    "[info]",
	LevelWarning: "[warn]",
	LevelError:   "[error]",
}

// Notifier surfaces workflow outcomes to the user as transient one-line
// notices, the terminal stand-in for toast notifications.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Show(level Level, message string) {
	prefix, ok := levelPrefixes[level]
	if !ok {
		prefix = levelPrefixes[LevelInfo]
	}
	fmt.Fprintf(n.w, "%s %s\n", prefix, message)
}

func (n *Notifier) Success(message string) { n.Show(LevelSuccess, message) }
func (n *Notifier) Info(message string)    { n.Show(LevelInfo, message) }
func (n *Notifier) Warning(message string) { n.Show(LevelWarning, message) }
func (n *Notifier) Error(message string)   { n.Show(LevelError, message) }
