package notify

import (
	"io"
	"log"
	"os"
	"os/exec"
)

type Notifier interface {
	Notify(title, message string)
	Error(msg string)
}

type MessageType int

const (
	MsgPairFailed MessageType = iota
	MsgPaletteFixed
	MsgPaletteInvalid
)

// Message is a resolved notification.
type Message struct {
	Title   string
	Body    string
	IsError bool
}

// MessageDef describes a notification and the config key that overrides it.
type MessageDef struct {
	Type         MessageType
	ConfigKey    string
	DefaultTitle string
	DefaultBody  string
	IsError      bool
}

var MessageDefs = []MessageDef{
	{MsgPairFailed, "pair_failed", "ColorContrast", "Contrast check failed", false},
	{MsgPaletteFixed, "palette_fixed", "ColorContrast", "All pairs pass AA", false},
	{MsgPaletteInvalid, "palette_invalid", "ColorContrast", "Palette could not be checked", true},
}

// Send delivers msg, appending detail to the body when given.
func Send(n Notifier, msg Message, detail string) {
	body := msg.Body
	if detail != "" {
		body = body + ": " + detail
	}
	if msg.IsError {
		n.Error(msg.Title + ": " + body)
		return
	}
	n.Notify(msg.Title, body)
}

// New returns the notifier for a [notifications] type.
func New(kind string) Notifier {
	switch kind {
	case "desktop":
		return Desktop{}
	case "log":
		return Log{}
	default:
		return Nop{}
	}
}

type Desktop struct{}

func (Desktop) Notify(title, message string) {
	cmd := exec.Command("notify-send", "-a", "ColorContrast", title, message)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", "ColorContrast", "-u", "critical", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

// Log writes notifications as log lines to W, or to stderr when W is nil.
// It does not use the standard logger.
type Log struct {
	W io.Writer
}

func (l Log) logger() *log.Logger {
	w := l.W
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "", log.LstdFlags)
}

func (l Log) Notify(title, message string) {
	l.logger().Printf("%s: %s", title, message)
}

func (l Log) Error(msg string) {
	l.logger().Printf("Error: %s", msg)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) Notify(title, message string) {}
func (Nop) Error(msg string)             {}
