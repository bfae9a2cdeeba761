package dashboard

import "fmt"

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient message for the user.
type Notification struct {
	Level   Level
	Message string
}

func (c *Controller) notify(level Level, format string, args ...any) {
	c.pending = append(c.pending, Notification{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Notifications drains the queued notifications.
func (c *Controller) Notifications() []Notification {
	out := c.pending
	c.pending = nil
	return out
}
