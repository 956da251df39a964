package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pattern records a regular expression under the key "pattern".
func Pattern(expr string) slog.Attr {
	return slog.String("pattern", expr)
}

// UserAgent records the agent string under the key "user_agent".
// Empty strings produce an empty Attr.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Table records a rule table name and size under the group "table".
func Table(name string, size int) slog.Attr {
	return slog.Group("table", slog.String("name", name), slog.Int("size", size))
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
