package server

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultConsoleSize is the number of records a console keeps
const DefaultConsoleSize = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
}

// Console keeps the most recent log records in a ring buffer so the web
// client can show them
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	next     int
	full     bool
}

// NewConsole creates a console holding up to size messages.
// Non-positive sizes use DefaultConsoleSize.
func NewConsole(size int) *Console {
	if size <= 0 {
		size = DefaultConsoleSize
	}
	return &Console{messages: make([]ConsoleMessage, size)}
}

// Add appends a message, dropping the oldest once the buffer is full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages[c.next] = msg
	c.next = (c.next + 1) % len(c.messages)
	if c.next == 0 {
		c.full = true
	}
}

// Messages returns a copy of the buffered messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.full {
		return append([]ConsoleMessage{}, c.messages[:c.next]...)
	}
	out := make([]ConsoleMessage, 0, len(c.messages))
	out = append(out, c.messages[c.next:]...)
	return append(out, c.messages[:c.next]...)
}

// ConsoleHandler is a slog.Handler that records into a Console and then
// passes the record on to next, if any
type ConsoleHandler struct {
	console *Console
	next    slog.Handler
	level   slog.Leveler
	attrs   []slog.Attr
}

// NewConsoleHandler creates a handler recording records at or above level
func NewConsoleHandler(console *Console, next slog.Handler, level slog.Leveler) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{console: console, next: next, level: level}
}

// Enabled reports whether the console or next wants records at level
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.level.Level() {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, level)
}

// Handle records r into the console when it meets the level, then forwards it
func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level.Level() {
		var b strings.Builder
		b.WriteString(r.Message)
		writeAttr := func(a slog.Attr) bool {
			b.WriteString(" ")
			b.WriteString(a.String())
			return true
		}
		for _, a := range h.attrs {
			writeAttr(a)
		}
		r.Attrs(writeAttr)

		h.console.Add(ConsoleMessage{
			Message:   b.String(),
			Timestamp: r.Time,
			Level:     strings.ToLower(r.Level.String()),
		})
	}

	if h.next != nil && h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

// WithAttrs returns a handler that appends attrs to every console line
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	if h.next != nil {
		clone.next = h.next.WithAttrs(attrs)
	}
	return &clone
}

// WithGroup forwards the group to next; console lines stay flat
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if h.next != nil {
		clone.next = h.next.WithGroup(name)
	}
	return &clone
}
