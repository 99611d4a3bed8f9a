package server

import (
	"fmt"
	"time"

	"github.com/df07/go-live-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements log.Logger by forwarding messages to the server log
// and, without blocking, to a console channel streamed to the browser.
// Debug lines stay in the server log.
type WebLogger struct {
	renderID    string
	next        log.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, next log.Logger, consoleChan chan<- ConsoleMessage) *WebLogger {
	if next == nil {
		next = log.Discard()
	}
	return &WebLogger{
		renderID:    renderID,
		next:        next,
		consoleChan: consoleChan,
	}
}

func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	wl.next.Debugf("[%s] "+format, wl.prefixed(args)...)
}

func (wl *WebLogger) Infof(format string, args ...interface{}) {
	wl.next.Infof("[%s] "+format, wl.prefixed(args)...)
	wl.send("info", format, args)
}

func (wl *WebLogger) Noticef(format string, args ...interface{}) {
	wl.next.Noticef("[%s] "+format, wl.prefixed(args)...)
	wl.send("info", format, args)
}

func (wl *WebLogger) Warningf(format string, args ...interface{}) {
	wl.next.Warningf("[%s] "+format, wl.prefixed(args)...)
	wl.send("warning", format, args)
}

func (wl *WebLogger) Errorf(format string, args ...interface{}) {
	wl.next.Errorf("[%s] "+format, wl.prefixed(args)...)
	wl.send("error", format, args)
}

func (wl *WebLogger) prefixed(args []interface{}) []interface{} {
	return append([]interface{}{wl.renderID}, args...)
}

// send forwards to the console channel if there is room
func (wl *WebLogger) send(level, format string, args []interface{}) {
	if wl.consoleChan == nil {
		return
	}

	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
