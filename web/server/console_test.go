package server

import (
	"fmt"
	"testing"
	"time"
)

// recordingLogger captures formatted lines per level
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(f string, a ...interface{})   { r.record("debug", f, a...) }
func (r *recordingLogger) Infof(f string, a ...interface{})    { r.record("info", f, a...) }
func (r *recordingLogger) Noticef(f string, a ...interface{})  { r.record("notice", f, a...) }
func (r *recordingLogger) Warningf(f string, a ...interface{}) { r.record("warning", f, a...) }
func (r *recordingLogger) Errorf(f string, a ...interface{})   { r.record("error", f, a...) }

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	next := &recordingLogger{}
	logger := NewWebLogger("test-render-123", next, messageChan)

	logger.Infof("Pass %d: %d ms", 3, 41)

	select {
	case msg := <-messageChan:
		if msg.Message != "Pass 3: 41 ms" {
			t.Errorf("Expected message 'Pass 3: 41 ms', got '%s'", msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}

	if len(next.lines) != 1 || next.lines[0] != "info: [test-render-123] Pass 3: 41 ms" {
		t.Errorf("Expected the server log to get a prefixed line, got %v", next.lines)
	}
}

func TestWebLogger_Levels(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("levels", nil, messageChan)

	logger.Infof("i")
	logger.Noticef("n")
	logger.Warningf("w")
	logger.Errorf("e")

	expected := []string{"info", "info", "warning", "error"}
	for i, level := range expected {
		msg := <-messageChan
		if msg.Level != level {
			t.Errorf("Message %d: expected level %q, got %q", i, level, msg.Level)
		}
	}
}

func TestWebLogger_DebugStaysInServerLog(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	next := &recordingLogger{}
	logger := NewWebLogger("quiet", next, messageChan)

	logger.Debugf("Camera moved to %v", "origin")

	select {
	case msg := <-messageChan:
		t.Errorf("Debug line should not reach the browser console, got %+v", msg)
	default:
	}
	if len(next.lines) != 1 || next.lines[0] != "debug: [quiet] Camera moved to origin" {
		t.Errorf("Expected the server log to get the debug line, got %v", next.lines)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-789", nil, nil)

	// Should not panic or block
	logger.Infof("Test message with nil channel")
}

func TestWebLogger_FullChannel(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-full", nil, messageChan)

	logger.Infof("Message 1")

	// This should not block even though channel is full
	done := make(chan bool, 1)
	go func() {
		logger.Infof("Message 2")
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Error("Logger blocked on full channel")
	}

	msg := <-messageChan
	if msg.Message != "Message 1" {
		t.Errorf("Expected 'Message 1', got '%s'", msg.Message)
	}
}
