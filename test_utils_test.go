package devcycle

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

var testEnvironment = StaticEnvironment{
	Platform:        "iOS",
	PlatformVersion: "17.2",
	DeviceModel:     "iPhone",
}

func testUserOptions() *UserOptions {
	return &UserOptions{Environment: testEnvironment}
}

func setNowForTest(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

type loggedMessage struct {
	message string
	err     error
}

type logCapture struct {
	messages []loggedMessage
	mu       sync.Mutex
}

func (c *logCapture) errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, 0)
	for _, m := range c.messages {
		if m.err != nil {
			errs = append(errs, m.err)
		}
	}
	return errs
}

// Routes the global output logger into memory for the duration of the test
func captureOutputLogger(t *testing.T) (*logCapture, *observabilityClientExample) {
	t.Helper()
	capture := &logCapture{}
	observabilityClient := NewObservabilityClientExample()
	InitializeGlobalOutputLogger(OutputLoggerOptions{
		EnableDebug: true,
		LogCallback: func(message string, err error) {
			capture.mu.Lock()
			defer capture.mu.Unlock()
			capture.messages = append(capture.messages, loggedMessage{message: message, err: err})
		},
	}, observabilityClient)
	t.Cleanup(ShutdownGlobalOutputLogger)
	return capture, observabilityClient
}

func swallow_stderr(task func()) string {
	stderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	task()
	w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	os.Stderr = stderr
	return buf.String()
}

func ptr[T any](v T) *T {
	return &v
}
