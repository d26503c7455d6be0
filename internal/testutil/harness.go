// Package testutil provides shared helpers for the package tests: a
// thread-safe log buffer, an isolated test logger, and a started wizard
// service backed by httptest.
package testutil

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/amps-tools/ampswizard/internal/server"
	"github.com/amps-tools/ampswizard/internal/species"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// NewTestLogger returns a debug-level logger writing into a SafeBuffer.
func NewTestLogger() (*slog.Logger, *SafeBuffer) {
	buf := &SafeBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// StartWizard runs a wizard service on an httptest server, torn down with
// the test. A nil registry gets the built-in species table.
func StartWizard(t *testing.T, reg *species.Registry) (*httptest.Server, *SafeBuffer) {
	t.Helper()
	logger, buf := NewTestLogger()
	srv := server.New(logger, reg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, buf
}
