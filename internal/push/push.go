// Package push drives a remote wizard session from the command line: it
// connects to a running wizard service over socket.io and feeds it a param
// file, returning the hydrated configuration the server echoes back.
package push

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/amps-tools/ampswizard/internal/ctxlog"
)

const (
	wizardNamespace = "/wizard"
	connectTimeout  = 10 * time.Second
)

// opResult is a private struct to safely pass results through the done channel.
type opResult struct {
	value any
	err   error
}

// Send pushes raw param-file text into the wizard at rawURL and waits for
// the echoed configuration. A sanity-gate rejection on the server side is
// returned as an error carrying the server's message.
func Send(ctx context.Context, rawURL string, text string) (any, error) {
	logger := ctxlog.FromContext(ctx).With("url", rawURL)
	logger.Debug("Push started")
	defer logger.Debug("Push finished")

	var isConnected atomic.Bool

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(wizardNamespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected to wizard", "sid", io.Id())
		io.Emit("load", text)
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- opResult{err: fmt.Errorf("connect error: %v", errs[0])}
	})

	io.On(types.EventName("rejected"), func(data ...any) {
		msg := ""
		if len(data) > 0 {
			msg = fmt.Sprint(data[0])
		}
		done <- opResult{err: fmt.Errorf("wizard rejected the file: %s", msg)}
	})

	io.On(types.EventName("config"), func(data ...any) {
		var cfg any
		if len(data) > 0 {
			cfg = data[0]
		}
		done <- opResult{value: cfg}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return nil, fmt.Errorf("timed out waiting for the wizard's response")
		}
		return nil, fmt.Errorf("timed out while waiting for initial connection")
	case res := <-done:
		return res.value, res.err
	}
}
