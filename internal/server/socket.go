package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/amps-tools/ampswizard/internal/paramfile"
	"github.com/amps-tools/ampswizard/internal/run"
)

// Socket.io event names shared with the browser wizard and the CLI pusher.
const (
	wizardNamespace = "/wizard"

	eventLoad      = "load"       // raw text in
	eventSet       = "set"        // keyword/value map in
	eventExport    = "export"     // no payload
	eventConfig    = "config"     // hydrated configuration out
	eventParamFile = "param_file" // canonical text out
	eventRejected  = "rejected"   // sanity-gate message out
)

// socketHandler mounts the live-session namespace. Every connected socket
// owns an independent run configuration; its event handlers run the same
// synchronous pipeline the HTTP API uses.
func (s *Server) socketHandler() http.Handler {
	io := socket.NewServer(nil, nil)

	io.Of(wizardNamespace, nil).On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		sess := newSession(s)
		s.logger.Info("Wizard session connected.", "sid", client.Id())

		client.On(eventLoad, func(args ...any) {
			text := stringArg(args)
			if err := paramfile.SanityCheck(text); err != nil {
				client.Emit(eventRejected, err.Error())
				return
			}
			cfg := sess.load(paramfile.Parse(text))
			client.Emit(eventConfig, cfg)
		})

		client.On(eventSet, func(args ...any) {
			kv := mapArg(args)
			if len(kv) == 0 {
				return
			}
			cfg := sess.load(keywordLines(kv))
			client.Emit(eventConfig, cfg)
		})

		client.On(eventExport, func(...any) {
			client.Emit(eventParamFile, sess.export())
		})

		client.On("disconnect", func(...any) {
			s.logger.Debug("Wizard session disconnected.", "sid", client.Id())
		})
	})

	return io.ServeHandler(nil)
}

// session is one live wizard session: a configuration plus the mutex that
// serializes event handlers touching it.
type session struct {
	server *Server
	mu     sync.Mutex
	cfg    *run.Config
}

func newSession(s *Server) *session {
	return &session{server: s, cfg: run.NewConfig()}
}

// load hydrates the session configuration from a keyword map and returns a
// snapshot safe to emit.
func (sess *session) load(m *paramfile.KeywordMap) *run.Config {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.server.hydrator.Hydrate(m, sess.cfg)
	return sess.cfg.Clone()
}

func (sess *session) export() string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return paramfile.Serialize(sess.cfg)
}

// stringArg extracts a text payload from a socket.io event.
func stringArg(args []any) string {
	if len(args) == 0 {
		return ""
	}
	if s, ok := args[0].(string); ok {
		return s
	}
	return fmt.Sprint(args[0])
}

// mapArg extracts a keyword/value payload, tolerating the loose typing the
// socket.io parser produces.
func mapArg(args []any) map[string]string {
	if len(args) == 0 {
		return nil
	}
	raw, ok := args[0].(map[string]any)
	if !ok {
		return nil
	}
	kv := make(map[string]string, len(raw))
	for k, v := range raw {
		kv[k] = fmt.Sprint(v)
	}
	return kv
}
