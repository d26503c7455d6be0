// Package server runs the wizard service the browser front end talks to: a
// JSON HTTP API for one-off parse/serialize calls and a socket.io namespace
// for live wizard sessions. All state is per-session run configurations; the
// parse pipeline itself stays synchronous and single-threaded per session.
package server
