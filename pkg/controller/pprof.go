package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux builds a mux exposing the net/http/pprof handlers at its root,
// meant to be mounted under a debug-only path on the main server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
