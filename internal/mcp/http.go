package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

// NewHTTPHandler builds the HTTP surface for an MCP server: JSON-RPC via
// POST on the root path plus a /health endpoint.
func NewHTTPHandler(server *Server, logger *logrus.Entry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp, err := server.Handle(r.Context(), req)
		if err != nil {
			logger.WithError(err).Error("request handling failed")
			writeJSON(w, WriteError(req.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	})

	return mux
}

// NewHTTPServer wraps the handler in a server with sane timeouts. Callers
// own ListenAndServe and Shutdown.
func NewHTTPServer(server *Server, addr string, logger *logrus.Entry) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(server, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
