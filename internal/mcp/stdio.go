package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

// StdioTransport serves newline-delimited JSON-RPC over a reader/writer
// pair, normally stdin/stdout. All logging goes to the side-channel logger;
// the writer carries protocol frames only.
type StdioTransport struct {
	reader *bufio.Reader
	writer io.Writer
	logger *logrus.Entry
}

// NewStdioTransport builds a transport over the given streams.
func NewStdioTransport(r io.Reader, w io.Writer, logger *logrus.Entry) *StdioTransport {
	return &StdioTransport{reader: bufio.NewReader(r), writer: w, logger: logger}
}

// Run reads requests until EOF and writes one response per request.
// Notifications (no id) are acknowledged silently.
func (t *StdioTransport) Run(ctx context.Context, server *Server) error {
	for {
		line, err := t.reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF && len(line) == 0 {
				return io.EOF
			}
			if len(line) == 0 {
				return fmt.Errorf("read message: %w", err)
			}
		}

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal(line, &req); err != nil {
			t.logger.WithError(err).Warn("dropping unparsable frame")
			if writeErr := t.write(protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}); writeErr != nil {
				return writeErr
			}
			continue
		}

		t.logger.WithFields(logrus.Fields{"method": req.Method, "id": req.ID}).Debug("frame received")

		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := t.write(resp); err != nil {
			return err
		}
	}
}

func (t *StdioTransport) write(resp protocol.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	data = append(data, '\n')
	if _, err := t.writer.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
