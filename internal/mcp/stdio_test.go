package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

func runStdio(t *testing.T, input string) []protocol.Response {
	t.Helper()
	var out bytes.Buffer
	transport := NewStdioTransport(strings.NewReader(input), &out, discardLogger())

	if err := transport.Run(context.Background(), testServer()); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}

	var responses []protocol.Response
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp protocol.Response
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("decode frame %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestStdioRespondsPerRequest(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n"

	responses := runStdio(t, input)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	for _, resp := range responses {
		if resp.Error != nil {
			t.Fatalf("unexpected error: %+v", resp.Error)
		}
	}
}

func TestStdioSkipsNotifications(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"

	responses := runStdio(t, input)
	if len(responses) != 1 {
		t.Fatalf("notifications must not be answered; got %d responses", len(responses))
	}
}

func TestStdioSurvivesUnparsableFrame(t *testing.T) {
	input := "{garbage\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"

	responses := runStdio(t, input)
	if len(responses) != 2 {
		t.Fatalf("expected parse-error response plus ping response, got %d", len(responses))
	}
	if responses[0].Error == nil || responses[0].Error.Code != -32700 {
		t.Fatalf("expected parse error first, got %+v", responses[0].Error)
	}
	if responses[1].Error != nil {
		t.Fatalf("ping after bad frame failed: %+v", responses[1].Error)
	}
}
