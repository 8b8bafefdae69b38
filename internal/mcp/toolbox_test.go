package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

type fakeTool struct {
	name   string
	invoke func(ctx context.Context, raw json.RawMessage) (any, error)
	calls  int
}

func (f *fakeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: f.name, Description: "fake"}
}

func (f *fakeTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	f.calls++
	return f.invoke(ctx, raw)
}

func TestToolboxCallSuccessSerializesValue(t *testing.T) {
	tool := &fakeTool{name: "echo", invoke: func(context.Context, json.RawMessage) (any, error) {
		return map[string]any{"ok": true}, nil
	}}
	tb := NewToolbox(nil, tool)

	result := tb.Call(context.Background(), "echo", nil)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	require.JSONEq(t, `{"ok": true}`, result.Content[0].Text)
}

func TestToolboxCallUnknownToolIsFailureEnvelope(t *testing.T) {
	tool := &fakeTool{name: "echo", invoke: func(context.Context, json.RawMessage) (any, error) {
		return nil, nil
	}}
	tb := NewToolbox(nil, tool)

	result := tb.Call(context.Background(), "nonexistent_tool", json.RawMessage(`{}`))
	require.True(t, result.IsError)
	require.Equal(t, "Error: Unknown tool: nonexistent_tool", result.Content[0].Text)
	require.Zero(t, tool.calls, "no tool may run for an unknown name")
}

func TestToolboxCallErrorBecomesEnvelope(t *testing.T) {
	tool := &fakeTool{name: "boom", invoke: func(context.Context, json.RawMessage) (any, error) {
		return nil, errors.New("Failed to fetch post 42: unexpected status 500")
	}}
	tb := NewToolbox(nil, tool)

	result := tb.Call(context.Background(), "boom", nil)
	require.True(t, result.IsError)
	require.Equal(t, "Error: Failed to fetch post 42: unexpected status 500", result.Content[0].Text)
}

func TestToolboxCallRecoversPanic(t *testing.T) {
	tool := &fakeTool{name: "panics", invoke: func(context.Context, json.RawMessage) (any, error) {
		panic("nil map write")
	}}
	tb := NewToolbox(nil, tool)

	var result protocol.CallResult
	require.NotPanics(t, func() {
		result = tb.Call(context.Background(), "panics", nil)
	})
	require.True(t, result.IsError)
	require.Contains(t, result.Content[0].Text, "Error: internal failure in tool panics")
}

func TestToolboxCallStringResultPassedThrough(t *testing.T) {
	tool := &fakeTool{name: "text", invoke: func(context.Context, json.RawMessage) (any, error) {
		return "plain text", nil
	}}
	tb := NewToolbox(nil, tool)

	result := tb.Call(context.Background(), "text", nil)
	require.False(t, result.IsError)
	require.Equal(t, "plain text", result.Content[0].Text)
}

func TestToolboxDescribePreservesRegistrationOrder(t *testing.T) {
	mk := func(name string) *fakeTool {
		return &fakeTool{name: name, invoke: func(context.Context, json.RawMessage) (any, error) { return nil, nil }}
	}
	tb := NewToolbox(nil, mk("c"), mk("a"), mk("b"))

	descs := tb.Describe()
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.Name
	}
	require.Equal(t, []string{"c", "a", "b"}, names)
}
