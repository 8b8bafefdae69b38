package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool. Invoke returns the value
// to serialize into the call result, or an error describing the failure.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (any, error)
}

// Toolbox stores and dispatches tools by name. Registration order is
// preserved so the advertised catalogue is stable.
type Toolbox struct {
	order  []string
	tools  map[string]Tool
	logger *logrus.Entry
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(logger *logrus.Entry, tools ...Tool) *Toolbox {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	tb := &Toolbox{tools: make(map[string]Tool, len(tools)), logger: logger}
	for _, t := range tools {
		desc := t.Descriptor()
		if _, exists := tb.tools[desc.Name]; !exists {
			tb.order = append(tb.order, desc.Name)
		}
		tb.tools[desc.Name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool and wraps its outcome into a call result.
// Every failure, including panics and unknown names, becomes an isError
// result; nothing escapes this boundary.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (result protocol.CallResult) {
	defer func() {
		if r := recover(); r != nil {
			tb.logger.WithFields(logrus.Fields{"tool": name, "panic": r}).Error("tool call panicked")
			result = protocol.ErrorResult(fmt.Sprintf("Error: internal failure in tool %s: %v", name, r))
		}
	}()

	tb.logger.WithFields(logrus.Fields{
		"tool":      name,
		"call_id":   uuid.NewString(),
		"arguments": string(args),
	}).Info("dispatching tool call")

	tool, ok := tb.tools[name]
	if !ok {
		return protocol.ErrorResult(fmt.Sprintf("Error: Unknown tool: %s", name))
	}

	value, err := tool.Invoke(ctx, args)
	if err != nil {
		return protocol.ErrorResult(fmt.Sprintf("Error: %v", err))
	}

	text, err := serialize(value)
	if err != nil {
		return protocol.ErrorResult(fmt.Sprintf("Error: encode result for %s: %v", name, err))
	}
	return protocol.TextResult(text)
}

func serialize(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}
