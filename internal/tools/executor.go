package tools

import (
	"context"
	"encoding/json"
	"log"

	"github.com/goodfoods/goodfoods/internal/core"
)

// Executor dispatches parsed invocations against a Registry. Every dispatch
// yields a content string: unknown tools, argument validation failures, and
// storage errors all become structured {"error": ...} payloads that the next
// model turn summarizes for the user. Nothing propagates as a Go error.
type Executor struct {
	Registry *Registry
}

// Execute runs the named tool with args. Each successful mutating call is
// one atomic unit; nothing here rolls back on later unrelated failures.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) string {
	t, ok := e.Registry.Get(name)
	if !ok {
		log.Printf("[TOOLS] unknown tool requested: %s", name)
		return errPayload("Unknown tool: " + name)
	}
	if args == nil {
		args = map[string]any{}
	}
	out, err := t.Execute(ctx, args)
	if err != nil {
		log.Printf("[TOOLS] %s failed: %v", name, err)
		return errPayload(err.Error())
	}
	return out
}

// Has reports whether name is in the registry.
func (e *Executor) Has(name string) bool {
	return e.Registry.Has(name)
}

// Names returns the registered tool names.
func (e *Executor) Names() []string {
	return e.Registry.Names()
}

func errPayload(msg string) string {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}

var _ core.ToolExecutor = (*Executor)(nil)
