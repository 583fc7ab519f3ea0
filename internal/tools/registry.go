// Package tools holds the static tool registry and the dispatcher the agent
// loop calls. Every tool returns a JSON string; failures are normalized into
// {"error": ...} payloads so the loop's control flow stays uniform.
package tools

import (
	"context"
	"sort"

	"github.com/goodfoods/goodfoods/internal/store"
)

// Tool is one entry in the static registry.
type Tool interface {
	Name() string
	// Schema maps argument names to type hints ("string", "number",
	// "boolean", "object") and is serialized into the planner prompt.
	Schema() map[string]string
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry is the fixed name -> tool table. Built once at startup around an
// explicit store handle; there is no dynamic tool discovery.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds the full GoodFoods toolset against db.
func NewRegistry(db *store.DB) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range []Tool{
		&SearchRestaurants{DB: db},
		&RecommendRestaurants{DB: db},
		&GetMenu{DB: db},
		&ListUpcomingEvents{DB: db},
		&LogFeedback{DB: db},
		&GetLoyaltyProfile{DB: db},
		&BookTable{DB: db},
		&TriggerFollowupSMS{},
		&SyntheticRestaurantInfo{},
	} {
		r.tools[t.Name()] = t
	}
	return r
}

// Get returns the named tool, or false when it is not registered.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Schemas returns name -> argument schema for every registered tool.
func (r *Registry) Schemas() map[string]map[string]string {
	out := make(map[string]map[string]string, len(r.tools))
	for n, t := range r.tools {
		out[n] = t.Schema()
	}
	return out
}
