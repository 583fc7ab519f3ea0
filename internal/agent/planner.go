package agent

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/goodfoods/goodfoods/internal/core"
)

// defaultPlannerWindow bounds the transcript slice the planner sees. The cap
// trades away slot information volunteered more than 20 messages back for
// bounded cost and latency; a known limitation, configurable per Planner.
const defaultPlannerWindow = 20

// Planner runs the first-pass extraction: one model call over a bounded
// transcript window, best-effort JSON out.
type Planner struct {
	Client core.LLMClient
	// Executor supplies the registry names used to filter hallucinated
	// tool recommendations.
	Executor core.ToolExecutor
	// Window overrides defaultPlannerWindow when > 0.
	Window int
	// MaxTokens caps the planner completion. 0 means 500.
	MaxTokens int
}

// fallbackPlan is returned on any collaborator or parse failure. Hard
// fallback, never a retry: the turn proceeds without planner guidance.
func fallbackPlan(reason string) core.Plan {
	return core.Plan{
		Intent:           "other",
		Slots:            map[string]any{},
		RecommendedTools: []string{},
		Reasoning:        reason,
	}
}

// stripFence removes at most one fenced code block wrapper (```json or bare
// ```) from the model reply. Anything beyond that one wrapper is the
// parser's problem; the output format is not contractually guaranteed.
func stripFence(raw string) string {
	if i := strings.Index(raw, "```json"); i >= 0 {
		rest := raw[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(raw, "```"); i >= 0 {
		rest := raw[i+len("```"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(raw)
}

// GeneratePlan produces a fresh Plan for this turn. The transcript is
// windowed to the last Window messages and serialized as the user turn.
// RecommendedTools is filtered to registered names, preserving order, so a
// hallucinated tool name never reaches dispatch.
func (p *Planner) GeneratePlan(ctx context.Context, transcript []core.Message) core.Plan {
	window := p.Window
	if window <= 0 {
		window = defaultPlannerWindow
	}
	snapshot := transcript
	if len(snapshot) > window {
		snapshot = snapshot[len(snapshot)-window:]
	}
	snapJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("[PLANNER] transcript serialization failed: %v", err)
		return fallbackPlan("planner_error")
	}

	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 500
	}
	plannerMsgs := []core.Message{
		{Role: "system", Content: plannerPrompt},
		{Role: "user", Content: string(snapJSON)},
	}

	plan := fallbackPlan("planner_error")
	raw, err := p.Client.Complete(ctx, plannerMsgs, maxTokens)
	if err != nil {
		log.Printf("[PLANNER] completion failed: %v", err)
	} else {
		var parsed core.Plan
		if uerr := json.Unmarshal([]byte(stripFence(raw)), &parsed); uerr != nil {
			log.Printf("[PLANNER] parse failed: %v", uerr)
		} else {
			plan = parsed
		}
	}

	if plan.Slots == nil {
		plan.Slots = map[string]any{}
	}
	filtered := make([]string, 0, len(plan.RecommendedTools))
	for _, name := range plan.RecommendedTools {
		if p.Executor != nil && p.Executor.Has(name) {
			filtered = append(filtered, name)
		}
	}
	plan.RecommendedTools = filtered
	return plan
}
