package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/goodfoods/goodfoods/internal/core"
)

// Loop composes the turn pipeline: sanitize -> plan -> first completion ->
// optional tool dispatch -> second completion. Stateless across calls; the
// caller owns the append-only transcript and renders the returned content.
type Loop struct {
	Client    core.LLMClient
	Executor  core.ToolExecutor
	Planner   *Planner
	// MaxTokens caps the two orchestrator completions. 0 means 1024.
	MaxTokens int
}

// Run executes one turn over the given transcript. Every path returns a
// content string plus metadata; collaborator failures are recovered locally
// and never surface as an error to the caller.
func (l *Loop) Run(ctx context.Context, transcript []core.Message) core.TurnResult {
	messages := SanitizeHistory(transcript)

	plan := l.Planner.GeneratePlan(ctx, messages)
	directive := plannerDirective(plan.Intent, plan.Slots, plan.RecommendedTools, plan.Reasoning)

	orchestratorMsgs := make([]core.Message, 0, len(messages)+4)
	orchestratorMsgs = append(orchestratorMsgs,
		core.Message{Role: "system", Content: systemPrompt},
		core.Message{Role: "system", Content: directive},
	)
	orchestratorMsgs = append(orchestratorMsgs, messages...)

	maxTokens := l.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	assistantText, err := l.Client.Complete(ctx, orchestratorMsgs, maxTokens)
	if err != nil {
		log.Printf("[AGENT] first completion failed: %v", err)
		return core.TurnResult{
			Content:   fmt.Sprintf("Model API error: %v", err),
			Plan:      plan,
			UsedTools: []string{},
		}
	}

	inv, found := DetectToolCall(assistantText)
	if !found {
		return core.TurnResult{Content: assistantText, Plan: plan, UsedTools: []string{}}
	}

	log.Printf("[AGENT] dispatching tool: %s", inv.Name)
	toolOutput := l.Executor.Execute(ctx, inv.Name, inv.Args)

	// Extend the transcript with the tool-call/tool-result pair so the
	// second completion sees a structurally valid exchange.
	callID := "call_" + uuid.NewString()
	argsJSON, _ := json.Marshal(inv.Args)
	call := core.ToolCall{ID: callID, Type: "function"}
	call.Function.Name = inv.Name
	call.Function.Arguments = string(argsJSON)

	orchestratorMsgs = append(orchestratorMsgs,
		core.Message{Role: "assistant", Content: assistantText, ToolCalls: []core.ToolCall{call}},
		core.Message{Role: "tool", Content: toolOutput, ToolCallID: callID, Name: inv.Name},
	)

	finalAnswer, err := l.Client.Complete(ctx, orchestratorMsgs, maxTokens)
	if err != nil {
		log.Printf("[AGENT] second completion failed, using templated summary: %v", err)
		finalAnswer = fmt.Sprintf("Executed tool `%s`. Result: %s", inv.Name, toolOutput)
	}

	return core.TurnResult{Content: finalAnswer, Plan: plan, UsedTools: []string{inv.Name}}
}
