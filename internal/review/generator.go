// Package review wraps the external text-generation service used to
// produce investment review write-ups. The adapter makes exactly one
// attempt per invocation; retry policy, if any, belongs to the caller.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when the API credential is absent from the
// process environment. Callers must treat this differently from an
// upstream failure: it is a deployment problem, not a transient one.
var ErrNotConfigured = errors.New("review: DASHSCOPE_API_KEY is not set")

// Input carries the journal fields the prompt is built from.
type Input struct {
	Date             string
	Asset            string
	Amount           string
	Price            string
	Strategy         string
	Reasons          string
	Risks            string
	ExpectedReturn   string
	ExitPlan         string
	MarketConditions string
	EmotionalState   string
}

// Generator produces review text for a journal entry.
type Generator interface {
	Generate(ctx context.Context, in Input) (string, error)
}

// buildPrompt renders the journal fields into the instruction sent to the
// model. The generated text is returned to the caller verbatim.
func buildPrompt(in Input) string {
	var b strings.Builder
	b.WriteString("Review the following investment journal entry and give detailed retrospective advice:\n")
	fmt.Fprintf(&b, "Asset: %s\n", in.Asset)
	fmt.Fprintf(&b, "Amount: %s\n", in.Amount)
	fmt.Fprintf(&b, "Price: %s\n", in.Price)
	fmt.Fprintf(&b, "Strategy: %s\n", in.Strategy)
	fmt.Fprintf(&b, "Reasons: %s\n", in.Reasons)
	fmt.Fprintf(&b, "Risks: %s\n", in.Risks)
	fmt.Fprintf(&b, "Expected return: %s\n", in.ExpectedReturn)
	fmt.Fprintf(&b, "Exit plan: %s\n", in.ExitPlan)
	fmt.Fprintf(&b, "Market conditions: %s\n", in.MarketConditions)
	fmt.Fprintf(&b, "Emotional state: %s", in.EmotionalState)
	return b.String()
}
