// Package advisory produces non-binding decision suggestions for gate
// checkpoints. Suggestions come from an OpenAI-compatible LLM when one is
// configured, with a deterministic offline fallback otherwise. Whatever the
// source, the suggested decision is clamped before it reaches a reviewer:
// an Approve with no artifact evidence is never offered.
package advisory

import (
	"context"
	"os"
	"strings"

	"github.com/groblegark/gatekeep/internal/model"
)

// Request carries the checkpoint context a suggestion is built from.
type Request struct {
	Project     *model.Project
	Gate        *model.Gate
	Checkpoint  *model.Checkpoint
	HasArtifact bool
	Payload     *model.Payload
	PolicyNotes string
}

// Suggestion is the parsed, clamped advisory output.
type Suggestion struct {
	Text     string         `json:"text"`
	Decision model.Decision `json:"decision"`
	Fallback bool           `json:"fallback"` // true when the offline text was used
}

// Suggester proposes a decision for a checkpoint. Implementations return
// markdown containing a "Suggested decision: <value>" line plus rationale.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (string, error)
}

// Advise runs the suggester and turns its output into a clamped Suggestion.
// A failed or absent suggester degrades to the offline fallback; Advise
// never returns an error to the reviewer flow.
func Advise(ctx context.Context, s Suggester, req Request) Suggestion {
	fallback := false
	var text string
	if s == nil {
		fallback = true
	} else {
		out, err := s.Suggest(ctx, req)
		if err != nil || strings.TrimSpace(out) == "" {
			fallback = true
		} else {
			text = out
		}
	}
	if fallback {
		text = offlineText(req.HasArtifact)
	}

	dec, ok := ParseSuggestedDecision(text)
	if !ok {
		dec = model.DecisionPending
	}
	dec = ClampSuggestion(dec, req.HasArtifact)

	return Suggestion{Text: text, Decision: dec, Fallback: fallback}
}

// LoadPolicyNotes reads the organizational policy notes file. A missing or
// unconfigured file yields empty notes, not an error.
func LoadPolicyNotes(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
