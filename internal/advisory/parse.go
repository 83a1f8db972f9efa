package advisory

import (
	"regexp"
	"strings"

	"github.com/groblegark/gatekeep/internal/model"
)

// suggestionRe tolerates markdown emphasis and loose punctuation around the
// decision token, e.g. "Suggested decision:** Approve" or
// "**Suggested decision**: ReScope".
var suggestionRe = regexp.MustCompile(`(?i)suggested decision[*:\s]*\**\s*(Approve|Reject|ReScope|Pending)`)

// ParseSuggestedDecision extracts the decision token from free-form advisory
// markdown. The second return is false when no token is present.
func ParseSuggestedDecision(text string) (model.Decision, bool) {
	m := suggestionRe.FindStringSubmatch(text)
	if m == nil {
		return model.DecisionPending, false
	}
	switch {
	case strings.EqualFold(m[1], "Approve"):
		return model.DecisionApprove, true
	case strings.EqualFold(m[1], "Reject"):
		return model.DecisionReject, true
	case strings.EqualFold(m[1], "ReScope"):
		return model.DecisionReScope, true
	default:
		return model.DecisionPending, true
	}
}

// ClampSuggestion downgrades an Approve suggestion to ReScope when no
// artifact evidence exists for the checkpoint. This happens at the parse
// boundary so no caller ever sees an unevidenced Approve.
func ClampSuggestion(dec model.Decision, hasArtifact bool) model.Decision {
	if dec == model.DecisionApprove && !hasArtifact {
		return model.DecisionReScope
	}
	return dec
}
