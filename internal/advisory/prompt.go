package advisory

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a pragmatic AI governance coach."

// buildPrompt renders the checkpoint context into the user prompt. The
// output format instruction pins the "Suggested decision:" line the parser
// depends on.
func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an AI Governance Assistant. Provide actionable next steps that align with ethical AI principles.\n")
	b.WriteString("Consider fairness, privacy, safety, transparency, and accountability.\n")
	b.WriteString("If key artifacts are missing, recommend how to create them.\n\n")

	if req.PolicyNotes != "" {
		b.WriteString("Organizational policy notes:\n")
		b.WriteString(req.PolicyNotes)
		b.WriteString("\n\n")
	}

	b.WriteString("Project context:\n")
	if req.Project != nil {
		fmt.Fprintf(&b, "Project: %s\n", req.Project.Name)
		if req.Project.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", req.Project.Description)
		}
		fmt.Fprintf(&b, "Status: %s\n", req.Project.Status)
		fmt.Fprintf(&b, "Current gate index: %d\n", req.Project.CurrentGateIndex)
	}
	if req.Gate != nil {
		fmt.Fprintf(&b, "Gate: %s (%s)\n", req.Gate.ID, req.Gate.Name)
	}
	if req.Checkpoint != nil {
		fmt.Fprintf(&b, "Checkpoint: %s\n", req.Checkpoint.Label)
		if req.Checkpoint.Artifact != "" {
			fmt.Fprintf(&b, "Required artifact: %s\n", req.Checkpoint.Artifact)
		}
	}
	fmt.Fprintf(&b, "Artifact evidence present: %t\n", req.HasArtifact)
	if req.Payload != nil {
		fmt.Fprintf(&b, "Submitted evidence: %s", req.Payload.Description)
		if req.Payload.EvidenceLink != "" {
			fmt.Fprintf(&b, " (%s)", req.Payload.EvidenceLink)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nOutput format (markdown):\n")
	b.WriteString("- Summary risk posture\n")
	b.WriteString("- Top 3 immediate actions (short, imperative)\n")
	b.WriteString("- Evidence to collect\n")
	b.WriteString("- Stakeholders to engage\n")
	b.WriteString("- A final line of the form \"Suggested decision: <Approve|Reject|ReScope|Pending>\"\n")

	return b.String()
}
