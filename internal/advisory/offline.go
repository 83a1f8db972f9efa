package advisory

import "context"

// Offline is a Suggester that returns the deterministic fallback text.
// Used when no LLM endpoint is configured.
type Offline struct{}

func (Offline) Suggest(_ context.Context, req Request) (string, error) {
	return offlineText(req.HasArtifact), nil
}

func offlineText(hasArtifact bool) string {
	if hasArtifact {
		return `**Summary risk posture:** Amber — evidence submitted, review outstanding.
**Top 3 immediate actions:**
1) Review the submitted artifact against the gate's acceptance criteria.
2) Log residual risks in the Risk Register with owners and due dates.
3) Schedule a cross-functional review with Governance and Security.
**Evidence to collect:** data lineage, consent proof, bias test results.
**Stakeholders:** Data Privacy, Security, Domain SME, Product Owner.
**Go/No-Go:** hold until the submitted evidence passes review.
Suggested decision: Pending`
	}
	return `**Summary risk posture:** Amber — missing one or more required artifacts.
**Top 3 immediate actions:**
1) Complete any missing artifacts for this gate.
2) Log residual risks in the Risk Register with owners and due dates.
3) Schedule a cross-functional review with Governance and Security.
**Evidence to collect:** data lineage, consent proof, bias test results.
**Stakeholders:** Data Privacy, Security, Domain SME, Product Owner.
**Go/No-Go:** No-Go until required artifacts are submitted and reviewed.
Suggested decision: ReScope`
}
