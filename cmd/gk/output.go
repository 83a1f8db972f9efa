package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// decisionGlyph maps a decision to a one-character status bullet.
func decisionGlyph(d model.Decision) string {
	switch d {
	case model.DecisionApprove:
		return "●"
	case model.DecisionReject:
		return "✗"
	case model.DecisionReScope:
		return "◐"
	default:
		return "○"
	}
}

func printProjectTable(p *model.Project) {
	fmt.Printf("ID:          %s\n", p.ID)
	fmt.Printf("Name:        %s\n", p.Name)
	fmt.Printf("Status:      %s\n", p.Status)
	fmt.Printf("Gate Index:  %d\n", p.CurrentGateIndex)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
	if p.Owner != "" {
		fmt.Printf("Owner:       %s\n", p.Owner)
	}
	if p.CreatedBy != "" {
		fmt.Printf("Created By:  %s\n", p.CreatedBy)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Printf("Created At:  %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("Updated At:  %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func printProjectListTable(projects []*model.Project, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tGATE\tNAME\tOWNER")
	for _, p := range projects {
		name := p.Name
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			p.ID,
			p.Status,
			p.CurrentGateIndex,
			name,
			p.Owner,
		)
	}
	w.Flush()
	fmt.Printf("\n%d projects (%d total)\n", len(projects), total)
}

func printGateView(v *workflow.GateView) {
	fmt.Printf("%s %s (%s): %s", decisionGlyph(v.Status), v.GateID, v.GateName, v.Status)
	if v.Overridden {
		fmt.Printf(" [overridden by %s]", v.OverrideBy)
	}
	fmt.Println()
	if v.Overridden && v.OverrideReason != "" {
		fmt.Printf("  reason: %s\n", v.OverrideReason)
	}
	for _, cp := range v.Checkpoints {
		evidence := "no evidence"
		if cp.HasPayload {
			evidence = "evidence attached"
		}
		fmt.Printf("  %s %-30s %-8s %s", decisionGlyph(cp.Decision), cp.Checkpoint.Label, cp.Decision, evidence)
		if cp.DecidedBy != "" {
			fmt.Printf(" (by %s)", cp.DecidedBy)
		}
		fmt.Println()
	}
	if v.CanAdvance {
		fmt.Println("  ready to advance")
	}
}

func printProjectView(p *model.Project, gates []workflow.GateView) {
	printProjectTable(p)
	if len(gates) > 0 {
		fmt.Println()
		fmt.Println("Gates:")
		for i := range gates {
			marker := " "
			if i == p.CurrentGateIndex {
				marker = ">"
			}
			v := gates[i]
			fmt.Printf("%s %s %s (%s): %s\n", marker, decisionGlyph(v.Status), v.GateID, v.GateName, v.Status)
		}
	}
}

func printAuditTable(events []model.AuditEvent) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tWHO\tACTION\tREASON")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.TS.Format("2006-01-02 15:04:05"),
			e.Who,
			e.Action,
			e.Reason,
		)
	}
	w.Flush()
}

func printPlanTable(plan *model.Plan) {
	for i, g := range plan.Gates {
		fmt.Printf("%d. %s: %s\n", i, g.ID, g.Name)
		for _, cp := range g.Checkpoints {
			fmt.Printf("   - %s [%s] submit=%s review=%s\n", cp.Label, cp.ArtifactKey, cp.SubmitterRole, cp.ReviewerRole)
		}
	}
}
