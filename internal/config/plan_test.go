package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/groblegark/gatekeep/internal/model"
)

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	if len(plan.Gates) != 5 {
		t.Fatalf("got %d gates, want 5", len(plan.Gates))
	}
	for _, g := range plan.Gates {
		for _, cp := range g.Checkpoints {
			if cp.ArtifactKey == "" {
				t.Errorf("gate %s checkpoint %q has empty artifact key", g.ID, cp.Label)
			}
			if cp.InitialStatus != model.DecisionPending {
				t.Errorf("gate %s checkpoint %q initial status = %q, want Pending", g.ID, cp.Label, cp.InitialStatus)
			}
		}
	}
	if got := plan.GateByID("G2"); got == nil || got.Name != "Data Readiness" {
		t.Errorf("GateByID(G2) = %+v", got)
	}
}

func TestLoadPlanEmptyPath(t *testing.T) {
	plan, err := LoadPlan("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Gates) == 0 {
		t.Fatal("empty path should return the built-in plan")
	}
}

func TestLoadPlanFromFile(t *testing.T) {
	src := `
[[gates]]
gate_id = "G1"
gate_name = "Intake"

  [[gates.checkpoints]]
  checkpoint = "Use case definition"
  artifact = "Use Case Brief"
  submitter_role = "ProductOwner"
  reviewer_role = "DomainSME"

  [[gates.checkpoints]]
  checkpoint = "Duplicate row"
  artifact = "Use Case Brief"
  submitter_role = "ProductOwner"
  reviewer_role = "DomainSME"

  [[gates.checkpoints]]
  checkpoint = "Risk screening"
  submitter_role = "ProductOwner"
  reviewer_role = "DataPrivacyOfficer"
`
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Gates) != 1 {
		t.Fatalf("got %d gates, want 1", len(plan.Gates))
	}
	cps := plan.Gates[0].Checkpoints
	if len(cps) != 2 {
		t.Fatalf("got %d checkpoints, want 2 (duplicate key dropped)", len(cps))
	}
	if cps[0].ArtifactKey != "use-case-brief" {
		t.Errorf("first key = %q, want %q", cps[0].ArtifactKey, "use-case-brief")
	}
	// No artifact label: key falls back to the checkpoint label.
	if cps[1].ArtifactKey != "risk-screening" {
		t.Errorf("second key = %q, want %q", cps[1].ArtifactKey, "risk-screening")
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	if _, err := LoadPlan(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing plan file")
	}
}

func TestLoadPlanNoGates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlan(path); err == nil {
		t.Fatal("expected error for plan with no gates")
	}
}
