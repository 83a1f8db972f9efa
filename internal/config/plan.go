package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/groblegark/gatekeep/internal/model"
)

// LoadPlan reads the gate plan from a TOML file. An empty path returns the
// built-in plan. Normalization (artifact key derivation, duplicate dropping,
// default decisions) happens here so callers always see a valid plan.
func LoadPlan(path string) (*model.Plan, error) {
	if path == "" {
		return DefaultPlan(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gate plan: %w", err)
	}
	var plan model.Plan
	if err := toml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse gate plan %s: %w", path, err)
	}
	plan.Normalize()
	if len(plan.Gates) == 0 {
		return nil, fmt.Errorf("gate plan %s defines no gates", path)
	}
	return &plan, nil
}

// DefaultPlan is the standard AI delivery lifecycle used when no plan file
// is configured.
func DefaultPlan() *model.Plan {
	plan := &model.Plan{
		Gates: []model.Gate{
			{
				ID:   "G1",
				Name: "Intake",
				Checkpoints: []model.Checkpoint{
					{Label: "Use case definition", Artifact: "Use Case Brief", SubmitterRole: "ProductOwner", ReviewerRole: "DomainSME"},
					{Label: "Initial risk screening", Artifact: "Risk Screening Form", SubmitterRole: "ProductOwner", ReviewerRole: "DataPrivacyOfficer"},
				},
			},
			{
				ID:   "G2",
				Name: "Data Readiness",
				Checkpoints: []model.Checkpoint{
					{Label: "Data sourcing review", Artifact: "Data Inventory", SubmitterRole: "DataScienceLead", ReviewerRole: "DataPrivacyOfficer"},
					{Label: "Privacy impact assessment", Artifact: "DPIA Report", SubmitterRole: "DataPrivacyOfficer", ReviewerRole: "ChiefAIOfficer"},
				},
			},
			{
				ID:   "G3",
				Name: "Model Development",
				Checkpoints: []model.Checkpoint{
					{Label: "Model design review", Artifact: "Model Card", SubmitterRole: "DataScienceLead", ReviewerRole: "DomainSME"},
					{Label: "Security assessment", Artifact: "Security Assessment", SubmitterRole: "SecurityLead", ReviewerRole: "ChiefAIOfficer"},
				},
			},
			{
				ID:   "G4",
				Name: "Validation",
				Checkpoints: []model.Checkpoint{
					{Label: "Performance evaluation", Artifact: "Evaluation Report", SubmitterRole: "DataScienceLead", ReviewerRole: "DomainSME"},
					{Label: "Bias and fairness review", Artifact: "Fairness Audit", SubmitterRole: "DataScienceLead", ReviewerRole: "DataPrivacyOfficer"},
				},
			},
			{
				ID:   "G5",
				Name: "Deployment",
				Checkpoints: []model.Checkpoint{
					{Label: "Deployment readiness", Artifact: "Deployment Runbook", SubmitterRole: "DataScienceLead", ReviewerRole: "SecurityLead"},
					{Label: "Monitoring plan sign-off", Artifact: "Monitoring Plan", SubmitterRole: "DataScienceLead", ReviewerRole: "ChiefAIOfficer"},
				},
			},
		},
	}
	plan.Normalize()
	return plan
}
