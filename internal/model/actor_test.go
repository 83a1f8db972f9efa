package model

import "testing"

func TestRoleChecks(t *testing.T) {
	cp := &Checkpoint{
		ArtifactKey:   "model-card",
		SubmitterRole: "MLEngineer",
		ReviewerRole:  "GovernanceReviewer",
	}

	for _, tc := range []struct {
		name string
		role string
		review, submit bool
	}{
		{"reviewer role", "GovernanceReviewer", true, false},
		{"submitter role", "MLEngineer", false, true},
		{"authority supersedes both", RoleAuthority, true, true},
		{"unrelated role", "Viewer", false, false},
		{"empty role", "", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReview(cp, tc.role); got != tc.review {
				t.Errorf("CanReview(%q) = %v, want %v", tc.role, got, tc.review)
			}
			if got := CanSubmit(cp, tc.role); got != tc.submit {
				t.Errorf("CanSubmit(%q) = %v, want %v", tc.role, got, tc.submit)
			}
		})
	}
}

func TestRoleChecks_TrimsRequiredRole(t *testing.T) {
	cp := &Checkpoint{ReviewerRole: " GovernanceReviewer ", SubmitterRole: " MLEngineer "}
	if !CanReview(cp, "GovernanceReviewer") {
		t.Error("whitespace in the required role should be ignored")
	}
	if !CanSubmit(cp, "MLEngineer") {
		t.Error("whitespace in the required role should be ignored")
	}
}
