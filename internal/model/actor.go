package model

import "strings"

// Actor identifies who is performing an operation. It is supplied explicitly
// by the caller on every store and engine operation; nothing is read from
// ambient state.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// RoleAuthority is the role that may override gates, clear overrides, and
// advance projects, and that supersedes submitter/reviewer role checks.
const RoleAuthority = "ChiefAIOfficer"

// IsAuthority reports whether the role carries override authority.
func IsAuthority(role string) bool {
	return role == RoleAuthority
}

// CanReview reports whether the role may record decisions on the checkpoint.
func CanReview(cp *Checkpoint, role string) bool {
	req := strings.TrimSpace(cp.ReviewerRole)
	return role == req || IsAuthority(role)
}

// CanSubmit reports whether the role may submit payloads for the checkpoint.
func CanSubmit(cp *Checkpoint, role string) bool {
	req := strings.TrimSpace(cp.SubmitterRole)
	return role == req || IsAuthority(role)
}
