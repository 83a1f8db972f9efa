package model

// Decision is the closed set of checkpoint review outcomes. It doubles as
// the aggregate gate status, since a gate's status is always one of the same
// four values.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
	DecisionReScope Decision = "ReScope"
	DecisionPending Decision = "Pending"
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	return string(d)
}

// IsValid checks whether the decision is a known value.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionReScope, DecisionPending:
		return true
	}
	return false
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ONGOING"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// String returns the string representation of the project status.
func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid checks whether the project status is a known value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectOngoing, ProjectCompleted:
		return true
	}
	return false
}
