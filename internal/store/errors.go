package store

import "errors"

var (
	// ErrUnknownProject is returned when an operation targets a project id
	// that does not exist. Operations never create a project implicitly.
	ErrUnknownProject = errors.New("unknown project")

	// ErrInvalidDecision is returned on an attempted write of a decision
	// outside the four-member enumeration. The store is left unchanged.
	ErrInvalidDecision = errors.New("invalid decision")

	// ErrInvalidStatus is returned on an attempted write of a project status
	// outside the enumeration.
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrGateOverridden is returned when a checkpoint decision write targets
	// a gate that is currently overridden. The write is not applied; callers
	// treat this as "not applied" rather than a hard failure.
	ErrGateOverridden = errors.New("gate is overridden; decision not applied")

	// ErrDuplicateProject is returned when CreateProject is called with an
	// id that already exists.
	ErrDuplicateProject = errors.New("project already exists")
)
