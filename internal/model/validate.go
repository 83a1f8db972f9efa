package model

import (
	"fmt"
	"strings"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ValidateProject checks a Project for constraint violations.
// It returns a *ValidationError if any rules fail, or nil if the project is valid.
func ValidateProject(p *Project) error {
	var ve ValidationError

	// Name: required and at most 200 characters.
	name := strings.TrimSpace(p.Name)
	if name == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "name", Message: "is required"})
	} else if len([]rune(name)) > 200 {
		ve.Errors = append(ve.Errors, FieldError{Field: "name", Message: "must be 200 characters or fewer"})
	}

	// Status: must be a valid enum value (closed set).
	if !p.Status.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "status",
			Message: fmt.Sprintf("invalid value %q", p.Status),
		})
	}

	// Current gate index: never negative.
	if p.CurrentGateIndex < 0 {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "current_gate_index",
			Message: fmt.Sprintf("must not be negative, got %d", p.CurrentGateIndex),
		})
	}

	// Gate containers: statuses and decisions must stay inside the enum, and
	// an overridden gate must record who overrode it.
	for gateID, gs := range p.Gates {
		if gs == nil {
			continue
		}
		if !gs.GateStatus.IsValid() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   "gates." + gateID + ".gate_status",
				Message: fmt.Sprintf("invalid value %q", gs.GateStatus),
			})
		}
		if gs.Overridden && gs.OverrideBy == "" {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   "gates." + gateID + ".override_by",
				Message: "is required when overridden",
			})
		}
		for key, cp := range gs.Checkpoints {
			if cp != nil && !cp.Decision.IsValid() {
				ve.Errors = append(ve.Errors, FieldError{
					Field:   "gates." + gateID + ".checkpoints." + key + ".decision",
					Message: fmt.Sprintf("invalid value %q", cp.Decision),
				})
			}
		}
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
