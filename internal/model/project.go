package model

import "time"

// Project is the core governance record: one AI project moving through the
// ordered gate plan.
type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	Owner            string        `json:"owner,omitempty"`
	Status           ProjectStatus `json:"status"`
	CurrentGateIndex int           `json:"current_gate_index"`
	CreatedAt        time.Time     `json:"created_at"`
	CreatedBy        string        `json:"created_by,omitempty"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Gates maps gate id to per-gate review state. Populated lazily: a gate
	// gets a container on its first decision or payload write.
	Gates map[string]*GateState `json:"gates"`
}

// GateState holds the review state of one (project, gate) pair.
type GateState struct {
	Checkpoints map[string]*CheckpointState `json:"checkpoints"`

	// GateStatus is the last computed-or-overridden aggregate status. While
	// Overridden is true it is pinned to the override value and must not be
	// recomputed from checkpoint decisions.
	GateStatus     Decision     `json:"gate_status"`
	Overridden     bool         `json:"overridden"`
	OverrideBy     string       `json:"override_by,omitempty"`
	OverrideReason string       `json:"override_reason,omitempty"`
	Audit          []AuditEvent `json:"audit"`
}

// CheckpointState holds the review state of one (gate, artifact key) pair.
type CheckpointState struct {
	Decision  Decision   `json:"decision"`
	DecidedBy string     `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`

	Payload   *Payload   `json:"payload,omitempty"`
	UpdatedBy string     `json:"updated_by,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Payload is the evidence attached to a checkpoint. The same artifact key
// may appear in several gates; its payload is deliberately shared across
// them (see store.RecordCheckpointPayload).
type Payload struct {
	Description  string `json:"description,omitempty"`
	EvidenceLink string `json:"evidence_link,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AuditEvent is one entry in a gate's append-only audit trail.
type AuditEvent struct {
	TS     time.Time `json:"ts"`
	Who    string    `json:"who"`
	Action string    `json:"action"`
	Reason string    `json:"reason,omitempty"`
}

// NewGateState returns an empty gate container with defaults.
func NewGateState() *GateState {
	return &GateState{
		Checkpoints: make(map[string]*CheckpointState),
		GateStatus:  DecisionPending,
	}
}

// Checkpoint returns the checkpoint container for key, creating it with a
// Pending decision if absent.
func (g *GateState) Checkpoint(key string) *CheckpointState {
	if g.Checkpoints == nil {
		g.Checkpoints = make(map[string]*CheckpointState)
	}
	cp, ok := g.Checkpoints[key]
	if !ok {
		cp = &CheckpointState{Decision: DecisionPending}
		g.Checkpoints[key] = cp
	}
	return cp
}

// Gate returns the gate container for gateID, creating it with defaults if
// absent.
func (p *Project) Gate(gateID string) *GateState {
	if p.Gates == nil {
		p.Gates = make(map[string]*GateState)
	}
	g, ok := p.Gates[gateID]
	if !ok {
		g = NewGateState()
		p.Gates[gateID] = g
	}
	return g
}
