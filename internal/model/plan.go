package model

import "strings"

// Checkpoint is one required artifact/review unit within a gate, as declared
// by the gate plan. Immutable for the life of a process.
type Checkpoint struct {
	Label         string   `json:"checkpoint" toml:"checkpoint"`
	Artifact      string   `json:"artifact" toml:"artifact"`
	ArtifactKey   string   `json:"artifact_key" toml:"artifact_key"`
	SubmitterRole string   `json:"submitter_role" toml:"submitter_role"`
	ReviewerRole  string   `json:"reviewer_role" toml:"reviewer_role"`
	InitialStatus Decision `json:"initial_status,omitempty" toml:"initial_status"`
}

// Gate is one ordered governance stage with its checkpoints.
type Gate struct {
	ID          string       `json:"gate_id" toml:"gate_id"`
	Name        string       `json:"gate_name" toml:"gate_name"`
	Checkpoints []Checkpoint `json:"checkpoints" toml:"checkpoints"`
}

// Plan is the ordered list of gates a project passes through.
type Plan struct {
	Gates []Gate `json:"gates" toml:"gates"`
}

// GateByID returns the gate with the given id, or nil.
func (p *Plan) GateByID(id string) *Gate {
	for i := range p.Gates {
		if p.Gates[i].ID == id {
			return &p.Gates[i]
		}
	}
	return nil
}

// GateIndex returns the position of the gate in the plan, or -1.
func (p *Plan) GateIndex(id string) int {
	for i := range p.Gates {
		if p.Gates[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxGateIndex is the index of the last gate; -1 for an empty plan.
func (p *Plan) MaxGateIndex() int {
	return len(p.Gates) - 1
}

// CheckpointByKey returns the checkpoint with the given artifact key, or nil.
func (g *Gate) CheckpointByKey(key string) *Checkpoint {
	for i := range g.Checkpoints {
		if g.Checkpoints[i].ArtifactKey == key {
			return &g.Checkpoints[i]
		}
	}
	return nil
}

// RequiredArtifactKeys returns the set of artifact keys the gate requires.
func (g *Gate) RequiredArtifactKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(g.Checkpoints))
	for _, cp := range g.Checkpoints {
		keys[cp.ArtifactKey] = struct{}{}
	}
	return keys
}

// Slugify normalizes a label into a stable, URL-safe artifact key: lowercase,
// runs of non-alphanumerics collapsed to single hyphens, no leading/trailing
// hyphen. "Model Card (v2)" -> "model-card-v2".
func Slugify(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	hyphen := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}

// Normalize fills in derived fields and drops invalid or duplicate rows:
// artifact keys are derived from the artifact label (falling back to the
// checkpoint label) when absent, and later rows duplicating an
// (gate, artifact key) pair are ignored. Checkpoints that end up with no key
// at all are dropped.
func (p *Plan) Normalize() {
	for gi := range p.Gates {
		g := &p.Gates[gi]
		seen := make(map[string]bool, len(g.Checkpoints))
		kept := g.Checkpoints[:0]
		for _, cp := range g.Checkpoints {
			if cp.ArtifactKey == "" {
				label := cp.Artifact
				if label == "" {
					label = cp.Label
				}
				cp.ArtifactKey = Slugify(label)
			}
			if cp.ArtifactKey == "" || seen[cp.ArtifactKey] {
				continue
			}
			seen[cp.ArtifactKey] = true
			if !cp.InitialStatus.IsValid() {
				cp.InitialStatus = DecisionPending
			}
			kept = append(kept, cp)
		}
		g.Checkpoints = kept
	}
}
