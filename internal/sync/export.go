package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/groblegark/gatekeep/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version      string    `json:"version"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	ProjectCount int       `json:"project_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ExportJSONL writes every project from the store as JSONL to w. Projects
// are sorted by ID; each record carries the full nested gate and checkpoint
// state, so the export is a complete point-in-time backup.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ID < projects[j].ID
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:      "1",
		Type:         "header",
		Timestamp:    time.Now().UTC(),
		ProjectCount: len(projects),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, p := range projects {
		if err := enc.Encode(record{Type: "project", Data: p}); err != nil {
			return fmt.Errorf("encode project %s: %w", p.ID, err)
		}
	}

	return nil
}
