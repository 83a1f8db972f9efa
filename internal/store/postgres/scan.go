package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/store"
)

// scanner is the interface satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanProject scans one projects row. sql.ErrNoRows is mapped to
// store.ErrUnknownProject.
func scanProject(row scanner) (*model.Project, error) {
	var (
		p     model.Project
		state string
		gates []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Owner,
		&state,
		&p.CurrentGateIndex,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.UpdatedAt,
		&gates,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrUnknownProject
	}
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}

	p.Status = model.ProjectStatus(state)
	p.Gates = make(map[string]*model.GateState)
	if len(gates) > 0 {
		if err := json.Unmarshal(gates, &p.Gates); err != nil {
			return nil, fmt.Errorf("unmarshal gates: %w", err)
		}
	}
	return &p, nil
}
