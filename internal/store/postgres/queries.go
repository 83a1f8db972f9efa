package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/store"
)

// projectColumns is the column list used for SELECT statements on the
// projects table.
const projectColumns = `id, name, description, owner, status,
	current_gate_index, created_at, created_by, updated_at, gates`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryCreateProject(ctx context.Context, db executor, p *model.Project) error {
	gates, err := marshalGates(p.Gates)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO projects (
			id, name, description, owner, status,
			current_gate_index, created_at, created_by, updated_at, gates
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
		ON CONFLICT (id) DO NOTHING`,
		p.ID,
		p.Name,
		p.Description,
		p.Owner,
		string(p.Status),
		p.CurrentGateIndex,
		p.CreatedAt,
		p.CreatedBy,
		p.UpdatedAt,
		gates,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrDuplicateProject
	}
	return nil
}

func queryGetProject(ctx context.Context, db executor, id string) (*model.Project, error) {
	row := db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func queryGetProjectForUpdate(ctx context.Context, db executor, id string) (*model.Project, error) {
	row := db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id)
	return scanProject(row)
}

func queryListProjects(ctx context.Context, db executor) ([]*model.Project, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan projects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}
	return projects, nil
}

func querySaveProject(ctx context.Context, db executor, p *model.Project) error {
	gates, err := marshalGates(p.Gates)
	if err != nil {
		return err
	}
	err = db.QueryRowContext(ctx, `
		UPDATE projects SET
			name = $2,
			description = $3,
			owner = $4,
			status = $5,
			current_gate_index = $6,
			updated_at = NOW(),
			gates = $7
		WHERE id = $1
		RETURNING updated_at`,
		p.ID,
		p.Name,
		p.Description,
		p.Owner,
		string(p.Status),
		p.CurrentGateIndex,
		gates,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrUnknownProject
	}
	return err
}

func marshalGates(gates map[string]*model.GateState) ([]byte, error) {
	if gates == nil {
		gates = map[string]*model.GateState{}
	}
	data, err := json.Marshal(gates)
	if err != nil {
		return nil, fmt.Errorf("marshal gates: %w", err)
	}
	return data, nil
}
