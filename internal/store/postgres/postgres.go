// Package postgres implements the store.Store interface backed by PostgreSQL.
//
// Each mutation runs inside a transaction that locks the project row with
// SELECT ... FOR UPDATE, so concurrent writers to the same project are
// serialized and every operation — including the override cascade — is
// observed atomically.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/store"
	"github.com/groblegark/gatekeep/internal/workflow"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore implements store.Store backed by a PostgreSQL database.
// The gate plan is carried so ClearGateOverride can recompute a gate's
// status over the plan's full checkpoint list.
type PostgresStore struct {
	db   *sql.DB
	plan *model.Plan
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string, plan *model.Plan) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db, plan: plan}, nil
}

// planGate returns the plan gate for id, or nil when no plan was supplied
// or the id is not in it.
func (s *PostgresStore) planGate(id string) *model.Gate {
	if s.plan == nil {
		return nil
	}
	return s.plan.GateByID(id)
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateProject(ctx context.Context, p *model.Project) error {
	return queryCreateProject(ctx, s.db, p)
}

func (s *PostgresStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return queryGetProject(ctx, s.db, id)
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	return queryListProjects(ctx, s.db)
}

func (s *PostgresStore) UpdateProjectStatus(ctx context.Context, id string, status model.ProjectStatus, actor model.Actor) (*model.Project, error) {
	if !status.IsValid() {
		return nil, store.ErrInvalidStatus
	}
	return s.withProject(ctx, id, func(p *model.Project) error {
		p.Status = status
		return nil
	})
}

func (s *PostgresStore) RecordCheckpointDecision(ctx context.Context, projectID, gateID, artifactKey string, decision model.Decision, actor model.Actor) error {
	if !decision.IsValid() {
		return store.ErrInvalidDecision
	}
	_, err := s.withProject(ctx, projectID, func(p *model.Project) error {
		gate := p.Gate(gateID)
		if gate.Overridden {
			return store.ErrGateOverridden
		}
		now := time.Now().UTC()
		cp := gate.Checkpoint(artifactKey)
		cp.Decision = decision
		cp.DecidedBy = actor.ID
		cp.DecidedAt = &now
		gate.Audit = append(gate.Audit, model.AuditEvent{
			TS:     now,
			Who:    actor.ID,
			Action: fmt.Sprintf("checkpoint:%s:%s", artifactKey, decision),
		})
		return nil
	})
	return err
}

func (s *PostgresStore) RecordCheckpointPayload(ctx context.Context, projectID, gateID, artifactKey string, payload model.Payload, actor model.Actor) error {
	_, err := s.withProject(ctx, projectID, func(p *model.Project) error {
		now := time.Now().UTC()

		gate := p.Gate(gateID)
		cp := gate.Checkpoint(artifactKey)
		cp.Payload = &payload
		cp.UpdatedBy = actor.ID
		cp.UpdatedAt = &now
		gate.Audit = append(gate.Audit, model.AuditEvent{
			TS:     now,
			Who:    actor.ID,
			Action: fmt.Sprintf("artifact:%s:update", artifactKey),
		})

		// The same artifact may be required at multiple gates; evidence is
		// shared across every gate that already tracks the key. Gates with no
		// container for the key are left untouched, and only the target gate
		// is audited.
		for otherID, other := range p.Gates {
			if otherID == gateID || other == nil {
				continue
			}
			ocp, ok := other.Checkpoints[artifactKey]
			if !ok || ocp == nil {
				continue
			}
			shared := payload
			ocp.Payload = &shared
			ocp.UpdatedBy = actor.ID
			ocp.UpdatedAt = &now
		}
		return nil
	})
	return err
}

func (s *PostgresStore) RecordGateOverride(ctx context.Context, projectID, gateID string, status model.Decision, actor model.Actor, reason string) error {
	if !status.IsValid() {
		return store.ErrInvalidDecision
	}
	_, err := s.withProject(ctx, projectID, func(p *model.Project) error {
		now := time.Now().UTC()

		gate := p.Gate(gateID)
		gate.Overridden = true
		gate.GateStatus = status
		gate.OverrideBy = actor.ID
		gate.OverrideReason = reason
		gate.Audit = append(gate.Audit, model.AuditEvent{
			TS:     now,
			Who:    actor.ID,
			Action: fmt.Sprintf("gate_status:%s", status),
			Reason: reason,
		})

		// Propagate the override onto every checkpoint of this gate (never
		// across gates), each as its own audited write. The row is saved
		// once, so readers never observe a partially-overridden gate.
		keys := make([]string, 0, len(gate.Checkpoints))
		for key := range gate.Checkpoints {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			cp := gate.Checkpoints[key]
			if cp == nil {
				continue
			}
			cp.Decision = status
			cp.DecidedBy = actor.ID
			cp.DecidedAt = &now
			gate.Audit = append(gate.Audit, model.AuditEvent{
				TS:     now,
				Who:    actor.ID,
				Action: fmt.Sprintf("checkpoint:%s:%s", key, status),
				Reason: reason,
			})
		}
		return nil
	})
	return err
}

func (s *PostgresStore) ClearGateOverride(ctx context.Context, projectID, gateID string, actor model.Actor, reason string) error {
	_, err := s.withProject(ctx, projectID, func(p *model.Project) error {
		gate := p.Gate(gateID)
		if !gate.Overridden {
			return nil
		}
		gate.Overridden = false
		gate.OverrideBy = ""
		gate.OverrideReason = ""
		gate.GateStatus = workflow.GateStatus(gate, s.planGate(gateID))
		gate.Audit = append(gate.Audit, model.AuditEvent{
			TS:     time.Now().UTC(),
			Who:    actor.ID,
			Action: "override:cleared",
			Reason: reason,
		})
		return nil
	})
	return err
}

// GetArtifactPayload returns the first payload recorded for the key across
// the project's gates (in lexical gate order, for determinism), or nil when
// no gate has evidence for it. It never creates containers.
func (s *PostgresStore) GetArtifactPayload(ctx context.Context, projectID, artifactKey string) (*model.Payload, error) {
	p, err := queryGetProject(ctx, s.db, projectID)
	if err != nil {
		return nil, err
	}

	gateIDs := make([]string, 0, len(p.Gates))
	for id := range p.Gates {
		gateIDs = append(gateIDs, id)
	}
	sort.Strings(gateIDs)

	for _, id := range gateIDs {
		gs := p.Gates[id]
		if gs == nil {
			continue
		}
		if cp, ok := gs.Checkpoints[artifactKey]; ok && cp != nil && cp.Payload != nil {
			return cp.Payload, nil
		}
	}
	return nil, nil
}

func (s *PostgresStore) GetAuditTrail(ctx context.Context, projectID, gateID string) ([]model.AuditEvent, error) {
	p, err := queryGetProject(ctx, s.db, projectID)
	if err != nil {
		return nil, err
	}
	gs, ok := p.Gates[gateID]
	if !ok || gs == nil {
		return []model.AuditEvent{}, nil
	}
	return gs.Audit, nil
}

func (s *PostgresStore) AdvanceProjectGate(ctx context.Context, projectID string, maxIndex int) (*model.Project, error) {
	return s.withProject(ctx, projectID, func(p *model.Project) error {
		if maxIndex < 0 {
			return nil
		}
		next := p.CurrentGateIndex + 1
		if next > maxIndex {
			next = maxIndex
		}
		p.CurrentGateIndex = next
		return nil
	})
}

// withProject runs fn against the project row under SELECT ... FOR UPDATE and
// writes the mutated record back before committing. When fn returns an error
// the transaction is rolled back and nothing is persisted.
func (s *PostgresStore) withProject(ctx context.Context, id string, fn func(p *model.Project) error) (*model.Project, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	p, err := queryGetProjectForUpdate(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := fn(p); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := querySaveProject(ctx, tx, p); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return p, nil
}
