package server

import (
	"context"
	"log/slog"

	"github.com/groblegark/gatekeep/internal/advisory"
	"github.com/groblegark/gatekeep/internal/events"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/store"
)

// GovServer carries the governance API's dependencies: the decision store,
// the event publisher, the immutable gate plan, and the advisory suggester.
type GovServer struct {
	store     store.Store
	publisher events.Publisher
	plan      *model.Plan
	suggester advisory.Suggester
	policy    string
}

// NewGovServer returns a new GovServer. suggester may be nil; the advisory
// endpoint then serves the offline fallback.
func NewGovServer(s store.Store, p events.Publisher, plan *model.Plan, suggester advisory.Suggester, policyNotes string) *GovServer {
	return &GovServer{
		store:     s,
		publisher: p,
		plan:      plan,
		suggester: suggester,
		policy:    policyNotes,
	}
}

// publish emits an event to the bus. Best-effort; failures are logged but do
// not block the caller.
func (s *GovServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

// inputError indicates invalid user input.
// The transport layer maps this to 400.
type inputError string

func (e inputError) Error() string { return string(e) }

// forbiddenError indicates the actor's role does not permit the operation.
// The transport layer maps this to 403.
type forbiddenError string

func (e forbiddenError) Error() string { return string(e) }
