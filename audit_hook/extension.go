// Package audithook bridges ledger notification records to an audit
// trail backend.
//
// It defines a local Recorder interface so the package does not import
// Chronicle directly. Callers inject a RecorderFunc adapter that bridges
// to Chronicle at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/token/event"
	"github.com/xraph/token/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin     = (*Extension)(nil)
	_ plugin.OnTransfer = (*Extension)(nil)
	_ plugin.OnApproval = (*Extension)(nil)
	_ plugin.OnMint     = (*Extension)(nil)
	_ plugin.OnBurn     = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// This matches chronicle.Emitter but is defined locally so that the
// audit_hook package does not import Chronicle directly; callers inject
// the concrete *chronicle.Chronicle at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
// It mirrors chronicle/audit.Event but avoids a module dependency.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges ledger notification records to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Ledger hooks
// ──────────────────────────────────────────────────

// OnTransfer implements plugin.OnTransfer. Fires for both direct and
// delegated transfers.
func (e *Extension) OnTransfer(ctx context.Context, rec *event.Record) error {
	return e.record(ctx, ActionTransferCompleted, SeverityInfo, OutcomeSuccess,
		ResourceAccount, rec.ID.String(), CategoryMovement, nil,
		"from", rec.From.String(),
		"to", rec.To.String(),
		"value", rec.Value.String(),
		"seq", rec.Seq,
	)
}

// OnApproval implements plugin.OnApproval.
func (e *Extension) OnApproval(ctx context.Context, rec *event.Record) error {
	return e.record(ctx, ActionApprovalSet, SeverityInfo, OutcomeSuccess,
		ResourceAllowance, rec.ID.String(), CategoryDelegation, nil,
		"owner", rec.Owner.String(),
		"spender", rec.Spender.String(),
		"value", rec.Value.String(),
		"seq", rec.Seq,
	)
}

// OnMint implements plugin.OnMint.
func (e *Extension) OnMint(ctx context.Context, rec *event.Record) error {
	return e.record(ctx, ActionSupplyMinted, SeverityInfo, OutcomeSuccess,
		ResourceSupply, rec.ID.String(), CategorySupply, nil,
		"to", rec.To.String(),
		"value", rec.Value.String(),
		"seq", rec.Seq,
	)
}

// OnBurn implements plugin.OnBurn.
func (e *Extension) OnBurn(ctx context.Context, rec *event.Record) error {
	return e.record(ctx, ActionSupplyBurned, SeverityInfo, OutcomeSuccess,
		ResourceSupply, rec.ID.String(), CategorySupply, nil,
		"from", rec.From.String(),
		"value", rec.Value.String(),
		"seq", rec.Seq,
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
