package engine

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/internal/strategy"
	"github.com/rxtech-lab/argo-compose/internal/types"
)

// Composer drives the per-period evaluation of a composed strategy: it fans
// bars out to every component, aggregates their decisions into instructions
// and reconciles instruction-to-transaction outcomes.
//
// The caller serializes the per-period sequence:
// StartPeriod -> Evaluate* -> AfterEvaluation -> RetrieveInstructions ->
// (external execution) -> NotifyTransactionStatus* -> EndPeriod.
//
//nolint:interfacebloat // Composer is a core interface that naturally requires multiple methods
type Composer interface {
	// Initialize binds the evaluation context and propagates the bound
	// parameter values to every owned component. Must be called before any
	// period operation.
	Initialize(ctx strategy.EvaluationContext, params map[string]string) error
	// WarmUp replays one historical bar through every component without
	// producing instructions, priming windowed computations.
	WarmUp(object types.TradingObject, bar types.Bar) error
	// StartPeriod resets the per-period buffers and notifies all components
	// of the new period timestamp. Called exactly once per period before the
	// first Evaluate.
	StartPeriod(t time.Time) error
	// Evaluate runs the decision pipeline for one trading object. Called once
	// per object per period.
	Evaluate(object types.TradingObject, bar types.Bar) error
	// AfterEvaluation runs the position-adjustment pass once per period after
	// every object has been evaluated.
	AfterEvaluation() error
	// RetrieveInstructions returns the period's accumulated instructions
	// exactly once, moving them into the active mapping. A second call in the
	// same period returns None.
	RetrieveInstructions() optional.Option[[]*types.Instruction]
	// NotifyTransactionStatus resolves an execution result to its originating
	// active instruction.
	NotifyTransactionStatus(transaction types.Transaction) error
	// EndPeriod notifies all components and clears the per-period buffers.
	EndPeriod() error
	// Finish is the terminal call: components release their resources and any
	// instruction still active is reported as an anomaly.
	Finish() error
}
