package strategy

import (
	"github.com/rxtech-lab/argo-compose/internal/types"
)

// MarketEntering decides whether a new long position may be opened. Aside
// from its own internal bookkeeping a call must be side-effect free.
type MarketEntering interface {
	Component

	// CanEnter returns whether entry is allowed plus an explanatory comment.
	CanEnter(object types.TradingObject) (bool, string)
}

// MarketExiting decides whether existing positions should be closed.
type MarketExiting interface {
	Component

	// ShouldExit returns whether to exit plus an explanatory comment.
	ShouldExit(object types.TradingObject) (bool, string)
}

// StopLoss estimates the stop-loss gap for a long entry at the given price.
// The gap must be strictly negative; a non-negative gap is a contract
// violation the engine treats as fatal.
type StopLoss interface {
	Component

	EstimateGap(object types.TradingObject, price float64) float64
}

// PositionSizing sizes new entries and proposes per-period adjustments of
// existing positions.
type PositionSizing interface {
	Component

	// EstimateSize returns the target share count for a new entry given the
	// candidate price, the stop-loss gap and the number of candidate objects
	// this period.
	EstimateSize(object types.TradingObject, price float64, gap float64, totalCandidateCount int) int64

	// ShouldAdjustPosition returns the adjustment decision for this period.
	// Its contract: codes-to-add and positions-to-remove are never both
	// populated; the engine lets removal win if the contract is broken.
	ShouldAdjustPosition() AdjustmentDecision
}

// AdjustmentDecision carries either a set of codes needing additional buying
// or a set of specific positions needing removal.
type AdjustmentDecision struct {
	CodesToAdd        []string
	PositionsToRemove []types.PositionIdentifier
}

// IsEmpty reports whether the decision requests no adjustment at all.
func (d AdjustmentDecision) IsEmpty() bool {
	return len(d.CodesToAdd) == 0 && len(d.PositionsToRemove) == 0
}
