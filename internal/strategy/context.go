package strategy

import (
	"time"

	"github.com/rxtech-lab/argo-compose/internal/types"
)

// EvaluationContext is the portfolio/broker collaborator the engine evaluates
// against. Positions are owned by the context; the engine only reads them and
// initializes stop-loss prices through the position handle.
type EvaluationContext interface {
	// GetCurrentEquity returns the portfolio valuation for the period under
	// the selected method.
	GetCurrentEquity(period time.Time, method types.EquityMethod) (float64, error)
	// ExistsPosition reports whether any open position exists for the code.
	ExistsPosition(code string) bool
	// GetPositionDetails returns every open position for the code. An unknown
	// code yields an empty result, not an error.
	GetPositionDetails(code string) []*types.Position
	// Log accepts free-text diagnostic messages from the engine.
	Log(message string)
}
