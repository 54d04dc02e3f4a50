package strategy

import (
	"time"

	"github.com/rxtech-lab/argo-compose/internal/types"
)

// Component is the lifecycle contract every strategy component implements,
// independent of which decision capabilities it provides. The engine fans
// every lifecycle call out to the full component set so that indicator state
// stays current even for components that make no decision this period.
type Component interface {
	// Initialize forwards the bound parameter values to the component. The
	// engine does not interpret parameter semantics.
	Initialize(params map[string]string) error
	// OnPeriodStart notifies the component of a new period timestamp.
	OnPeriodStart(t time.Time) error
	// Feed delivers one bar so windowed computations stay current. Called for
	// warm-up replays as well as live evaluation.
	Feed(object types.TradingObject, bar types.Bar) error
	// OnPeriodEnd notifies the component that the period closed.
	OnPeriodEnd() error
	// Finish releases the component's resources.
	Finish() error
	// Name identifies the component in instruction comments and logs.
	Name() string
}
