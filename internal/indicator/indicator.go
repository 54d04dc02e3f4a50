package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/internal/types"
)

// Metric is the generic rolling-computation contract strategy components
// consume: evaluate one data point, read the current value. Concrete metric
// formulas live outside the composition engine.
type Metric interface {
	// Evaluate folds one bar into the metric state.
	Evaluate(bar types.Bar)
	// Value returns the current metric value, or None while the window has
	// not filled yet.
	Value() optional.Option[float64]
	// Name identifies the metric.
	Name() string
}
