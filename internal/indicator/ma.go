package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/internal/types"
)

// MovingAverage implements a simple moving average over close prices.
type MovingAverage struct {
	period int
	window []float64
	sum    float64
}

// NewMovingAverage creates a moving average over the given period. A
// non-positive period falls back to the default of 20.
func NewMovingAverage(period int) *MovingAverage {
	if period <= 0 {
		period = 20 // Default period
	}

	return &MovingAverage{
		period: period,
		window: make([]float64, 0, period),
		sum:    0,
	}
}

// Evaluate implements indicator.Metric.
func (m *MovingAverage) Evaluate(bar types.Bar) {
	if !bar.IsValid() {
		return
	}

	m.window = append(m.window, bar.Close)
	m.sum += bar.Close

	if len(m.window) > m.period {
		m.sum -= m.window[0]
		m.window = m.window[1:]
	}
}

// Value implements indicator.Metric. Returns None until the window filled.
func (m *MovingAverage) Value() optional.Option[float64] {
	if len(m.window) < m.period {
		return optional.None[float64]()
	}

	return optional.Some(m.sum / float64(m.period))
}

// Name implements indicator.Metric.
func (m *MovingAverage) Name() string {
	return "ma"
}
