package indicator

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/stretchr/testify/assert"
)

func bar(close float64) types.Bar {
	return types.Bar{
		Time:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Close: close,
		Valid: true,
	}
}

func TestMovingAverageWarmsUp(t *testing.T) {
	ma := NewMovingAverage(3)

	ma.Evaluate(bar(1))
	assert.True(t, ma.Value().IsNone())

	ma.Evaluate(bar(2))
	assert.True(t, ma.Value().IsNone())

	ma.Evaluate(bar(3))
	assert.Equal(t, 2.0, ma.Value().Unwrap())
}

func TestMovingAverageSlidesWindow(t *testing.T) {
	ma := NewMovingAverage(3)

	for _, close := range []float64{1, 2, 3, 4, 5} {
		ma.Evaluate(bar(close))
	}

	assert.Equal(t, 4.0, ma.Value().Unwrap())
}

func TestMovingAverageSkipsInvalidBars(t *testing.T) {
	ma := NewMovingAverage(2)

	ma.Evaluate(bar(10))
	ma.Evaluate(types.Bar{Close: 999}) // suspended period, Valid=false
	ma.Evaluate(bar(20))

	assert.Equal(t, 15.0, ma.Value().Unwrap())
}

func TestMovingAverageDefaultPeriod(t *testing.T) {
	ma := NewMovingAverage(0)
	assert.Equal(t, "ma", ma.Name())

	for i := 0; i < 19; i++ {
		ma.Evaluate(bar(1))
	}

	assert.True(t, ma.Value().IsNone())

	ma.Evaluate(bar(1))
	assert.Equal(t, 1.0, ma.Value().Unwrap())
}
