package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-compose/internal/types"
)

// BarGenerator generates realistic bar series for testing and benchmarking.
type BarGenerator struct {
	rng *rand.Rand
}

// NewBarGenerator creates a new BarGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewBarGenerator(seed int64) *BarGenerator {
	return &BarGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how bar series are generated.
type GeneratorConfig struct {
	// StartTime is the beginning of the series
	StartTime time.Time
	// Interval is the duration between bars
	Interval time.Duration
	// Count is the number of bars to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement per bar (0.002 = 0.2%)
	Volatility float64
	// Trend is the drift factor over the whole series
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		StartTime:      time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:       24 * time.Hour,
		Count:          250,
		InitialPrice:   100.0,
		Volatility:     0.002,
		Trend:          0.0,
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generate creates a bar series based on the configuration. Prices follow a
// geometric Brownian motion model for realistic movements.
func (g *BarGenerator) Generate(config GeneratorConfig) []types.Bar {
	bars := make([]types.Bar, config.Count)
	currentPrice := config.InitialPrice
	currentTime := config.StartTime

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for a normally distributed step.
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count)

		close := open * (1 + priceChange + drift)
		if close <= 0 {
			close = open * 0.99
		}

		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		bars[i] = types.Bar{
			Time:   currentTime,
			Open:   roundToDecimals(open, 4),
			High:   roundToDecimals(high, 4),
			Low:    roundToDecimals(low, 4),
			Close:  roundToDecimals(close, 4),
			Volume: roundToDecimals(volume, 2),
			Valid:  true,
		}

		currentPrice = close
		currentTime = currentTime.Add(config.Interval)
	}

	return bars
}

// GenerateWithGaps generates a series where a fraction of bars are invalid,
// simulating suspensions and holidays.
func (g *BarGenerator) GenerateWithGaps(config GeneratorConfig, gapRatio float64) []types.Bar {
	bars := g.Generate(config)
	for i := range bars {
		if g.rng.Float64() < gapRatio {
			bars[i] = types.Bar{
				Time:   bars[i].Time,
				Open:   0,
				High:   0,
				Low:    0,
				Close:  0,
				Volume: 0,
				Valid:  false,
			}
		}
	}

	return bars
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
