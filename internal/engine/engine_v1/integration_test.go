package engine

import (
	"strconv"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-compose/internal/indicator"
	"github.com/rxtech-lab/argo-compose/internal/ledger"
	"github.com/rxtech-lab/argo-compose/internal/logger"
	"github.com/rxtech-lab/argo-compose/internal/strategy"
	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/internal/venue"
	"github.com/stretchr/testify/suite"
)

// noopComponent carries the lifecycle boilerplate for the test components.
type noopComponent struct {
	name string
}

func (c *noopComponent) Initialize(params map[string]string) error { return nil }

func (c *noopComponent) OnPeriodStart(t time.Time) error { return nil }

func (c *noopComponent) Feed(object types.TradingObject, bar types.Bar) error { return nil }

func (c *noopComponent) OnPeriodEnd() error { return nil }

func (c *noopComponent) Finish() error { return nil }

func (c *noopComponent) Name() string { return c.name }

// thresholdEntry enters when the latest close sits at or below a threshold,
// once its moving average has warmed up.
type thresholdEntry struct {
	noopComponent
	threshold float64
	ma        *indicator.MovingAverage
	lastClose float64
}

func newThresholdEntry(threshold float64, maPeriod int) *thresholdEntry {
	return &thresholdEntry{
		noopComponent: noopComponent{name: "threshold-entry"},
		threshold:     threshold,
		ma:            indicator.NewMovingAverage(maPeriod),
		lastClose:     0,
	}
}

func (c *thresholdEntry) Initialize(params map[string]string) error {
	if raw, ok := params["entry_threshold"]; ok {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}

		c.threshold = threshold
	}

	return nil
}

func (c *thresholdEntry) Feed(object types.TradingObject, bar types.Bar) error {
	c.ma.Evaluate(bar)
	c.lastClose = bar.Close

	return nil
}

func (c *thresholdEntry) CanEnter(object types.TradingObject) (bool, string) {
	if c.ma.Value().IsNone() {
		return false, ""
	}

	if c.lastClose <= c.threshold {
		return true, "close at or below entry threshold"
	}

	return false, ""
}

// targetExit exits when the latest close reaches a profit target.
type targetExit struct {
	noopComponent
	target    float64
	lastClose float64
}

func newTargetExit(target float64) *targetExit {
	return &targetExit{
		noopComponent: noopComponent{name: "target-exit"},
		target:        target,
		lastClose:     0,
	}
}

func (c *targetExit) Feed(object types.TradingObject, bar types.Bar) error {
	c.lastClose = bar.Close

	return nil
}

func (c *targetExit) ShouldExit(object types.TradingObject) (bool, string) {
	if c.lastClose >= c.target {
		return true, "profit target reached"
	}

	return false, ""
}

// fixedGapStop places the stop-loss a fixed distance below the entry price.
type fixedGapStop struct {
	noopComponent
	gap float64
}

func newFixedGapStop(gap float64) *fixedGapStop {
	return &fixedGapStop{
		noopComponent: noopComponent{name: "fixed-gap-stop"},
		gap:           gap,
	}
}

func (c *fixedGapStop) EstimateGap(object types.TradingObject, price float64) float64 {
	return c.gap
}

// fixedSizing always proposes the same raw size and never adjusts.
type fixedSizing struct {
	noopComponent
	size int64
}

func newFixedSizing(size int64) *fixedSizing {
	return &fixedSizing{
		noopComponent: noopComponent{name: "fixed-sizing"},
		size:          size,
	}
}

func (c *fixedSizing) EstimateSize(object types.TradingObject, price, gap float64, totalCandidateCount int) int64 {
	return c.size
}

func (c *fixedSizing) ShouldAdjustPosition() strategy.AdjustmentDecision {
	return strategy.AdjustmentDecision{}
}

// IntegrationTestSuite runs a composed strategy through the full loop against
// the paper venue and the ledger, with no mocks anywhere.
type IntegrationTestSuite struct {
	suite.Suite
	composer *ComposerV1
	venue    *venue.PaperVenue
	ledger   *ledger.Ledger
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	log := logger.NewNopLogger()

	registry, err := strategy.NewRegistry([]strategy.Component{
		newThresholdEntry(10.0, 2),
		newTargetExit(12.0),
		newFixedGapStop(-1.0),
		newFixedSizing(300),
	})
	s.Require().NoError(err)

	composer, err := NewComposerV1(TestConfig("integration"), registry, log)
	s.Require().NoError(err)
	s.composer = composer.(*ComposerV1)

	s.venue = venue.NewPaperVenue(100000, venue.NewZeroCommissionFee(), log)

	journal, err := ledger.NewLedger(log)
	s.Require().NoError(err)
	s.Require().NoError(journal.Initialize())
	s.ledger = journal
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.Require().NoError(s.ledger.Close())
}

func (s *IntegrationTestSuite) object() types.TradingObject {
	return types.TradingObject{Code: "600000", VolumePerBuyingUnit: 100}
}

// runPeriod drives one full period: evaluate, retrieve, execute at the venue,
// journal both sides and report the outcomes back.
func (s *IntegrationTestSuite) runPeriod(t time.Time, close float64) {
	bar := types.Bar{
		Time:   t,
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 100000,
		Valid:  true,
	}

	s.Require().NoError(s.composer.StartPeriod(t))
	s.venue.MarkPrice(s.object().Code, bar)
	s.Require().NoError(s.composer.Evaluate(s.object(), bar))
	s.Require().NoError(s.composer.AfterEvaluation())

	retrieved := s.composer.RetrieveInstructions()
	s.Require().True(retrieved.IsSome())

	for _, instruction := range retrieved.Unwrap() {
		s.Require().NoError(s.ledger.RecordInstruction("integration", instruction))

		transaction, err := s.venue.Execute(instruction, bar)
		s.Require().NoError(err)
		s.Require().NoError(s.ledger.RecordTransaction(transaction))
		s.Require().NoError(s.composer.NotifyTransactionStatus(transaction))
	}

	s.Require().NoError(s.composer.EndPeriod())
}

func (s *IntegrationTestSuite) TestFullTradingLoop() {
	s.Require().NoError(s.composer.Initialize(s.venue, map[string]string{
		"entry_threshold": "10.0",
	}))

	start := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	closes := []float64{
		11.0, // warm-up of the moving average, no entry
		10.0, // entry: 300 at 10, stop-loss initialized at 9
		10.5, // hold
		8.5,  // stop-loss breached: close 300
		10.0, // re-entry: 300 at 10
		12.5, // profit target: close 300
	}

	for i, close := range closes {
		s.runPeriod(start.AddDate(0, 0, i), close)
	}

	s.Require().NoError(s.composer.Finish())

	// Both round-trips settled at the venue.
	completed := s.venue.CompletedTransactions()
	s.Require().Len(completed, 2)

	s.Equal(int64(300), completed[0].Volume)
	s.InDelta(10.0, completed[0].BuyPrice, 1e-9)
	s.InDelta(8.5, completed[0].SoldPrice, 1e-9)
	s.InDelta(-450, completed[0].PnL(), 1e-9)

	s.Equal(int64(300), completed[1].Volume)
	s.InDelta(10.0, completed[1].BuyPrice, 1e-9)
	s.InDelta(12.5, completed[1].SoldPrice, 1e-9)
	s.InDelta(750, completed[1].PnL(), 1e-9)

	// 100000 - 450 + 750.
	s.InDelta(100300, s.venue.Cash(), 1e-9)
	s.False(s.venue.ExistsPosition("600000"))

	// Every journaled instruction found its transaction.
	unresolved, err := s.ledger.UnresolvedInstructions()
	s.Require().NoError(err)
	s.Empty(unresolved)

	summaries, err := s.ledger.RoundTripSummaries()
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal("600000", summaries[0].Code)
	s.Equal(int64(600), summaries[0].Volume)
	s.InDelta(10.0, summaries[0].BuyPrice, 1e-9)
	s.InDelta(10.5, summaries[0].SoldPrice, 1e-9)
}

func (s *IntegrationTestSuite) TestWarmUpPrimesIndicators() {
	s.Require().NoError(s.composer.Initialize(s.venue, nil))

	start := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	for i, close := range []float64{10.0, 9.8} {
		s.Require().NoError(s.composer.WarmUp(s.object(), types.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 100000,
			Valid:  true,
		}))
	}

	// The moving average is already warm, so the very first live period can
	// enter.
	s.runPeriod(start.AddDate(0, 0, 2), 9.9)

	s.True(s.venue.ExistsPosition("600000"))

	positions := s.venue.GetPositionDetails("600000")
	s.Require().Len(positions, 1)
	s.Equal(int64(300), positions[0].Volume())

	// The confirmed open initialized the stop-loss exactly one gap below the
	// entry price.
	s.Require().True(positions[0].StopLossPrice().IsSome())
	s.InDelta(8.9, positions[0].StopLossPrice().Unwrap(), 1e-9)
}
