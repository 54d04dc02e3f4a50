package types

import (
	"github.com/moznion/go-optional"
)

// Position is the open-position state for a (code, position id) pair. The id
// is assigned by the execution layer, not the engine. The engine only reads
// positions and performs one narrowly-scoped mutation: initializing the
// stop-loss price once, immediately after a confirmed open.
type Position struct {
	code     string
	id       string
	buyPrice float64
	volume   int64

	// stopLossPrice is lazily initialized and set exactly once.
	stopLossPrice optional.Option[float64]
}

// NewPosition creates a position with an uninitialized stop-loss price.
func NewPosition(code string, id string, buyPrice float64, volume int64) *Position {
	return &Position{
		code:          code,
		id:            id,
		buyPrice:      buyPrice,
		volume:        volume,
		stopLossPrice: optional.None[float64](),
	}
}

func (p *Position) Code() string { return p.code }

func (p *Position) ID() string { return p.id }

func (p *Position) BuyPrice() float64 { return p.buyPrice }

func (p *Position) Volume() int64 { return p.volume }

// StopLossPrice returns the stop-loss price, or None if it was never set.
func (p *Position) StopLossPrice() optional.Option[float64] {
	return p.stopLossPrice
}

// InitStopLossPrice sets the stop-loss price if it has not been set before.
// Returns true when the price was set by this call; once initialized, the
// price is never re-initialized and further calls are no-ops.
func (p *Position) InitStopLossPrice(price float64) bool {
	if p.stopLossPrice.IsSome() {
		return false
	}

	p.stopLossPrice = optional.Some(price)

	return true
}

// Identifier returns the (code, position id) pair used to request closing
// this position during the adjustment pass.
func (p *Position) Identifier() PositionIdentifier {
	return PositionIdentifier{
		Code:       p.code,
		PositionID: p.id,
	}
}

// PositionIdentifier names one specific open position.
type PositionIdentifier struct {
	Code       string `yaml:"code" json:"code"`
	PositionID string `yaml:"position_id" json:"position_id"`
}
