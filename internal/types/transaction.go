package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the realized result of a previously issued instruction,
// delivered back by the execution layer.
type Transaction struct {
	// InstructionID refers to the instruction this transaction resolves.
	InstructionID  int64             `yaml:"instruction_id" json:"instruction_id"`
	Code           string            `yaml:"code" json:"code"`
	Action         InstructionAction `yaml:"action" json:"action"`
	Succeeded      bool              `yaml:"succeeded" json:"succeeded"`
	ExecutedPrice  float64           `yaml:"executed_price" json:"executed_price"`
	ExecutedVolume int64             `yaml:"executed_volume" json:"executed_volume"`
	Commission     float64           `yaml:"commission" json:"commission"`
	ExecutedAt     time.Time         `yaml:"executed_at" json:"executed_at"`
}

// CompletedTransaction summarizes a fully closed round-trip (entry + exit).
// It is a read-only value, never mutated after creation.
type CompletedTransaction struct {
	Code string `yaml:"code" json:"code" csv:"code"`
	// BuyPrice is the average entry price over the round-trip.
	BuyPrice   float64   `yaml:"buy_price" json:"buy_price" csv:"buy_price"`
	SoldPrice  float64   `yaml:"sold_price" json:"sold_price" csv:"sold_price"`
	Volume     int64     `yaml:"volume" json:"volume" csv:"volume"`
	Commission float64   `yaml:"commission" json:"commission" csv:"commission"`
	BoughtAt   time.Time `yaml:"bought_at" json:"bought_at" csv:"bought_at"`
	SoldAt     time.Time `yaml:"sold_at" json:"sold_at" csv:"sold_at"`
}

// BuyCost is the cash spent entering the round-trip.
func (c *CompletedTransaction) BuyCost() float64 {
	cost := decimal.NewFromFloat(c.BuyPrice).Mul(decimal.NewFromInt(c.Volume))

	result, _ := cost.Float64()

	return result
}

// SoldGain is the cash received exiting the round-trip, net of commission.
func (c *CompletedTransaction) SoldGain() float64 {
	gain := decimal.NewFromFloat(c.SoldPrice).
		Mul(decimal.NewFromInt(c.Volume)).
		Sub(decimal.NewFromFloat(c.Commission))

	result, _ := gain.Float64()

	return result
}

// PnL is the net profit/loss of the round-trip.
func (c *CompletedTransaction) PnL() float64 {
	gain := decimal.NewFromFloat(c.SoldPrice).
		Mul(decimal.NewFromInt(c.Volume)).
		Sub(decimal.NewFromFloat(c.Commission))
	cost := decimal.NewFromFloat(c.BuyPrice).Mul(decimal.NewFromInt(c.Volume))

	result, _ := gain.Sub(cost).Float64()

	return result
}
