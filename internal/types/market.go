package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
)

// TradingObject is an opaque reference to a tradable instrument. The engine
// only relies on its code and its minimum tradable lot size.
type TradingObject struct {
	// Code uniquely identifies the instrument.
	Code string `yaml:"code" json:"code" validate:"required"`
	// VolumePerBuyingUnit is the minimum/round-lot size. Buy volumes are
	// always rounded down to a multiple of this value.
	VolumePerBuyingUnit int64 `yaml:"volume_per_buying_unit" json:"volume_per_buying_unit" validate:"required,gt=0"`
}

// Validate validates the TradingObject struct.
func (o *TradingObject) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTradingObject, "invalid trading object", err)
	}

	return nil
}

// Bar is one period's OHLCV snapshot for a trading object.
type Bar struct {
	Time   time.Time `yaml:"time" json:"time"`
	Open   float64   `yaml:"open" json:"open"`
	High   float64   `yaml:"high" json:"high"`
	Low    float64   `yaml:"low" json:"low"`
	Close  float64   `yaml:"close" json:"close"`
	Volume float64   `yaml:"volume" json:"volume"`
	// Valid is false for non-trading periods (suspension, holiday). Invalid
	// bars are skipped by the engine with no side effects.
	Valid bool `yaml:"valid" json:"valid"`
}

// IsValid reports whether the bar carries tradable data for its period.
func (b *Bar) IsValid() bool {
	return b.Valid
}
