package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
)

type InstructionAction string

type SellingType string

const (
	InstructionActionOpenLong  InstructionAction = "OPEN_LONG"
	InstructionActionCloseLong InstructionAction = "CLOSE_LONG"
)

const (
	// SellingTypeByVolume closes a plain volume across a code's positions.
	SellingTypeByVolume SellingType = "BY_VOLUME"
	// SellingTypeByStopLossPrice closes the aggregate volume of positions
	// whose stop-loss price was breached.
	SellingTypeByStopLossPrice SellingType = "BY_STOP_LOSS_PRICE"
	// SellingTypeByPositionID closes one specific position in full.
	SellingTypeByPositionID SellingType = "BY_POSITION_ID"
)

// Instruction is an engine-emitted intent to trade, not yet executed. IDs are
// assigned from an engine-owned monotonic counter so that multiple engine
// instances never collide.
type Instruction struct {
	ID     int64             `yaml:"id" json:"id"`
	Action InstructionAction `yaml:"action" json:"action" validate:"required,oneof=OPEN_LONG CLOSE_LONG"`
	Object TradingObject     `yaml:"object" json:"object" validate:"required"`
	// Volume is unit-aligned for opens; for closes it covers the volume the
	// triggering rule selected.
	Volume int64 `yaml:"volume" json:"volume" validate:"required,gt=0"`
	// SubmittedAt is the period the instruction was created in.
	SubmittedAt time.Time `yaml:"submitted_at" json:"submitted_at" validate:"required"`
	// Comments identifies the component(s) that triggered the instruction.
	Comments string `yaml:"comments" json:"comments"`
	// SellingType discriminates how a close selects its volume. Empty for opens.
	SellingType SellingType `yaml:"selling_type" json:"selling_type"`
	// StopLossPrice is the trigger price for SellingTypeByStopLossPrice closes.
	StopLossPrice optional.Option[float64] `yaml:"stop_loss_price" json:"stop_loss_price"`
	// PositionID is the target position for SellingTypeByPositionID closes.
	PositionID optional.Option[string] `yaml:"position_id" json:"position_id"`
}

// Validate validates the Instruction struct, including the action/selling-type
// pairing rules.
func (i *Instruction) Validate() error {
	validate := validator.New()
	if err := validate.Struct(i); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInstruction, "invalid instruction", err)
	}

	switch i.Action {
	case InstructionActionOpenLong:
		if i.SellingType != "" {
			return errors.New(errors.ErrCodeInvalidInstruction, "open instruction must not carry a selling type")
		}
	case InstructionActionCloseLong:
		switch i.SellingType {
		case SellingTypeByVolume:
		case SellingTypeByStopLossPrice:
			if i.StopLossPrice.IsNone() {
				return errors.New(errors.ErrCodeInvalidInstruction, "close by stop-loss price requires a stop-loss price")
			}
		case SellingTypeByPositionID:
			if i.PositionID.IsNone() {
				return errors.New(errors.ErrCodeInvalidInstruction, "close by position id requires a position id")
			}
		default:
			return errors.Newf(errors.ErrCodeInvalidInstruction, "close instruction carries unknown selling type %q", i.SellingType)
		}
	}

	return nil
}
