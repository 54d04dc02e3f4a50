package venue

import (
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-compose/internal/logger"
	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// holding pairs an open position with the time it was opened, which the
// position itself does not carry.
type holding struct {
	position *types.Position
	openedAt time.Time
}

// PaperVenue is an in-memory execution venue. It consumes instructions against
// the bar they were priced on, maintains cash and positions, and implements
// strategy.EvaluationContext so a composer can run against it directly.
//
// All money math goes through shopspring/decimal to keep cash balances exact.
type PaperVenue struct {
	log        *logger.Logger
	commission CommissionFee

	initialCapital float64
	cash           decimal.Decimal

	// holdings keeps FIFO order per code; closes consume oldest first.
	holdings  map[string][]*holding
	lastPrice map[string]float64

	completed []types.CompletedTransaction
}

func NewPaperVenue(initialCapital float64, commission CommissionFee, log *logger.Logger) *PaperVenue {
	return &PaperVenue{
		log:            log,
		commission:     commission,
		initialCapital: initialCapital,
		cash:           decimal.NewFromFloat(initialCapital),
		holdings:       make(map[string][]*holding),
		lastPrice:      make(map[string]float64),
		completed:      nil,
	}
}

// MarkPrice records the latest tradable price for a code. Equity valuation
// uses the last marked price. Invalid bars are ignored.
func (v *PaperVenue) MarkPrice(code string, bar types.Bar) {
	if !bar.IsValid() {
		return
	}

	v.lastPrice[code] = bar.Close
}

// Execute fills one instruction at the close of the given bar and returns the
// resulting transaction. Business failures (insufficient cash or volume) come
// back as a failed transaction together with the typed error, so the caller
// can still report the outcome to the composer.
func (v *PaperVenue) Execute(instruction *types.Instruction, bar types.Bar) (types.Transaction, error) {
	if err := instruction.Validate(); err != nil {
		return v.failed(instruction, bar), err
	}

	if !bar.IsValid() {
		return v.failed(instruction, bar), errors.Newf(errors.ErrCodeNoMarketData,
			"no tradable bar for %s", instruction.Object.Code)
	}

	v.MarkPrice(instruction.Object.Code, bar)

	switch instruction.Action {
	case types.InstructionActionOpenLong:
		return v.executeOpen(instruction, bar)
	case types.InstructionActionCloseLong:
		return v.executeClose(instruction, bar)
	}

	return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInvalidInstruction,
		"unsupported action %s", instruction.Action)
}

func (v *PaperVenue) executeOpen(instruction *types.Instruction, bar types.Bar) (types.Transaction, error) {
	code := instruction.Object.Code
	price := bar.Close
	volume := instruction.Volume

	fee := v.commission.Calculate(volume, price)
	cost := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(volume)).
		Add(decimal.NewFromFloat(fee))

	if cost.GreaterThan(v.cash) {
		return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInsufficientBuyingPower,
			"opening %d of %s costs %s but only %s is available",
			volume, code, cost.StringFixed(2), v.cash.StringFixed(2))
	}

	v.cash = v.cash.Sub(cost)

	position := types.NewPosition(code, uuid.New().String(), price, volume)
	v.holdings[code] = append(v.holdings[code], &holding{
		position: position,
		openedAt: bar.Time,
	})

	v.log.Debug("Opened position",
		zap.String("code", code),
		zap.String("position", position.ID()),
		zap.Float64("price", price),
		zap.Int64("volume", volume),
	)

	return types.Transaction{
		InstructionID:  instruction.ID,
		Code:           code,
		Action:         instruction.Action,
		Succeeded:      true,
		ExecutedPrice:  price,
		ExecutedVolume: volume,
		Commission:     fee,
		ExecutedAt:     bar.Time,
	}, nil
}

func (v *PaperVenue) executeClose(instruction *types.Instruction, bar types.Bar) (types.Transaction, error) {
	code := instruction.Object.Code
	price := bar.Close

	switch instruction.SellingType {
	case types.SellingTypeByVolume:
		held := v.heldVolume(code)
		if instruction.Volume > held {
			return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInsufficientVolume,
				"close of %d for %s exceeds held volume %d", instruction.Volume, code, held)
		}

		return v.closeVolume(instruction, bar, instruction.Volume)

	case types.SellingTypeByStopLossPrice:
		// The venue re-selects the breached positions at execution time, so a
		// stop-loss close never touches positions whose floor held.
		var selected int64

		for _, h := range v.holdings[code] {
			stop := h.position.StopLossPrice()
			if stop.IsSome() && stop.Unwrap() > price {
				selected += h.position.Volume()
			}
		}

		if selected == 0 {
			return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInsufficientVolume,
				"no position of %s sits below its stop-loss floor at %.4f", code, price)
		}

		return v.closeWhere(instruction, bar, func(h *holding) bool {
			stop := h.position.StopLossPrice()

			return stop.IsSome() && stop.Unwrap() > price
		})

	case types.SellingTypeByPositionID:
		id := instruction.PositionID.Unwrap()

		found := false
		for _, h := range v.holdings[code] {
			if h.position.ID() == id {
				found = true

				break
			}
		}

		if !found {
			return v.failed(instruction, bar), errors.Newf(errors.ErrCodePositionNotFound,
				"close references unknown position %s for %s", id, code)
		}

		return v.closeWhere(instruction, bar, func(h *holding) bool {
			return h.position.ID() == id
		})
	}

	return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInvalidInstruction,
		"close instruction carries unknown selling type %q", instruction.SellingType)
}

// closeVolume consumes the requested volume FIFO across the code's holdings.
func (v *PaperVenue) closeVolume(instruction *types.Instruction, bar types.Bar, volume int64) (types.Transaction, error) {
	remaining := volume

	return v.settle(instruction, bar, func(h *holding) int64 {
		if remaining <= 0 {
			return 0
		}

		take := h.position.Volume()
		if take > remaining {
			take = remaining
		}

		remaining -= take

		return take
	})
}

// closeWhere closes the full volume of every holding matching the predicate.
func (v *PaperVenue) closeWhere(instruction *types.Instruction, bar types.Bar, match func(*holding) bool) (types.Transaction, error) {
	return v.settle(instruction, bar, func(h *holding) int64 {
		if match(h) {
			return h.position.Volume()
		}

		return 0
	})
}

// settle runs the shared close path: take decides per holding how much volume
// to consume, commission is apportioned across round-trips by volume, and the
// proceeds land in cash.
func (v *PaperVenue) settle(instruction *types.Instruction, bar types.Bar, take func(*holding) int64) (types.Transaction, error) {
	code := instruction.Object.Code
	price := bar.Close

	type chunk struct {
		h      *holding
		volume int64
	}

	var (
		chunks   []chunk
		executed int64
	)

	for _, h := range v.holdings[code] {
		taken := take(h)
		if taken <= 0 {
			continue
		}

		chunks = append(chunks, chunk{h: h, volume: taken})
		executed += taken
	}

	if executed == 0 {
		return v.failed(instruction, bar), errors.Newf(errors.ErrCodeInsufficientVolume,
			"nothing to close for %s", code)
	}

	fee := v.commission.Calculate(executed, price)
	feeDec := decimal.NewFromFloat(fee)

	var kept []*holding

	consumed := make(map[*holding]int64, len(chunks))
	for _, c := range chunks {
		consumed[c.h] = c.volume
	}

	for _, h := range v.holdings[code] {
		taken, ok := consumed[h]
		if !ok {
			kept = append(kept, h)

			continue
		}

		// Apportion the order commission across round-trips by volume.
		chunkFee, _ := feeDec.
			Mul(decimal.NewFromInt(taken)).
			Div(decimal.NewFromInt(executed)).
			Float64()

		v.completed = append(v.completed, types.CompletedTransaction{
			Code:       code,
			BuyPrice:   h.position.BuyPrice(),
			SoldPrice:  price,
			Volume:     taken,
			Commission: chunkFee,
			BoughtAt:   h.openedAt,
			SoldAt:     bar.Time,
		})

		leftover := h.position.Volume() - taken
		if leftover > 0 {
			// Rebuild the partially consumed position with its remaining
			// volume, carrying the stop-loss floor over.
			replacement := types.NewPosition(code, h.position.ID(), h.position.BuyPrice(), leftover)
			if stop := h.position.StopLossPrice(); stop.IsSome() {
				replacement.InitStopLossPrice(stop.Unwrap())
			}

			kept = append(kept, &holding{position: replacement, openedAt: h.openedAt})
		}
	}

	if len(kept) == 0 {
		delete(v.holdings, code)
	} else {
		v.holdings[code] = kept
	}

	proceeds := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(executed)).
		Sub(feeDec)
	v.cash = v.cash.Add(proceeds)

	v.log.Debug("Closed volume",
		zap.String("code", code),
		zap.Float64("price", price),
		zap.Int64("volume", executed),
		zap.Float64("commission", fee),
	)

	return types.Transaction{
		InstructionID:  instruction.ID,
		Code:           code,
		Action:         instruction.Action,
		Succeeded:      true,
		ExecutedPrice:  price,
		ExecutedVolume: executed,
		Commission:     fee,
		ExecutedAt:     bar.Time,
	}, nil
}

func (v *PaperVenue) failed(instruction *types.Instruction, bar types.Bar) types.Transaction {
	return types.Transaction{
		InstructionID:  instruction.ID,
		Code:           instruction.Object.Code,
		Action:         instruction.Action,
		Succeeded:      false,
		ExecutedPrice:  0,
		ExecutedVolume: 0,
		Commission:     0,
		ExecutedAt:     bar.Time,
	}
}

func (v *PaperVenue) heldVolume(code string) int64 {
	var total int64
	for _, h := range v.holdings[code] {
		total += h.position.Volume()
	}

	return total
}

// GetCurrentEquity implements strategy.EvaluationContext.
func (v *PaperVenue) GetCurrentEquity(period time.Time, method types.EquityMethod) (float64, error) {
	switch method {
	case types.EquityMethodCashOnly:
		result, _ := v.cash.Float64()

		return result, nil

	case types.EquityMethodInitial:
		return v.initialCapital, nil

	case types.EquityMethodTotal:
		equity := v.cash

		for code, holdings := range v.holdings {
			price, ok := v.lastPrice[code]
			if !ok {
				return 0, errors.Newf(errors.ErrCodeNoMarketData,
					"no marked price for held code %s", code)
			}

			for _, h := range holdings {
				equity = equity.Add(decimal.NewFromFloat(price).
					Mul(decimal.NewFromInt(h.position.Volume())))
			}
		}

		result, _ := equity.Float64()

		return result, nil

	case types.EquityMethodRiskAdjusted:
		// Positions are valued at their stop-loss floor, the worst case the
		// strategy has accepted. An uninitialized floor falls back to the
		// entry price.
		equity := v.cash

		for _, holdings := range v.holdings {
			for _, h := range holdings {
				value := h.position.BuyPrice()
				if stop := h.position.StopLossPrice(); stop.IsSome() {
					value = stop.Unwrap()
				}

				equity = equity.Add(decimal.NewFromFloat(value).
					Mul(decimal.NewFromInt(h.position.Volume())))
			}
		}

		result, _ := equity.Float64()

		return result, nil
	}

	return 0, errors.Newf(errors.ErrCodeInvalidParameter, "unknown equity method %q", method)
}

// ExistsPosition implements strategy.EvaluationContext.
func (v *PaperVenue) ExistsPosition(code string) bool {
	return v.heldVolume(code) > 0
}

// GetPositionDetails implements strategy.EvaluationContext.
func (v *PaperVenue) GetPositionDetails(code string) []*types.Position {
	holdings := v.holdings[code]
	if len(holdings) == 0 {
		return nil
	}

	positions := make([]*types.Position, 0, len(holdings))
	for _, h := range holdings {
		positions = append(positions, h.position)
	}

	return positions
}

// Log implements strategy.EvaluationContext.
func (v *PaperVenue) Log(message string) {
	v.log.Info(message)
}

// Cash returns the free cash balance.
func (v *PaperVenue) Cash() float64 {
	result, _ := v.cash.Float64()

	return result
}

// CompletedTransactions returns every round-trip closed so far, in close order.
func (v *PaperVenue) CompletedTransactions() []types.CompletedTransaction {
	return v.completed
}
