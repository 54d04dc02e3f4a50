package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/internal/engine"
	"github.com/rxtech-lab/argo-compose/internal/logger"
	"github.com/rxtech-lab/argo-compose/internal/strategy"
	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ComposerV1 composes independently-authored strategy components into one
// per-period decision pipeline. It owns the per-period buffers and the
// active-instruction mapping; the caller serializes all calls.
type ComposerV1 struct {
	config   ComposerV1Config
	registry *strategy.Registry
	log      *logger.Logger
	evalCtx  strategy.EvaluationContext

	state         composerState
	currentPeriod time.Time

	// nextInstructionID is engine-owned so that parallel composer instances
	// never collide on instruction IDs.
	nextInstructionID int64

	// Per-period buffers, reset by StartPeriod.
	pending     []*types.Instruction
	barCache    map[string]types.Bar
	objectCache map[string]types.TradingObject
	retrieved   bool

	// active maps instruction ID to every retrieved, not yet resolved
	// instruction.
	active map[int64]*types.Instruction
}

// NewComposerV1 creates a composer from an already-parsed configuration.
func NewComposerV1(config ComposerV1Config, registry *strategy.Registry, log *logger.Logger) (engine.Composer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if registry == nil {
		return nil, errors.New(errors.ErrCodeEmptyComponentSet, "strategy requires a component registry")
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return &ComposerV1{
		config:            config,
		registry:          registry,
		log:               log,
		evalCtx:           nil,
		state:             stateUninitialized,
		currentPeriod:     time.Time{},
		nextInstructionID: 0,
		pending:           nil,
		barCache:          make(map[string]types.Bar),
		objectCache:       make(map[string]types.TradingObject),
		retrieved:         false,
		active:            make(map[int64]*types.Instruction),
	}, nil
}

// NewComposerV1FromYAML creates a composer from a YAML configuration string.
func NewComposerV1FromYAML(configYAML string, registry *strategy.Registry, log *logger.Logger) (engine.Composer, error) {
	config := EmptyConfig()
	if err := yaml.Unmarshal([]byte(configYAML), &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse composer config", err)
	}

	return NewComposerV1(config, registry, log)
}

// Initialize implements engine.Composer.
func (c *ComposerV1) Initialize(ctx strategy.EvaluationContext, params map[string]string) error {
	if c.state != stateUninitialized {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "initialize called in state %s", c.state)
	}

	if ctx == nil {
		return errors.New(errors.ErrCodeEvaluationContextNil, "evaluation context is required")
	}

	// Re-validate the role cardinalities before any period operation runs.
	if err := c.registry.Validate(); err != nil {
		return err
	}

	for _, component := range c.registry.Components() {
		if err := component.Initialize(params); err != nil {
			return errors.Wrapf(errors.ErrCodeComponentInitFailed, err,
				"failed to initialize component %s", component.Name())
		}
	}

	c.evalCtx = ctx
	c.state = stateInitialized

	c.log.Debug("Composer initialized",
		zap.String("strategy", c.config.StrategyName),
		zap.Int("components", len(c.registry.Components())),
	)

	return nil
}

// WarmUp implements engine.Composer. Bars replayed here never produce
// instructions.
func (c *ComposerV1) WarmUp(object types.TradingObject, bar types.Bar) error {
	if c.state != stateInitialized {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "warm-up called in state %s", c.state)
	}

	if !bar.IsValid() {
		return nil
	}

	return c.feedComponents(object, bar)
}

// StartPeriod implements engine.Composer.
func (c *ComposerV1) StartPeriod(t time.Time) error {
	if !c.state.canStartPeriod() {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "start period called in state %s", c.state)
	}

	c.currentPeriod = t
	c.pending = nil
	c.barCache = make(map[string]types.Bar)
	c.objectCache = make(map[string]types.TradingObject)
	c.retrieved = false

	for _, component := range c.registry.Components() {
		if err := component.OnPeriodStart(t); err != nil {
			return errors.Wrapf(errors.ErrCodeComponentInitFailed, err,
				"component %s failed to start period", component.Name())
		}
	}

	c.state = statePeriodEvaluating

	c.log.Debug("Period started",
		zap.String("strategy", c.config.StrategyName),
		zap.Time("period", t),
	)

	return nil
}

// Evaluate implements engine.Composer.
func (c *ComposerV1) Evaluate(object types.TradingObject, bar types.Bar) error {
	if c.state != statePeriodEvaluating {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "evaluate called in state %s", c.state)
	}

	// Invalid bars are skipped with no side effects: the object stays absent
	// from this period's caches.
	if !bar.IsValid() {
		return nil
	}

	c.barCache[object.Code] = bar
	c.objectCache[object.Code] = object

	if err := c.feedComponents(object, bar); err != nil {
		return err
	}

	// Absence of a position record is an empty position set, not an error.
	positions := c.evalCtx.GetPositionDetails(object.Code)

	// Priority 1: market exit.
	if len(positions) > 0 {
		exited, err := c.evaluateExit(object, positions)
		if err != nil || exited {
			return err
		}

		// Priority 2: stop loss.
		triggered, err := c.evaluateStopLoss(object, bar, positions)
		if err != nil || triggered {
			return err
		}

		// An object holding positions never attempts a fresh entry.
		return nil
	}

	// Priority 3: market entry, only with zero open positions.
	return c.evaluateEntry(object, bar)
}

// evaluateExit asks every market-exiting component in registration order; the
// first acceptance closes the full summed volume.
func (c *ComposerV1) evaluateExit(object types.TradingObject, positions []*types.Position) (bool, error) {
	for _, exiting := range c.registry.MarketExiting() {
		exit, comment := exiting.ShouldExit(object)
		if !exit {
			continue
		}

		var total int64
		for _, position := range positions {
			total += position.Volume()
		}

		instruction := c.newInstruction(types.InstructionActionCloseLong, object, total)
		instruction.SellingType = types.SellingTypeByVolume
		instruction.Comments = fmt.Sprintf("%s: %s", exiting.Name(), comment)
		c.pending = append(c.pending, instruction)

		c.log.Debug("Exit signalled",
			zap.String("code", object.Code),
			zap.String("component", exiting.Name()),
			zap.Int64("volume", total),
		)

		return true, nil
	}

	return false, nil
}

// evaluateStopLoss aggregates the volume of every position whose stop-loss
// price sits above the close, long-position semantics: the price fell through
// the floor.
func (c *ComposerV1) evaluateStopLoss(object types.TradingObject, bar types.Bar, positions []*types.Position) (bool, error) {
	var total int64

	var triggerPrice float64

	for _, position := range positions {
		stopLoss := position.StopLossPrice()
		if stopLoss.IsNone() {
			continue
		}

		price := stopLoss.Unwrap()
		if price > bar.Close {
			total += position.Volume()

			if price > triggerPrice {
				triggerPrice = price
			}
		}
	}

	if total <= 0 {
		return false, nil
	}

	instruction := c.newInstruction(types.InstructionActionCloseLong, object, total)
	instruction.SellingType = types.SellingTypeByStopLossPrice
	instruction.StopLossPrice = optional.Some(triggerPrice)
	instruction.Comments = fmt.Sprintf("stop loss: price %.4f fell below %.4f", bar.Close, triggerPrice)
	c.pending = append(c.pending, instruction)

	c.log.Debug("Stop loss triggered",
		zap.String("code", object.Code),
		zap.Float64("close", bar.Close),
		zap.Float64("trigger", triggerPrice),
		zap.Int64("volume", total),
	)

	return true, nil
}

// evaluateEntry requires unanimous agreement of every market-entering
// component, short-circuiting on the first refusal.
func (c *ComposerV1) evaluateEntry(object types.TradingObject, bar types.Bar) error {
	var comments strings.Builder

	for i, entering := range c.registry.MarketEntering() {
		allowed, comment := entering.CanEnter(object)
		if !allowed {
			return nil
		}

		if i > 0 {
			comments.WriteString("; ")
		}

		comments.WriteString(entering.Name())
		comments.WriteString(": ")
		comments.WriteString(comment)
	}

	return c.emitBuy(object, bar.Close, comments.String())
}

// emitBuy runs the shared buying-sizing path for fresh entries and for
// adjustment additions.
func (c *ComposerV1) emitBuy(object types.TradingObject, price float64, comments string) error {
	gap := c.registry.StopLoss().EstimateGap(object, price)
	if gap >= 0 {
		return errors.Newf(errors.ErrCodeNonNegativeStopGap,
			"component %s returned stop-loss gap %.4f for %s; a long stop-loss must sit below the entry price",
			c.registry.StopLoss().Name(), gap, object.Code)
	}

	size := c.registry.PositionSizing().EstimateSize(object, price, gap, len(c.objectCache))

	// Round down to the nearest multiple of the minimum tradable unit.
	volume := size - size%object.VolumePerBuyingUnit
	if volume <= 0 {
		return nil
	}

	instruction := c.newInstruction(types.InstructionActionOpenLong, object, volume)
	instruction.Comments = comments
	c.pending = append(c.pending, instruction)

	c.log.Debug("Entry sized",
		zap.String("code", object.Code),
		zap.Float64("price", price),
		zap.Float64("gap", gap),
		zap.Int64("volume", volume),
	)

	return nil
}

// AfterEvaluation implements engine.Composer.
func (c *ComposerV1) AfterEvaluation() error {
	if c.state != statePeriodEvaluating {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "after-evaluation called in state %s", c.state)
	}

	c.state = statePeriodAfterEval

	decision := c.registry.PositionSizing().ShouldAdjustPosition()
	if decision.IsEmpty() {
		return nil
	}

	// Removal takes priority when the component breaks the never-both
	// contract.
	if len(decision.PositionsToRemove) > 0 {
		if len(decision.CodesToAdd) > 0 {
			c.log.Warn("Adjustment decision carried both additions and removals; removals win",
				zap.Int("additions", len(decision.CodesToAdd)),
				zap.Int("removals", len(decision.PositionsToRemove)),
			)
		}

		return c.adjustRemovals(decision.PositionsToRemove)
	}

	return c.adjustAdditions(decision.CodesToAdd)
}

func (c *ComposerV1) adjustRemovals(identifiers []types.PositionIdentifier) error {
	for _, identifier := range identifiers {
		// Referencing a code with no open position at all is a protocol
		// violation, distinct from the tolerated no-bar case below.
		positions := c.evalCtx.GetPositionDetails(identifier.Code)
		if len(positions) == 0 {
			return errors.Newf(errors.ErrCodePositionNotFound,
				"adjustment requested removal for %s which holds no position", identifier.Code)
		}

		object, ok := c.objectCache[identifier.Code]
		if !ok {
			// No valid bar this period: cannot act without a reference price.
			c.log.Debug("Skipping removal without a bar this period",
				zap.String("code", identifier.Code),
			)

			continue
		}

		var target *types.Position

		for _, position := range positions {
			if position.ID() == identifier.PositionID {
				target = position

				break
			}
		}

		if target == nil {
			return errors.Newf(errors.ErrCodePositionNotFound,
				"adjustment references unknown position %s for %s", identifier.PositionID, identifier.Code)
		}

		instruction := c.newInstruction(types.InstructionActionCloseLong, object, target.Volume())
		instruction.SellingType = types.SellingTypeByPositionID
		instruction.PositionID = optional.Some(identifier.PositionID)
		instruction.Comments = fmt.Sprintf("%s: position adjustment", c.registry.PositionSizing().Name())
		c.pending = append(c.pending, instruction)
	}

	return nil
}

func (c *ComposerV1) adjustAdditions(codes []string) error {
	for _, code := range codes {
		if !c.evalCtx.ExistsPosition(code) {
			return errors.Newf(errors.ErrCodePositionNotFound,
				"adjustment requested additional buying for %s which holds no position", code)
		}

		object, ok := c.objectCache[code]
		if !ok {
			c.log.Debug("Skipping addition without a bar this period",
				zap.String("code", code),
			)

			continue
		}

		bar := c.barCache[code]

		comments := fmt.Sprintf("%s: position adjustment", c.registry.PositionSizing().Name())
		if err := c.emitBuy(object, bar.Close, comments); err != nil {
			return err
		}
	}

	return nil
}

// RetrieveInstructions implements engine.Composer. The retrieval sentinel
// makes a second call in the same period return None instead of re-returning
// instructions, preventing duplicate submission.
func (c *ComposerV1) RetrieveInstructions() optional.Option[[]*types.Instruction] {
	if !c.state.inPeriod() || c.retrieved {
		return optional.None[[]*types.Instruction]()
	}

	c.retrieved = true
	c.state = statePeriodRetrieved

	instructions := c.pending
	c.pending = nil

	for _, instruction := range instructions {
		c.active[instruction.ID] = instruction
	}

	c.log.Debug("Instructions retrieved",
		zap.Int("count", len(instructions)),
		zap.Int("active", len(c.active)),
	)

	return optional.Some(instructions)
}

// NotifyTransactionStatus implements engine.Composer.
func (c *ComposerV1) NotifyTransactionStatus(transaction types.Transaction) error {
	if c.state == stateUninitialized {
		return errors.New(errors.ErrCodeEngineNotReady, "transaction notified before initialization")
	}

	if c.state == stateFinished {
		return errors.New(errors.ErrCodeEngineFinished, "transaction notified after finish")
	}

	instruction, ok := c.active[transaction.InstructionID]
	if !ok {
		return errors.Newf(errors.ErrCodeUnknownInstruction,
			"transaction references unknown instruction %d", transaction.InstructionID)
	}

	// The instruction leaves the active mapping regardless of outcome.
	delete(c.active, transaction.InstructionID)

	if !transaction.Succeeded || transaction.Action != types.InstructionActionOpenLong {
		return nil
	}

	// A confirmed open initializes the stop-loss price of every position of
	// the code that does not have one yet, exactly once per position.
	for _, position := range c.evalCtx.GetPositionDetails(transaction.Code) {
		if position.StopLossPrice().IsSome() {
			continue
		}

		gap := c.registry.StopLoss().EstimateGap(instruction.Object, position.BuyPrice())
		if gap >= 0 {
			return errors.Newf(errors.ErrCodeNonNegativeStopGap,
				"component %s returned stop-loss gap %.4f for %s",
				c.registry.StopLoss().Name(), gap, transaction.Code)
		}

		// Prices cannot be negative; clamp the floor at zero.
		stopLossPrice := position.BuyPrice() + gap
		if stopLossPrice < 0 {
			stopLossPrice = 0
		}

		position.InitStopLossPrice(stopLossPrice)

		c.log.Debug("Stop loss initialized",
			zap.String("code", position.Code()),
			zap.String("position", position.ID()),
			zap.Float64("buy_price", position.BuyPrice()),
			zap.Float64("stop_loss", stopLossPrice),
		)
	}

	return nil
}

// EndPeriod implements engine.Composer. Instructions never retrieved this
// period are discarded by contract.
func (c *ComposerV1) EndPeriod() error {
	if !c.state.inPeriod() {
		return errors.Newf(errors.ErrCodeOutOfOrderOperation, "end period called in state %s", c.state)
	}

	if len(c.pending) > 0 {
		c.log.Warn("Discarding instructions never retrieved this period",
			zap.Int("count", len(c.pending)),
		)
	}

	for _, component := range c.registry.Components() {
		if err := component.OnPeriodEnd(); err != nil {
			return errors.Wrapf(errors.ErrCodeComponentInitFailed, err,
				"component %s failed to end period", component.Name())
		}
	}

	c.pending = nil
	c.barCache = make(map[string]types.Bar)
	c.objectCache = make(map[string]types.TradingObject)
	c.state = statePeriodIdle

	return nil
}

// Finish implements engine.Composer. Instructions still active were submitted
// but never confirmed: an operational anomaly worth surfacing, not an engine
// failure.
func (c *ComposerV1) Finish() error {
	if c.state == stateUninitialized {
		return errors.New(errors.ErrCodeEngineNotReady, "finish called before initialization")
	}

	if c.state == stateFinished {
		return errors.New(errors.ErrCodeEngineFinished, "finish called twice")
	}

	for _, component := range c.registry.Components() {
		if err := component.Finish(); err != nil {
			return errors.Wrapf(errors.ErrCodeComponentInitFailed, err,
				"component %s failed to finish", component.Name())
		}
	}

	for id, instruction := range c.active {
		message := fmt.Sprintf("instruction %d (%s %s, volume %d) was submitted but never confirmed",
			id, instruction.Action, instruction.Object.Code, instruction.Volume)
		c.evalCtx.Log(message)

		c.log.Warn("Unresolved instruction at finish",
			zap.Int64("id", id),
			zap.String("code", instruction.Object.Code),
		)
	}

	c.state = stateFinished

	return nil
}

// feedComponents delivers the bar to every owned component regardless of
// capability so indicator state stays current.
func (c *ComposerV1) feedComponents(object types.TradingObject, bar types.Bar) error {
	for _, component := range c.registry.Components() {
		if err := component.Feed(object, bar); err != nil {
			return errors.Wrapf(errors.ErrCodeComponentInitFailed, err,
				"component %s failed to process bar for %s", component.Name(), object.Code)
		}
	}

	return nil
}

func (c *ComposerV1) newInstruction(action types.InstructionAction, object types.TradingObject, volume int64) *types.Instruction {
	c.nextInstructionID++

	return &types.Instruction{
		ID:            c.nextInstructionID,
		Action:        action,
		Object:        object,
		Volume:        volume,
		SubmittedAt:   c.currentPeriod,
		Comments:      "",
		SellingType:   "",
		StopLossPrice: optional.None[float64](),
		PositionID:    optional.None[string](),
	}
}
