package strategy

import (
	"github.com/rxtech-lab/argo-compose/pkg/errors"
)

// Registry partitions the supplied component set by capability. A component
// may implement several capabilities and is registered into every applicable
// role. Construction enforces the role cardinalities: exactly one StopLoss,
// exactly one PositionSizing, at least one MarketEntering and at least one
// MarketExiting.
type Registry struct {
	components []Component
	entering   []MarketEntering
	exiting    []MarketExiting
	stopLoss   StopLoss
	sizing     PositionSizing
}

// NewRegistry builds a registry from the unordered component list. Capability
// collections keep the registration order of the input.
func NewRegistry(components []Component) (*Registry, error) {
	if len(components) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyComponentSet, "strategy requires at least one component")
	}

	registry := &Registry{
		components: components,
		entering:   nil,
		exiting:    nil,
		stopLoss:   nil,
		sizing:     nil,
	}

	for _, component := range components {
		if entering, ok := component.(MarketEntering); ok {
			registry.entering = append(registry.entering, entering)
		}

		if exiting, ok := component.(MarketExiting); ok {
			registry.exiting = append(registry.exiting, exiting)
		}

		if stopLoss, ok := component.(StopLoss); ok {
			if registry.stopLoss != nil {
				return nil, errors.Newf(errors.ErrCodeDuplicateComponent,
					"duplicate stop-loss component: %s and %s", registry.stopLoss.Name(), stopLoss.Name())
			}

			registry.stopLoss = stopLoss
		}

		if sizing, ok := component.(PositionSizing); ok {
			if registry.sizing != nil {
				return nil, errors.Newf(errors.ErrCodeDuplicateComponent,
					"duplicate position-sizing component: %s and %s", registry.sizing.Name(), sizing.Name())
			}

			registry.sizing = sizing
		}
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return registry, nil
}

// Validate re-checks the role cardinalities. NewRegistry already enforces
// them; Initialize calls this again before any period operation runs.
func (r *Registry) Validate() error {
	if len(r.components) == 0 {
		return errors.New(errors.ErrCodeEmptyComponentSet, "strategy requires at least one component")
	}

	if r.stopLoss == nil {
		return errors.New(errors.ErrCodeMissingComponent, "strategy requires a stop-loss component")
	}

	if r.sizing == nil {
		return errors.New(errors.ErrCodeMissingComponent, "strategy requires a position-sizing component")
	}

	if len(r.entering) == 0 {
		return errors.New(errors.ErrCodeMissingComponent, "strategy requires at least one market-entering component")
	}

	if len(r.exiting) == 0 {
		return errors.New(errors.ErrCodeMissingComponent, "strategy requires at least one market-exiting component")
	}

	return nil
}

// Components returns the full unordered component list for lifecycle fan-out.
func (r *Registry) Components() []Component {
	return r.components
}

// MarketEntering returns the entering components in registration order.
func (r *Registry) MarketEntering() []MarketEntering {
	return r.entering
}

// MarketExiting returns the exiting components in registration order.
func (r *Registry) MarketExiting() []MarketExiting {
	return r.exiting
}

// StopLoss returns the single stop-loss component.
func (r *Registry) StopLoss() StopLoss {
	return r.stopLoss
}

// PositionSizing returns the single position-sizing component.
func (r *Registry) PositionSizing() PositionSizing {
	return r.sizing
}
