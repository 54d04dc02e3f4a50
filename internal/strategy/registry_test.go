package strategy

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"github.com/stretchr/testify/suite"
)

// baseComponent provides the Component lifecycle with no decision capability.
type baseComponent struct {
	name string
}

func (c *baseComponent) Initialize(params map[string]string) error { return nil }

func (c *baseComponent) OnPeriodStart(t time.Time) error { return nil }

func (c *baseComponent) Feed(object types.TradingObject, bar types.Bar) error { return nil }

func (c *baseComponent) OnPeriodEnd() error { return nil }

func (c *baseComponent) Finish() error { return nil }

func (c *baseComponent) Name() string { return c.name }

type enteringComponent struct{ baseComponent }

func (c *enteringComponent) CanEnter(object types.TradingObject) (bool, string) {
	return true, "ok"
}

type exitingComponent struct{ baseComponent }

func (c *exitingComponent) ShouldExit(object types.TradingObject) (bool, string) {
	return false, ""
}

type stopLossComponent struct{ baseComponent }

func (c *stopLossComponent) EstimateGap(object types.TradingObject, price float64) float64 {
	return -1.0
}

type sizingComponent struct{ baseComponent }

func (c *sizingComponent) EstimateSize(object types.TradingObject, price float64, gap float64, totalCandidateCount int) int64 {
	return 100
}

func (c *sizingComponent) ShouldAdjustPosition() AdjustmentDecision {
	return AdjustmentDecision{}
}

// allInOneComponent implements every capability at once.
type allInOneComponent struct {
	enteringComponent
}

func (c *allInOneComponent) ShouldExit(object types.TradingObject) (bool, string) { return false, "" }

func (c *allInOneComponent) EstimateGap(object types.TradingObject, price float64) float64 {
	return -2.0
}

func (c *allInOneComponent) EstimateSize(object types.TradingObject, price float64, gap float64, totalCandidateCount int) int64 {
	return 200
}

func (c *allInOneComponent) ShouldAdjustPosition() AdjustmentDecision {
	return AdjustmentDecision{}
}

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) fullComponentSet() []Component {
	return []Component{
		&enteringComponent{baseComponent{name: "entering"}},
		&exitingComponent{baseComponent{name: "exiting"}},
		&stopLossComponent{baseComponent{name: "stop_loss"}},
		&sizingComponent{baseComponent{name: "sizing"}},
	}
}

func (suite *RegistryTestSuite) TestFullSetConstructs() {
	registry, err := NewRegistry(suite.fullComponentSet())
	suite.Require().NoError(err)
	suite.Len(registry.Components(), 4)
	suite.Len(registry.MarketEntering(), 1)
	suite.Len(registry.MarketExiting(), 1)
	suite.NotNil(registry.StopLoss())
	suite.NotNil(registry.PositionSizing())
}

func (suite *RegistryTestSuite) TestEmptySetFails() {
	registry, err := NewRegistry(nil)
	suite.Nil(registry)
	suite.Error(err)
	suite.Equal(errors.ErrCodeEmptyComponentSet, errors.GetCode(err))
}

func (suite *RegistryTestSuite) TestMissingStopLossFails() {
	components := []Component{
		&enteringComponent{baseComponent{name: "entering"}},
		&exitingComponent{baseComponent{name: "exiting"}},
		&sizingComponent{baseComponent{name: "sizing"}},
	}

	registry, err := NewRegistry(components)
	suite.Nil(registry)
	suite.Equal(errors.ErrCodeMissingComponent, errors.GetCode(err))
}

func (suite *RegistryTestSuite) TestDuplicateSizingFails() {
	components := append(suite.fullComponentSet(), Component(&sizingComponent{baseComponent{name: "sizing2"}}))

	registry, err := NewRegistry(components)
	suite.Nil(registry)
	suite.Error(err)
	suite.Equal(errors.ErrCodeDuplicateComponent, errors.GetCode(err))
}

func (suite *RegistryTestSuite) TestDuplicateStopLossFails() {
	components := append(suite.fullComponentSet(), Component(&stopLossComponent{baseComponent{name: "stop_loss2"}}))

	registry, err := NewRegistry(components)
	suite.Nil(registry)
	suite.Equal(errors.ErrCodeDuplicateComponent, errors.GetCode(err))
}

func (suite *RegistryTestSuite) TestMissingEnteringFails() {
	components := []Component{
		&exitingComponent{baseComponent{name: "exiting"}},
		&stopLossComponent{baseComponent{name: "stop_loss"}},
		&sizingComponent{baseComponent{name: "sizing"}},
	}

	registry, err := NewRegistry(components)
	suite.Nil(registry)
	suite.Equal(errors.ErrCodeMissingComponent, errors.GetCode(err))
}

func (suite *RegistryTestSuite) TestMultiCapabilityComponentFillsEveryRole() {
	all := &allInOneComponent{enteringComponent{baseComponent{name: "all"}}}

	registry, err := NewRegistry([]Component{all})
	suite.Require().NoError(err)
	suite.Len(registry.Components(), 1)
	suite.Len(registry.MarketEntering(), 1)
	suite.Len(registry.MarketExiting(), 1)
	suite.Equal("all", registry.StopLoss().Name())
	suite.Equal("all", registry.PositionSizing().Name())
}

func (suite *RegistryTestSuite) TestEnteringOrderPreserved() {
	first := &enteringComponent{baseComponent{name: "first"}}
	second := &enteringComponent{baseComponent{name: "second"}}
	components := []Component{
		first,
		second,
		&exitingComponent{baseComponent{name: "exiting"}},
		&stopLossComponent{baseComponent{name: "stop_loss"}},
		&sizingComponent{baseComponent{name: "sizing"}},
	}

	registry, err := NewRegistry(components)
	suite.Require().NoError(err)
	suite.Equal("first", registry.MarketEntering()[0].Name())
	suite.Equal("second", registry.MarketEntering()[1].Name())
}
