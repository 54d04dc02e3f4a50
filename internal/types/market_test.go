package types

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) TestTradingObjectValidate() {
	object := TradingObject{
		Code:                "600000",
		VolumePerBuyingUnit: 100,
	}

	suite.NoError(object.Validate())
}

func (suite *MarketTestSuite) TestTradingObjectMissingCode() {
	object := TradingObject{
		VolumePerBuyingUnit: 100,
	}

	err := object.Validate()
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidTradingObject, errors.GetCode(err))
}

func (suite *MarketTestSuite) TestTradingObjectNonPositiveUnit() {
	object := TradingObject{
		Code: "600000",
	}

	suite.Error(object.Validate())
}

func (suite *MarketTestSuite) TestBarValidity() {
	bar := Bar{
		Time:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Open:   10.0,
		High:   10.5,
		Low:    9.8,
		Close:  10.2,
		Volume: 120000,
		Valid:  true,
	}
	suite.True(bar.IsValid())

	suspended := Bar{Time: bar.Time}
	suite.False(suspended.IsValid())
}
