package types

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type InstructionTestSuite struct {
	suite.Suite
}

func TestInstructionSuite(t *testing.T) {
	suite.Run(t, new(InstructionTestSuite))
}

func (suite *InstructionTestSuite) object() TradingObject {
	return TradingObject{
		Code:                "600000",
		VolumePerBuyingUnit: 100,
	}
}

func (suite *InstructionTestSuite) TestValidOpenLong() {
	instruction := Instruction{
		ID:          1,
		Action:      InstructionActionOpenLong,
		Object:      suite.object(),
		Volume:      300,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Comments:    "entry",
	}

	suite.NoError(instruction.Validate())
}

func (suite *InstructionTestSuite) TestOpenLongWithSellingTypeRejected() {
	instruction := Instruction{
		ID:          1,
		Action:      InstructionActionOpenLong,
		Object:      suite.object(),
		Volume:      300,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		SellingType: SellingTypeByVolume,
	}

	err := instruction.Validate()
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidInstruction, errors.GetCode(err))
}

func (suite *InstructionTestSuite) TestValidCloseByVolume() {
	instruction := Instruction{
		ID:          2,
		Action:      InstructionActionCloseLong,
		Object:      suite.object(),
		Volume:      500,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		SellingType: SellingTypeByVolume,
	}

	suite.NoError(instruction.Validate())
}

func (suite *InstructionTestSuite) TestCloseByStopLossRequiresPrice() {
	instruction := Instruction{
		ID:          3,
		Action:      InstructionActionCloseLong,
		Object:      suite.object(),
		Volume:      500,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		SellingType: SellingTypeByStopLossPrice,
	}

	err := instruction.Validate()
	suite.Error(err)

	instruction.StopLossPrice = optional.Some(9.0)
	suite.NoError(instruction.Validate())
}

func (suite *InstructionTestSuite) TestCloseByPositionIDRequiresID() {
	instruction := Instruction{
		ID:          4,
		Action:      InstructionActionCloseLong,
		Object:      suite.object(),
		Volume:      200,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		SellingType: SellingTypeByPositionID,
	}

	err := instruction.Validate()
	suite.Error(err)

	instruction.PositionID = optional.Some("pos-1")
	suite.NoError(instruction.Validate())
}

func (suite *InstructionTestSuite) TestCloseWithUnknownSellingTypeRejected() {
	instruction := Instruction{
		ID:          5,
		Action:      InstructionActionCloseLong,
		Object:      suite.object(),
		Volume:      200,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		SellingType: SellingType("BY_MOON_PHASE"),
	}

	err := instruction.Validate()
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidInstruction, errors.GetCode(err))
}

func (suite *InstructionTestSuite) TestNonPositiveVolumeRejected() {
	instruction := Instruction{
		ID:          6,
		Action:      InstructionActionOpenLong,
		Object:      suite.object(),
		Volume:      0,
		SubmittedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	suite.Error(instruction.Validate())
}
