package venue

// CommissionFee calculates the commission charged for executing a trade.
type CommissionFee interface {
	// Calculate returns the fee for executing the given volume at the given
	// price, in the account currency.
	Calculate(volume int64, price float64) float64
}

type Broker string

const (
	BrokerZero     Broker = "zero_commission"
	BrokerPerShare Broker = "per_share"
)

var AllBrokers = []any{
	BrokerZero,
	BrokerPerShare,
}

// GetCommissionFeeHandler returns the fee schedule for the given broker.
// Unknown brokers fall back to zero commission.
func GetCommissionFeeHandler(broker Broker) CommissionFee {
	switch broker {
	case BrokerPerShare:
		return NewPerShareCommissionFee()
	case BrokerZero:
		return NewZeroCommissionFee()
	default:
		return NewZeroCommissionFee()
	}
}

type ZeroCommissionFee struct{}

func NewZeroCommissionFee() CommissionFee {
	return &ZeroCommissionFee{}
}

func (c *ZeroCommissionFee) Calculate(volume int64, price float64) float64 {
	return 0
}

// PerShareCommissionFee charges a flat rate per share with a per-order minimum.
type PerShareCommissionFee struct {
	Rate    float64
	Minimum float64
}

func NewPerShareCommissionFee() CommissionFee {
	return &PerShareCommissionFee{
		Rate:    0.005,
		Minimum: 1.0,
	}
}

func (c *PerShareCommissionFee) Calculate(volume int64, price float64) float64 {
	fee := c.Rate * float64(volume)
	if fee < c.Minimum {
		return c.Minimum
	}

	return fee
}
