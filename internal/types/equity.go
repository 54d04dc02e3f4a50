package types

// EquityMethod selects how the evaluation context values the portfolio.
type EquityMethod string

const (
	// EquityMethodCashOnly values only the free cash balance.
	EquityMethodCashOnly EquityMethod = "cash_only"
	// EquityMethodTotal values cash plus open positions at the latest price.
	EquityMethodTotal EquityMethod = "total"
	// EquityMethodRiskAdjusted values open positions at their stop-loss price
	// instead of the latest price.
	EquityMethodRiskAdjusted EquityMethod = "risk_adjusted"
	// EquityMethodInitial always reports the initial capital.
	EquityMethodInitial EquityMethod = "initial"
)

// AllEquityMethods lists every method for schema generation.
var AllEquityMethods = []any{
	EquityMethodCashOnly,
	EquityMethodTotal,
	EquityMethodRiskAdjusted,
	EquityMethodInitial,
}
