package mocks

//go:generate mockgen -destination=./mock_strategy.go -package=mocks github.com/rxtech-lab/argo-compose/internal/strategy Component,MarketEntering,MarketExiting,StopLoss,PositionSizing,EvaluationContext
