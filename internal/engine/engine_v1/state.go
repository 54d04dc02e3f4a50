package engine

// composerState tracks where the engine sits inside the per-period protocol.
// Transitions are driven entirely by the bracketing calls; see Composer.
type composerState string

const (
	stateUninitialized    composerState = "uninitialized"
	stateInitialized      composerState = "initialized"
	statePeriodEvaluating composerState = "period_evaluating"
	statePeriodAfterEval  composerState = "period_after_eval"
	statePeriodRetrieved  composerState = "period_retrieved"
	statePeriodIdle       composerState = "period_idle"
	stateFinished         composerState = "finished"
)

// inPeriod reports whether a period is currently open (StartPeriod called,
// EndPeriod not yet).
func (s composerState) inPeriod() bool {
	switch s {
	case statePeriodEvaluating, statePeriodAfterEval, statePeriodRetrieved:
		return true
	case stateUninitialized, stateInitialized, statePeriodIdle, stateFinished:
		return false
	}

	return false
}

// canStartPeriod reports whether StartPeriod is legal from this state.
func (s composerState) canStartPeriod() bool {
	return s == stateInitialized || s == statePeriodIdle
}
