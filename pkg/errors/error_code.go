package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidInstruction   ErrorCode = 102
	ErrCodeInvalidBar           ErrorCode = 103
	ErrCodeInvalidTradingObject ErrorCode = 104
	ErrCodeInvalidVersion       ErrorCode = 105

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound ErrorCode = 200
	ErrCodeQueryFailed  ErrorCode = 201

	// Strategy configuration errors (400-499)
	ErrCodeEmptyComponentSet    ErrorCode = 400
	ErrCodeMissingComponent     ErrorCode = 401
	ErrCodeDuplicateComponent   ErrorCode = 402
	ErrCodeComponentInitFailed  ErrorCode = 403
	ErrCodeEvaluationContextNil ErrorCode = 404

	// Protocol violations (500-599). These indicate a bug in a collaborating
	// component or in the caller and always abort the current call.
	ErrCodeUnknownInstruction  ErrorCode = 500
	ErrCodePositionNotFound    ErrorCode = 501
	ErrCodeNonNegativeStopGap  ErrorCode = 502
	ErrCodeEngineNotReady      ErrorCode = 503
	ErrCodeEngineFinished      ErrorCode = 504
	ErrCodeOutOfOrderOperation ErrorCode = 505

	// Execution venue errors (600-699)
	ErrCodeInsufficientBuyingPower ErrorCode = 600
	ErrCodeInsufficientVolume      ErrorCode = 601
	ErrCodeNoMarketData            ErrorCode = 602
)
