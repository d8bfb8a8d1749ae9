package errors

// Code represents an error code
type Code string

// Error codes used by the game. They mirror the gRPC codes the handlers translate to.
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// Reasons refine a code for the game's own taxonomy. They travel in Meta under MetaReason.
const (
	MetaReason = "reason"

	ReasonInsufficientFunds = "insufficient_funds"
	ReasonConfiguration     = "configuration"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
