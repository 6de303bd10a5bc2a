package service

// ResponseType enumerates the outcomes of a service call
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// Duplicate response - the transaction has already been processed
	Duplicate
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"duplicate",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
