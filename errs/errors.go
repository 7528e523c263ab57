// Package errs defines sentinel errors shared across diffcore packages.
//
// Errors are wrapped with fmt.Errorf("%w: ...") at the call site to attach
// context while keeping errors.Is checks working.
package errs

import "errors"

var (
	// ErrInvalidConfig indicates the binary configuration record is malformed.
	ErrInvalidConfig = errors.New("invalid engine configuration")

	// ErrConfigTooShort indicates a non-empty configuration record shorter than the fixed layout.
	ErrConfigTooShort = errors.New("configuration record too short")

	// ErrInvalidArrayMode indicates an unknown array diff mode byte.
	ErrInvalidArrayMode = errors.New("invalid array diff mode")

	// ErrInvalidComputeMode indicates an unknown compute mode byte.
	ErrInvalidComputeMode = errors.New("invalid compute mode")

	// ErrInputLimitExceeded indicates a commit would exceed the configured input limit.
	ErrInputLimitExceeded = errors.New("input size limit exceeded")

	// ErrObjectKeyLimitExceeded indicates an object declared more keys than allowed.
	ErrObjectKeyLimitExceeded = errors.New("object key limit exceeded")

	// ErrArrayTooLarge indicates an array exceeds the limit of the selected diff mode.
	ErrArrayTooLarge = errors.New("array too large for selected diff mode")

	// ErrMemoryLimitExceeded indicates the result buffer hit the configured memory limit.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

	// ErrEngineSealed indicates an operation on an engine that has been finalized.
	ErrEngineSealed = errors.New("engine sealed, no more input accepted")

	// ErrInvalidHandle indicates an operation on a destroyed engine.
	ErrInvalidHandle = errors.New("invalid engine handle")

	// ErrIncompleteInput indicates the scanner hit the end of a chunk inside a token.
	ErrIncompleteInput = errors.New("incomplete JSON input")

	// ErrInvalidHeaderSize indicates a result header slice of the wrong size.
	ErrInvalidHeaderSize = errors.New("invalid result header size")

	// ErrInvalidEntrySize indicates a diff entry slice of the wrong size.
	ErrInvalidEntrySize = errors.New("invalid diff entry size")

	// ErrUnsupportedVersion indicates a result buffer with an incompatible major version.
	ErrUnsupportedVersion = errors.New("unsupported result format version")

	// ErrInvalidResultBuffer indicates a result buffer that fails structural validation.
	ErrInvalidResultBuffer = errors.New("invalid result buffer")
)
