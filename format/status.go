package format

// Status is the single-byte result code returned by engine boundary
// operations. Zero means success; hosts embedding the engine map these
// codes across the call boundary unchanged.
type Status uint8

const (
	// StatusOk indicates the operation completed successfully.
	StatusOk Status = 0
	// StatusNeedFlush is reserved for partial-commit backpressure.
	StatusNeedFlush Status = 1
	// StatusInputLimitExceeded indicates the commit would exceed the configured input limit.
	StatusInputLimitExceeded Status = 2
	// StatusEngineSealed indicates the engine has been finalized and accepts no more input.
	StatusEngineSealed Status = 3
	// StatusInvalidHandle indicates the engine was destroyed or the generation does not match.
	StatusInvalidHandle Status = 4
	// StatusObjectKeyLimitExceeded indicates the distinct-key count exceeded the configured limit.
	StatusObjectKeyLimitExceeded Status = 5
	// StatusArrayTooLarge is reserved for the full-LCS array mode.
	StatusArrayTooLarge Status = 6
	// StatusError is a generic parser failure; the diagnostic is available via LastError.
	StatusError Status = 255
)

// IsOK reports whether the operation succeeded.
func (s Status) IsOK() bool {
	return s == StatusOk
}

// IsRecoverable reports whether the operation can be retried after handling.
func (s Status) IsRecoverable() bool {
	return s == StatusNeedFlush
}

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusNeedFlush:
		return "NeedFlush"
	case StatusInputLimitExceeded:
		return "InputLimitExceeded"
	case StatusEngineSealed:
		return "EngineSealed"
	case StatusInvalidHandle:
		return "InvalidHandle"
	case StatusObjectKeyLimitExceeded:
		return "ObjectKeyLimitExceeded"
	case StatusArrayTooLarge:
		return "ArrayTooLarge"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}
