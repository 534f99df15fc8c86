package model

// WriteFileResult is the outcome of a single Write call.
// An empty ErrorMessages list means the write succeeded.
type WriteFileResult struct {
	ErrorMessages []string `json:"error_messages"`
}

// NewWriteFileResult returns a result holding the given messages in order.
func NewWriteFileResult(messages ...string) WriteFileResult {
	out := make([]string, len(messages))
	copy(out, messages)
	return WriteFileResult{ErrorMessages: out}
}

// HadError reports whether the write failed.
func (r WriteFileResult) HadError() bool {
	return len(r.ErrorMessages) > 0
}
