package assist

import "errors"

// ErrEmptyQuery rejects requests whose query is blank after trimming.
var ErrEmptyQuery = errors.New("empty query")

// UpstreamError signals that neither the provider nor the local
// knowledge base could produce an answer.
type UpstreamError struct {
	Message string
	Detail  string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}
