package binary

import "fmt"

// ArgumentError is the programmer-error tier of §7's error design: bad
// format parameters, malformed literals, non-interchange pack requests,
// and similar API misuse that never flows through the signal/Context
// dispatch pipeline.
type ArgumentError struct {
	data any
	msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("binary: %s: %v", e.msg, e.data)
}

func newArgumentError(data any, msg string) error {
	return &ArgumentError{data: data, msg: msg}
}
