package bot

import (
	"errors"
	"fmt"
)

// ErrMalformedUpdate marks webhook bodies that cannot be decoded at all.
// Everything else in webhook handling is acknowledged rather than failed.
var ErrMalformedUpdate = errors.New("malformed webhook update")

// NotifyError represents a failed outbound call to the Telegram API.
type NotifyError struct {
	Operation string
	ChatID    int64
	Cause     error
}

func (e NotifyError) Error() string {
	return fmt.Sprintf("telegram %s to chat %d failed: %v", e.Operation, e.ChatID, e.Cause)
}

func (e NotifyError) Unwrap() error {
	return e.Cause
}
