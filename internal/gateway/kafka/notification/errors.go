package notification

import "errors"

var ErrQueueUnavailable = errors.New("notification queue unavailable")
