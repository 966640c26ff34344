package wordpress

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDisabled means the integration was switched off in configuration.
	ErrDisabled = errors.New("wordpress integration is disabled")
	// ErrUnconfigured means no API URL was configured.
	ErrUnconfigured = errors.New("wordpress api url is not configured")
	// ErrUnreachable covers network failures, timeouts and a failed availability probe.
	ErrUnreachable = errors.New("wordpress api is unreachable")
	// ErrDecode means the response body was not the expected JSON.
	ErrDecode = errors.New("malformed wordpress response")
	// ErrEmpty means the backend answered with no items.
	ErrEmpty = errors.New("wordpress returned no items")

	errProbeFailed = fmt.Errorf("%w: availability probe failed", ErrUnreachable)
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wordpress returned %s", e.Status)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
