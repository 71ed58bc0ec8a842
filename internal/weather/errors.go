package weather

import (
	"errors"
	"fmt"
)

// InputError is a caller-correctable problem with the request; no upstream is contacted.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UpstreamError is a failed call to an external provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s provider returned status code: %d (%v)", e.Provider, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s provider returned status code: %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s provider request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
