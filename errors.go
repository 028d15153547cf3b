package tracker

import (
	"errors"
	"fmt"
)

// Error Variables
type TrackerError error

var (
	ErrInvalidArgument TrackerError = errors.New("invalid argument")
	ErrNetworkRequest  TrackerError = errors.New("failed network request")
	ErrFailedLogEvent  TrackerError = errors.New("failed to log events")
)

// InvalidArgumentError is returned by Subject setters given a value their
// contract disallows. The previous field value is retained.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument for %s: %s", e.Field, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

type RequestMetadata struct {
	StatusCode int
	Endpoint   string
	Retries    int
}

type TransportError struct {
	RequestMetadata *RequestMetadata
	Err             error
}

func (e *TransportError) Error() string {
	if e.RequestMetadata != nil {
		return fmt.Sprintf("Failed request to %s after %d retries: %s", e.RequestMetadata.Endpoint, e.RequestMetadata.Retries, e.Err.Error())
	} else {
		return e.Err.Error()
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrNetworkRequest }

type LogEventError struct {
	Err    error
	Events int
}

func (e *LogEventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to log %d events: %s", e.Events, e.Err.Error())
	} else {
		return fmt.Sprintf("Failed to log %d events", e.Events)
	}
}

func (e *LogEventError) Unwrap() error { return e.Err }

func (e *LogEventError) Is(target error) bool { return target == ErrFailedLogEvent }
