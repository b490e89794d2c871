package paretogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/paretogo/container"
)

// ErrInvalidDimension indicates an invalid configured dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrInvalidFanout indicates an invalid tree fanout configuration.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidFanout struct {
	Min   int
	Max   int
	cause error
}

func (e *ErrInvalidFanout) Error() string {
	return fmt.Sprintf("invalid fanout: min %d, max %d", e.Min, e.Max)
}

func (e *ErrInvalidFanout) Unwrap() error { return e.cause }

// ErrInvalidDirections indicates a directions vector whose length does not
// match the configured dimensionality.
type ErrInvalidDirections struct {
	Directions int
	Dimension  int
}

func (e *ErrInvalidDirections) Error() string {
	return fmt.Sprintf("invalid directions: %d directions for %d dimensions", e.Directions, e.Dimension)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var id *container.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}
	var f *container.ErrInvalidFanout
	if errors.As(err, &f) {
		return &ErrInvalidFanout{Min: f.Min, Max: f.Max, cause: err}
	}

	return err
}
