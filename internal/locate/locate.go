// Package locate abstracts acquisition of the user's position.
package locate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

// Typed acquisition failures.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
	ErrTimeout          = errors.New("location request timed out")
)

// Provider resolves the user's position. A single call either returns
// coordinates or one of the typed failures; it must respect ctx.
type Provider interface {
	Locate(ctx context.Context) (model.Coordinates, error)
}

// Static resolves to a fixed position from configuration.
type Static struct {
	Coordinates model.Coordinates
	Configured  bool
}

// Locate returns the configured position, or ErrUnavailable when none is set.
func (s Static) Locate(ctx context.Context) (model.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return model.Coordinates{}, err
	}
	if !s.Configured {
		return model.Coordinates{}, ErrUnavailable
	}
	return s.Coordinates, nil
}

// ErrorMessage maps an acquisition failure to the user-visible text.
func ErrorMessage(err error) string {
	switch errors.Cause(err) {
	case ErrPermissionDenied:
		return "Location access was denied. Please enable location access in your settings."
	case ErrUnavailable:
		return "Location information is unavailable."
	case ErrTimeout, context.DeadlineExceeded:
		return "The request to get your location timed out."
	default:
		return "An unknown error occurred while getting your location."
	}
}
