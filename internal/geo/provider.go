package geo

import (
	"context"
	"time"
)

// FailureReason classifies why geolocation acquisition failed. The set
// mirrors the browser geolocation error codes plus the unsupported case.
type FailureReason string

const (
	ReasonPermissionDenied FailureReason = "permission_denied"
	ReasonUnavailable      FailureReason = "position_unavailable"
	ReasonTimeout          FailureReason = "timeout"
	ReasonUnsupported      FailureReason = "unsupported"
)

type LocationError struct {
	Reason FailureReason
}

func (e *LocationError) Error() string {
	return string(e.Reason)
}

// Advisory is the user-visible message recorded for a failure reason.
func Advisory(reason FailureReason) string {
	switch reason {
	case ReasonPermissionDenied:
		return "Location access was denied. Showing results near the default area — enable location for nearby mechanics."
	case ReasonUnavailable:
		return "Your location could not be determined. Showing results near the default area."
	case ReasonTimeout:
		return "Locating you took too long. Showing results near the default area."
	case ReasonUnsupported:
		return "Location is not supported on this device. Showing results near the default area."
	default:
		return "Showing results near the default area."
	}
}

// LocationProvider abstracts the device geolocation capability so the
// search and map logic stays testable without a browser environment.
type LocationProvider interface {
	Current(ctx context.Context) (Coord, error)
}

// Fix is the outcome of one acquisition attempt. When acquisition fails the
// coordinate is the configured fallback and Advisory explains why.
type Fix struct {
	Coord        Coord  `json:"coord"`
	UsedFallback bool   `json:"usedFallback"`
	Advisory     string `json:"advisory,omitempty"`
}

type Acquirer struct {
	provider LocationProvider
	fallback Coord
	timeout  time.Duration
}

func NewAcquirer(provider LocationProvider, fallback Coord, timeout time.Duration) *Acquirer {
	return &Acquirer{
		provider: provider,
		fallback: fallback,
		timeout:  timeout,
	}
}

// Acquire requests the current position with a bounded timeout. Every
// failure class falls back to the default coordinate; a manual retry is
// simply another Acquire call.
func (a *Acquirer) Acquire(ctx context.Context) Fix {
	if a.provider == nil {
		return a.fallbackFix(ReasonUnsupported)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	coord, err := a.provider.Current(ctx)
	if err == nil {
		return Fix{Coord: coord}
	}

	if ctx.Err() == context.DeadlineExceeded {
		return a.fallbackFix(ReasonTimeout)
	}
	if le, ok := err.(*LocationError); ok {
		return a.fallbackFix(le.Reason)
	}
	return a.fallbackFix(ReasonUnavailable)
}

func (a *Acquirer) fallbackFix(reason FailureReason) Fix {
	return Fix{
		Coord:        a.fallback,
		UsedFallback: true,
		Advisory:     Advisory(reason),
	}
}
