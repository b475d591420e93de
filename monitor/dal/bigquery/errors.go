package bq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/doitintl/bq-monitor/monitor/domain"
)

// translateError maps warehouse client failures onto the monitor's error
// taxonomy so callers can decide between denial and unavailability.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", domain.ErrScopeDenied, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrScopeDenied, apiErr.Message)
		}
	}

	if errors.Is(err, domain.ErrInvalidScope) {
		return err
	}

	// Deadline, transport and server-side failures all surface as an
	// unavailable upstream.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: upstream timed out: %v", domain.ErrUpstreamUnavailable, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
}
