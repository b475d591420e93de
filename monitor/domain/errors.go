package domain

import "errors"

var (
	// ErrInvalidScope flags malformed caller input: an empty region or a
	// window whose end does not follow its start. Never retried.
	ErrInvalidScope = errors.New("invalid scope or time window")

	// ErrScopeDenied flags an authorization failure on a sub-scope. Under a
	// wildcard scope it is logged and the sub-scope excluded from aggregation.
	ErrScopeDenied = errors.New("permission denied for scope")

	// ErrUpstreamUnavailable flags a transient warehouse failure, safe to
	// retry once at the call site.
	ErrUpstreamUnavailable = errors.New("warehouse unavailable")
)
