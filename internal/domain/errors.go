package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested catalog item does not exist
	ErrNotFound = errors.New("catalog item not found")

	// ErrServerOffline indicates the catalog API is unreachable
	ErrServerOffline = errors.New("catalog API is unreachable")

	// ErrAuthFailed indicates the access token was rejected
	ErrAuthFailed = errors.New("access token is invalid")

	// ErrRateLimited indicates the catalog API throttled the request
	ErrRateLimited = errors.New("catalog API rate limit exceeded")

	// ErrMalformedCollection indicates persisted collection text could not be parsed
	ErrMalformedCollection = errors.New("persisted collection is malformed")

	// ErrUnknownCollection indicates a collection name other than favorites/saved
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrShareUnavailable indicates neither a share command nor a clipboard is available
	ErrShareUnavailable = errors.New("no share target available")
)
