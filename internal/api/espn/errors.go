package espn

import "errors"

var (
	// ErrNetwork covers failed or timed out requests, non-200 responses and
	// an open circuit breaker.
	ErrNetwork = errors.New("leaderboard request failed")
	// ErrSchema means the response decoded but is missing expected fields.
	ErrSchema = errors.New("unexpected leaderboard shape")
	// ErrParse means the response body could not be decoded.
	ErrParse = errors.New("unreadable leaderboard response")
)
