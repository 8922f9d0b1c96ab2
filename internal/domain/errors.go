package domain

import "fmt"

// The error kinds below are all terminal for a run. Each maps to a distinct
// human-readable message on standard error; none are retried.

// InvalidDateError reports year/month/day values that do not form a real
// calendar date.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %04d-%02d-%02d is not a real calendar date", e.Year, e.Month, e.Day)
}

// MissingTokenError reports that no access token was supplied by flag or
// environment. It is raised before any network call is attempted.
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return "no access token: pass --token or set the DAYSTATS_TOKEN environment variable"
}

// AuthError reports that the API rejected the supplied credentials.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected by the API (HTTP %d): check the token and its scopes", e.StatusCode)
}

// APIError reports a non-2xx status outside the auth range, or a response
// body that was not valid JSON.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API returned a malformed body: %s", e.Body)
	}
	return fmt.Sprintf("API request failed (HTTP %d): %s", e.StatusCode, e.Body)
}

// NetworkError reports a connection-level failure, including a request that
// exceeded the configured timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure calling the API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a well-formed API response that is missing
// the fields this tool expects.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response shape from the API: %s", e.Reason)
}
