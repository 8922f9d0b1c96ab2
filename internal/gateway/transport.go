package gateway

import (
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/sirupsen/logrus"

	"github.com/preocts/daystats/internal/domain"
)

const userAgent = "egg-daystats"

// maxErrorBodyBytes bounds how much of a failed response body is carried
// into an error message.
const maxErrorBodyBytes = 1024

// statusClassifier converts non-2xx responses into the typed domain errors
// before the GraphQL client can flatten them into opaque strings. Auth
// failures (401/403) are distinguished from the rest.
type statusClassifier struct {
	base http.RoundTripper
}

func (t *statusClassifier) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		resp.Body.Close()
		return nil, &domain.AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return resp, nil
}

// userAgentTransport stamps every request with the tool's User-Agent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", userAgent)
	return t.base.RoundTrip(clone)
}

// debugTransport dumps the raw request and response at debug level. The dump
// includes the Authorization header, which is the documented trade-off of
// running with --debug.
type debugTransport struct {
	base   http.RoundTripper
	logger logrus.FieldLogger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.logger.Debugf("raw request:\n%s", dump)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.logger.Debugf("raw response:\n%s", dump)
	}
	return resp, nil
}
