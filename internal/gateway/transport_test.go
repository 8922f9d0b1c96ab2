package gateway

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preocts/daystats/internal/domain"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestUserAgentTransportDoesNotMutateRequest(t *testing.T) {
	var forwarded *http.Request
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		forwarded = req
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	req, err := http.NewRequest(http.MethodPost, "https://example.com/graphql", strings.NewReader("{}"))
	require.NoError(t, err)

	resp, err := (&userAgentTransport{base: base}).RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, userAgent, forwarded.Header.Get("User-Agent"))
	assert.Empty(t, req.Header.Get("User-Agent"), "original request must stay untouched")
}

func TestStatusClassifierPassesSuccessThrough(t *testing.T) {
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	req, err := http.NewRequest(http.MethodPost, "https://example.com/graphql", nil)
	require.NoError(t, err)

	resp, err := (&statusClassifier{base: base}).RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatusClassifierTypedErrors(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		checkError func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"Bad credentials"}`,
			checkError: func(t *testing.T, err error) {
				var authErr *domain.AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
			},
		},
		{
			name:   "server error carries body snippet",
			status: http.StatusInternalServerError,
			body:   "boom",
			checkError: func(t *testing.T, err error) {
				var apiErr *domain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Contains(t, apiErr.Body, "boom")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: tc.status,
					Body:       io.NopCloser(strings.NewReader(tc.body)),
				}, nil
			})

			req, err := http.NewRequest(http.MethodPost, "https://example.com/graphql", nil)
			require.NoError(t, err)

			_, err = (&statusClassifier{base: base}).RoundTrip(req)
			require.Error(t, err)
			tc.checkError(t, err)
		})
	}
}
