package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("building report: %w", &AuthError{StatusCode: 401})

	var authErr *AuthError
	assert.True(t, errors.As(wrapped, &authErr))
	assert.Equal(t, 401, authErr.StatusCode)
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorMessagesAreDistinct(t *testing.T) {
	msgs := []string{
		(&InvalidDateError{Year: 2023, Month: 13, Day: 1}).Error(),
		(&MissingTokenError{}).Error(),
		(&AuthError{StatusCode: 403}).Error(),
		(&APIError{StatusCode: 500, Body: "oops"}).Error(),
		(&NetworkError{Err: errors.New("timeout")}).Error(),
		(&MalformedResponseError{Reason: "no user field"}).Error(),
	}

	seen := make(map[string]bool, len(msgs))
	for _, msg := range msgs {
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message: %s", msg)
		seen[msg] = true
	}
}
