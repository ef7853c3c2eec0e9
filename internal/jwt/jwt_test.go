package jwt

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	j := New("test-secret", time.Hour)

	token, err := j.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerify_Expired(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.Issue("user-123")
	require.NoError(t, err)

	_, err = j.Verify(token)
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
	assert.Contains(t, e.Message, "expired")
}

func TestVerify_TamperedSignature(t *testing.T) {
	j := New("test-secret", time.Hour)

	token, err := j.Issue("user-123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = j.Verify(tampered)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := New("key-one", time.Hour)
	verifier := New("key-two", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
}

func TestVerify_Garbage(t *testing.T) {
	j := New("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := j.Verify(input)
		assert.Error(t, err, "input %q", input)
	}
}
