package tickets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		ticket string
		event  string
		user   string
	}{
		{"uuids", "7c9e6679-7425-40de-944b-e07fc1f90ae7", "16fd2706-8baf-433b-82eb-8c7fada847da", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"short ids", "t1", "e1", "u1"},
		{"unicode", "billet-é", "soirée", "élève"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GenerateToken(testSecret, tc.ticket, tc.event, tc.user)
			require.NoError(t, err)

			ticketUUID, prefix, err := ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, tc.ticket, ticketUUID)
			assert.Len(t, prefix, 16)

			assert.NoError(t, VerifyToken(testSecret, token, tc.ticket, tc.event, tc.user))
		})
	}
}

func TestGenerateTokenDeterministic(t *testing.T) {
	a, err := GenerateToken(testSecret, "t", "e", "u")
	require.NoError(t, err)
	b, err := GenerateToken(testSecret, "t", "e", "u")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateTokenEmptyIdentifiers(t *testing.T) {
	_, err := GenerateToken(testSecret, "", "e", "u")
	assert.ErrorIs(t, err, ErrTokenEmptyIDs)
	_, err = GenerateToken(testSecret, "t", "", "u")
	assert.ErrorIs(t, err, ErrTokenEmptyIDs)
	_, err = GenerateToken(testSecret, "t", "e", "")
	assert.ErrorIs(t, err, ErrTokenEmptyIDs)
}

func TestParseTokenFormat(t *testing.T) {
	for _, bad := range []string{
		"",
		"no-separator",
		"a:b:c",
		":0123456789abcdef",
		"ticket:short",
		"ticket:0123456789abcdef0", // 17 chars
	} {
		_, _, err := ParseToken(bad)
		assert.ErrorIs(t, err, ErrTokenFormat, "token %q", bad)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(testSecret, "ticket-1", "event-1", "user-1")
	require.NoError(t, err)

	// flip a character in the prefix
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "0") {
		tampered += "1"
	} else {
		tampered += "0"
	}
	assert.Error(t, VerifyToken(testSecret, tampered, "ticket-1", "event-1", "user-1"))

	// valid format, wrong holder
	assert.Error(t, VerifyToken(testSecret, token, "ticket-1", "event-1", "user-2"))

	// token issued for a different ticket
	assert.Error(t, VerifyToken(testSecret, token, "ticket-2", "event-1", "user-1"))

	// different signing key
	assert.Error(t, VerifyToken("other-secret", token, "ticket-1", "event-1", "user-1"))
}
