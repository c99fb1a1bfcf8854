package tickets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// tokenPrefixLen is the number of hex characters kept from the MAC.
const tokenPrefixLen = 16

var (
	ErrTokenFormat   = errors.New("malformed ticket token")
	ErrTokenEmptyIDs = errors.New("ticket, event and user identifiers must be non-empty")
)

// GenerateToken derives the QR token of a ticket:
// "<ticketUUID>:<16-hex-prefix>", where the prefix is the start of an
// HMAC-SHA256 over the ticket, event and holder identifiers. The same
// inputs always produce the same token.
func GenerateToken(secret, ticketUUID, eventUUID, userUUID string) (string, error) {
	if ticketUUID == "" || eventUUID == "" || userUUID == "" {
		return "", ErrTokenEmptyIDs
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ticketUUID + "|" + eventUUID + "|" + userUUID))
	prefix := hex.EncodeToString(mac.Sum(nil))[:tokenPrefixLen]

	return ticketUUID + ":" + prefix, nil
}

// ParseToken splits a token into ticket UUID and hash prefix. It checks the
// format only; authenticity is checked by VerifyToken against the stored
// ticket.
func ParseToken(token string) (ticketUUID string, prefix string, err error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return "", "", ErrTokenFormat
	}
	if parts[0] == "" || len(parts[1]) != tokenPrefixLen {
		return "", "", ErrTokenFormat
	}
	return parts[0], parts[1], nil
}

// VerifyToken recomputes the MAC for the claimed ticket and compares it to
// the presented prefix. A format-valid token with a wrong prefix is
// rejected.
func VerifyToken(secret, token, ticketUUID, eventUUID, userUUID string) error {
	claimedTicket, prefix, err := ParseToken(token)
	if err != nil {
		return err
	}
	if claimedTicket != ticketUUID {
		return ErrTokenFormat
	}

	expected, err := GenerateToken(secret, ticketUUID, eventUUID, userUUID)
	if err != nil {
		return err
	}
	_, expectedPrefix, _ := ParseToken(expected)

	if !hmac.Equal([]byte(prefix), []byte(expectedPrefix)) {
		return errors.New("ticket token does not match")
	}
	return nil
}
