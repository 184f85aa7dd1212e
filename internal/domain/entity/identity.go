package entity

import (
	"regexp"

	"github.com/google/uuid"
)

// Session token formats issued by the frontends over time. Order matters only
// for readability; acceptance is the union of the three.
var (
	sessionHex256  = regexp.MustCompile(`(?i)^[a-f0-9]{64}$`)         // crypto.randomBytes(32) hex
	sessionLegacy  = regexp.MustCompile(`^session_[0-9]{10,15}$`)     // Date.now()-based legacy tokens
	sessionHexLong = regexp.MustCompile(`(?i)^[a-f0-9]{16,}$`)        // older hex tokens of varying width
)

// ValidSessionID reports whether s is an acceptable anonymous session token.
func ValidSessionID(s string) bool {
	return sessionHex256.MatchString(s) ||
		sessionLegacy.MatchString(s) ||
		sessionHexLong.MatchString(s)
}

// ValidUserID reports whether s is a syntactically valid account UUID in
// canonical 8-4-4-4-12 form. uuid.Parse alone also accepts URN and braced
// variants, which the frontends never send.
func ValidUserID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)

	return err == nil
}

const tokenLogPrefixLen = 8

// TruncateToken shortens a caller-supplied identifier for logging.
// Raw tokens are never written to logs in full.
func TruncateToken(s string) string {
	if len(s) <= tokenLogPrefixLen {
		return s
	}

	return s[:tokenLogPrefixLen] + "..."
}
