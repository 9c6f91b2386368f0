package database

import (
	"database/sql/driver"
	"errors"
	"strings"
)

// transientMessages are substrings of dialect-level errors that indicate the
// connection (not the statement) failed. Matching is case-insensitive.
var transientMessages = []string{
	"connection reset by peer",
	"server closed the connection",
	"connection refused",
	"bad connection",
	"broken pipe",
	"ssl connection has been closed",
	"terminating connection due to idle-in-transaction timeout",
	"unexpected eof",
	"conn closed",
}

// IsTransientConnectionError reports whether err stems from a lost or
// invalidated database connection rather than from the statement itself.
// Callers roll back, reclassify as a retryable backend error, and let the
// client retry; all other database errors bubble unchanged.
func IsTransientConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, s := range transientMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
