package mpesa

import "time"

// ResetTokenCache empties the process-wide token cache.
func ResetTokenCache() {
	authCache.reset()
}

// SetTokenClock swaps the token cache clock and returns a func restoring it.
func SetTokenClock(now func() time.Time) func() {
	prev := authCache.now
	authCache.now = now
	return func() { authCache.now = prev }
}
