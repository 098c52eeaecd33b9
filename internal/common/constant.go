// Package common contains shared constants and sentinel errors used across
// the ESS client components.
package common

// Keys of the local key-value store. Each key holds one logical aggregate.
const (
	KeyUser      = "user"
	KeyTheme     = "theme"
	KeyLanguage  = "lang"
	KeyFirstTime = "first_time"
)

// FirstTimeDone is the value written under KeyFirstTime once onboarding
// has been completed.
const FirstTimeDone = "done"

// RequestIDHeaderName is the HTTP header used to correlate client requests
// with backend logs.
const RequestIDHeaderName = "X-Request-ID"
