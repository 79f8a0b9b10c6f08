package application

import "expvar"

// Counters published under /debug/vars as "auth".
var authStats = expvar.NewMap("auth")

const (
	statRegistrations  = "registrations"
	statLogins         = "logins"
	statLoginFailures  = "login_failures"
	statAuthRejections = "auth_rejections"
)

// RecordAuthRejection counts a request turned away by the authorization gate.
func RecordAuthRejection() { authStats.Add(statAuthRejections, 1) }
