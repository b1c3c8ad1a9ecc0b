package common

import "os"

// Exit codes follow the monitoring supervisor convention. ExitConfigMissing
// is deliberately outside the OK/WARNING/CRITICAL range so an operational
// misconfiguration is distinguishable from a queue condition.
const (
	ExitOK            = 0
	ExitWarning       = 1
	ExitCritical      = 2
	ExitConfigMissing = 3
)

// Exiter lets us stub out os.Exit.
type Exiter interface {
	Exit(code int)
}

// OSExiter implements Exiter using os.Exit.
type OSExiter struct{}

func (OSExiter) Exit(code int) {
	os.Exit(code)
}
