package deploy

// Outcome is the single result of a deployment invocation, produced once
// and immutable after creation.
type Outcome int

const (
	Success Outcome = iota
	PreflightFailed
	ConfirmationDeclined
	BuildFailed
	StartFailed
	TimedOut
	HealthPending
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case PreflightFailed:
		return "preflight failed"
	case ConfirmationDeclined:
		return "confirmation declined"
	case BuildFailed:
		return "build failed"
	case StartFailed:
		return "start failed"
	case TimedOut:
		return "timed out waiting for service"
	case HealthPending:
		return "health check pending"
	}
	return "unknown"
}

// Fatal reports whether the outcome maps to a non-zero process exit.
// Post-startup verification is advisory: TimedOut and HealthPending keep
// the exit code of a completed startup.
func (o Outcome) Fatal() bool {
	switch o {
	case PreflightFailed, ConfirmationDeclined, BuildFailed, StartFailed:
		return true
	case Success, TimedOut, HealthPending:
		return false
	}
	return false
}
