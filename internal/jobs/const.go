package jobs

import "time"

const (
	defaultLeadershipCheck = 10 * time.Second

	sessionExpiryJobName = "session-expiry"
)
