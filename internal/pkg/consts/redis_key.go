package consts

import "time"

const (
	ReportLock            = "report:lock:"
	ReportedPostsCountKey = "post:reported:count"
	UserSuspendedKey      = "user:suspended:"
	RevokedTokenKey       = "token:revoked:"
)

const (
	ReportLockTTL         = 10 * time.Second
	ReportedPostsCountTTL = 60 * time.Second
	UserSuspendedTTL      = 60 * time.Second
)
