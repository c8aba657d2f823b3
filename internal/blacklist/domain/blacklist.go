package domain

import "time"

// BlacklistEntry records a single blocking event for an email. Entries are
// append-only: the same email may appear many times.
type BlacklistEntry struct {
	ID            int64
	Email         string
	AppUUID       string
	BlockedReason *string
	IPAddress     string
	CreatedAt     time.Time
}
