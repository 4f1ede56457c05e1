package domain

import "time"

// VerificationRecord is the pending code for one normalized email address.
// It lives only in process memory and is dropped once consumed or found expired.
type VerificationRecord struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the record is no longer eligible at now.
// A record is still valid at exactly ExpiresAt.
func (r VerificationRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
