// Package service implements the projecthub use cases on top of store.Store.
// Errors returned are either the sentinels declared here or internal
// failures that the HTTP layer reports as 500s.
package service

import "time"

// clock returns now in UTC, using f when set so tests can move time.
func clock(f func() time.Time) time.Time {
	if f != nil {
		return f().UTC()
	}
	return time.Now().UTC()
}
