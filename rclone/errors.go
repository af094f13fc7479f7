package rclone

import "fmt"

// ListingError is a transport, decode or encoding failure from the listing
// provider. It is fatal to the current comparison run and carries the
// underlying diagnostic for operator debugging.
type ListingError struct {
	Location string
	Err      error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing of %#q failed: %s", e.Location, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// SyncError is a nonzero exit or transport failure from the sync executor.
// The destination is left in whatever state the executor left it in.
type SyncError struct {
	Source      string
	Destination string
	Err         error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %#q -> %#q failed: %s", e.Source, e.Destination, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// ConfigError is an unreachable or malformed configuration store. It is
// downgraded to "not usable" at the validation boundary and never escalated.
type ConfigError struct {
	Remote string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Remote == "" {
		return fmt.Sprintf("config store failure: %s", e.Err)
	}
	return fmt.Sprintf("config store failure for remote %#q: %s", e.Remote, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
