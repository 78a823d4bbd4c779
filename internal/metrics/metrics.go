// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Credential metrics
	IncUserRegistered()
	IncLoginSuccess()
	IncLoginFailure()

	// Trip management metrics
	IncTripCreated()
	IncTripUpdated()
	IncTripDeleted()
	IncGuestListing()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
