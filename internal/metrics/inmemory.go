package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered uint64
	LoginSuccesses  uint64
	LoginFailures   uint64
	TripsCreated    uint64
	TripsUpdated    uint64
	TripsDeleted    uint64
	GuestListings   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered uint64
	loginSuccesses  uint64
	loginFailures   uint64
	tripsCreated    uint64
	tripsUpdated    uint64
	tripsDeleted    uint64
	guestListings   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered: atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:  atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:   atomic.LoadUint64(&m.loginFailures),
		TripsCreated:    atomic.LoadUint64(&m.tripsCreated),
		TripsUpdated:    atomic.LoadUint64(&m.tripsUpdated),
		TripsDeleted:    atomic.LoadUint64(&m.tripsDeleted),
		GuestListings:   atomic.LoadUint64(&m.guestListings),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncTripCreated increments the trip created counter.
func (m *InMemoryRecorder) IncTripCreated() {
	atomic.AddUint64(&m.tripsCreated, 1)
}

// IncTripUpdated increments the trip updated counter.
func (m *InMemoryRecorder) IncTripUpdated() {
	atomic.AddUint64(&m.tripsUpdated, 1)
}

// IncTripDeleted increments the trip deleted counter.
func (m *InMemoryRecorder) IncTripDeleted() {
	atomic.AddUint64(&m.tripsDeleted, 1)
}

// IncGuestListing increments the anonymous listing counter.
func (m *InMemoryRecorder) IncGuestListing() {
	atomic.AddUint64(&m.guestListings, 1)
}
