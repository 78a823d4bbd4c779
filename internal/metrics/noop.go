package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncTripCreated is a no-op.
func (n *NoopRecorder) IncTripCreated() {}

// IncTripUpdated is a no-op.
func (n *NoopRecorder) IncTripUpdated() {}

// IncTripDeleted is a no-op.
func (n *NoopRecorder) IncTripDeleted() {}

// IncGuestListing is a no-op.
func (n *NoopRecorder) IncGuestListing() {}
