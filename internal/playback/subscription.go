package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	Started <-chan SessionStarted
	Ended   <-chan SessionEnded
	Error   <-chan ErrorEvent
	Done    <-chan struct{}

	// Internal write channels
	startedCh chan SessionStarted
	endedCh   chan SessionEnded
	errorCh   chan ErrorEvent
	doneCh    chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		startedCh: make(chan SessionStarted, eventBufferSize),
		endedCh:   make(chan SessionEnded, eventBufferSize),
		errorCh:   make(chan ErrorEvent, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Started = s.startedCh
	s.Ended = s.endedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendStarted sends a session start event (non-blocking).
func (s *Subscription) sendStarted(e SessionStarted) {
	select {
	case s.startedCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendEnded sends a session end event (non-blocking).
func (s *Subscription) sendEnded(e SessionEnded) {
	select {
	case s.endedCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
