package playback

import (
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendStarted(SessionStarted{Session: Info{Clip: "a.mp3"}})
		sub.sendEnded(SessionEnded{Reason: EndCompleted})
		sub.sendError(ErrorEvent{Clip: "b.mp3"})

		if e := <-sub.Started; e.Session.Clip != "a.mp3" {
			t.Errorf("Started.Session.Clip = %q, want a.mp3", e.Session.Clip)
		}
		if e := <-sub.Ended; e.Reason != EndCompleted {
			t.Errorf("Ended.Reason = %v, want completed", e.Reason)
		}
		if e := <-sub.Error; e.Clip != "b.mp3" {
			t.Errorf("Error.Clip = %q, want b.mp3", e.Clip)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill the buffer plus extra; must not block
	for range eventBufferSize + 5 {
		sub.sendEnded(SessionEnded{Reason: EndCancelled})
	}

	if got := len(sub.Ended); got != eventBufferSize {
		t.Errorf("len(Ended) = %d, want %d", got, eventBufferSize)
	}
}
