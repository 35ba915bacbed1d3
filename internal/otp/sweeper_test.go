package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_RemovesExpiredEntries(t *testing.T) {
	r := NewMemoryRegistry()
	now := time.Now()
	r.Put("old@x.com", entry("old@x.com", now.Add(-1*time.Minute)))
	r.Put("live@x.com", entry("live@x.com", now.Add(10*time.Minute)))

	s := NewSweeper(r, 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool {
		_, ok := r.Get("old@x.com")
		return !ok
	}, time.Second, 5*time.Millisecond)

	_, ok := r.Get("live@x.com")
	assert.True(t, ok)
}

func TestSweeper_StopTerminatesLoop(t *testing.T) {
	r := NewMemoryRegistry()
	s := NewSweeper(r, 10*time.Millisecond)
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
