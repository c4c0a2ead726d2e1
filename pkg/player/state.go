// ABOUTME: Shared playback phase cell
// ABOUTME: Condition-variable synchronization between decode and control threads
package player

import "sync"

// Phase is the discrete playback lifecycle value.
type Phase int

const (
	// Stopped means no session is active.
	Stopped Phase = iota
	// ReadingHeader means the decoder is still parsing the stream header.
	ReadingHeader
	// ReadyToPlay means a sink exists but playback is gated. It doubles as
	// the pause signal: WaitWhilePaused blocks while the phase holds this
	// value, both before the first Play and after a user pause.
	ReadyToPlay
	// Playing means decoded audio is flowing to the sink.
	Playing
)

func (p Phase) String() string {
	switch p {
	case Stopped:
		return "stopped"
	case ReadingHeader:
		return "reading-header"
	case ReadyToPlay:
		return "ready"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// State is the single source of truth for the playback phase, shared
// between the decode-driving goroutine and the controlling goroutine.
// The driver loop only reads the phase and blocks on it; transitions are
// performed by the feed callbacks and the controlling side.
type State struct {
	mu    sync.Mutex
	cond  *sync.Cond
	phase Phase
}

// NewState creates a state cell in the Stopped phase.
func NewState() *State {
	s := &State{phase: Stopped}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Get returns the current phase. Never blocks.
func (s *State) Get() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Set updates the phase and wakes every goroutine blocked in
// WaitWhilePaused. The wake happens on every call, whatever the new value:
// a blocked waiter only re-checks its condition when woken, so a transition
// to Stopped must reach waiters even though Stopped is not the pausing
// value. Setting the current phase again is harmless.
func (s *State) Set(phase Phase) {
	s.mu.Lock()
	s.phase = phase
	s.cond.Broadcast()
	s.mu.Unlock()
}

// WaitWhilePaused blocks the calling goroutine while the phase equals
// ReadyToPlay. It returns immediately in any other phase.
func (s *State) WaitWhilePaused() {
	s.mu.Lock()
	for s.phase == ReadyToPlay {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// IsPlaying reports whether the phase is Playing.
func (s *State) IsPlaying() bool {
	return s.Get() == Playing
}

// IsStopped reports whether the phase is Stopped.
func (s *State) IsStopped() bool {
	return s.Get() == Stopped
}

// IsReadingHeader reports whether the phase is ReadingHeader.
func (s *State) IsReadingHeader() bool {
	return s.Get() == ReadingHeader
}
