// ABOUTME: Decode feed orchestration
// ABOUTME: Mediates timing, backpressure, and lifecycle between decoder and sink
package player

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
	"github.com/CommonsLab/openplayer-go/pkg/audio/output"
	"github.com/google/uuid"
)

var (
	// ErrNilSource is returned when a nil input source is bound.
	ErrNilSource = errors.New("source to decode must not be nil")

	// ErrNotReadingHeader is returned when header completion is reported
	// outside the ReadingHeader phase.
	ErrNotReadingHeader = errors.New("must read header first")
)

// Feed buffers and decodes from a stream and writes to an audio sink.
//
// A decoder driver goroutine loops over PullInput, PushOutput, and
// OnIterationStart; a controlling goroutine binds the source, starts the
// session, and tears it down. The shared State cell is the only structure
// the two sides synchronize on: the driver loop itself never sets a phase,
// it only observes it through the callbacks and blocks while paused.
type Feed struct {
	state   *State
	events  *Events
	newSink output.Factory

	// mu guards the session fields below. PushOutput, OnHeaderComplete,
	// and OnSessionEnd all mutate them; PullInput only snapshots under it,
	// never holding it across the blocking source read.
	mu             sync.Mutex
	sink           output.Sink
	source         io.ReadCloser
	info           audio.StreamInfo
	haveInfo       bool
	sessionID      string
	writtenSamples int64
	writtenMillis  int64

	iterations atomic.Int64
}

// NewFeed creates a decode feed that reads from a bound source and writes
// to sinks produced by the given factory.
func NewFeed(state *State, events *Events, newSink output.Factory) *Feed {
	return &Feed{
		state:   state,
		events:  events,
		newSink: newSink,
	}
}

// BindSource stores the input source for the next session.
func (f *Feed) BindSource(source io.ReadCloser) error {
	if source == nil {
		return ErrNilSource
	}
	f.mu.Lock()
	f.source = source
	f.mu.Unlock()
	return nil
}

// OnStartReadingHeader puts the feed in the reading-header phase and opens
// a new session. Ignored unless the feed is stopped.
func (f *Feed) OnStartReadingHeader() {
	if !f.state.IsStopped() {
		return
	}

	f.mu.Lock()
	f.sessionID = uuid.New().String()
	session := f.sessionID
	f.mu.Unlock()

	f.events.Send(Event{Type: EventReadingHeader, Session: session})
	f.state.Set(ReadingHeader)
}

// OnHeaderComplete is called once per session when header parsing finishes
// and decoding is about to begin. It validates the stream info, resets the
// session counters, allocates and starts the output sink, and moves the
// feed to ReadyToPlay.
func (f *Feed) OnHeaderComplete(info audio.StreamInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.IsReadingHeader() {
		return fmt.Errorf("%w (phase %s)", ErrNotReadingHeader, f.state.Get())
	}
	if err := info.Validate(); err != nil {
		return err
	}

	f.writtenSamples = 0
	f.writtenMillis = 0
	f.info = info
	f.haveInfo = true

	bufferSize, err := output.MinBufferSize(info.SampleRate, info.Channels)
	if err != nil {
		return err
	}

	sink, err := f.newSink(info.SampleRate, info.Channels, bufferSize)
	if err != nil {
		return fmt.Errorf("failed to create sink: %w", err)
	}
	if err := sink.Start(); err != nil {
		sink.Close()
		return fmt.Errorf("failed to start sink: %w", err)
	}
	f.sink = sink

	f.events.Send(Event{Type: EventReadyToPlay, Session: f.sessionID})

	// Ready to start reading actual content; playback stays gated until
	// the controlling side sets Playing.
	f.state.Set(ReadyToPlay)

	return nil
}

// PullInput reads up to len(buf) bytes of encoded data from the source
// into buf. A return of 0 is the universal stop signal: the driver loop
// must terminate when it sees one. Read errors are absorbed and reported
// on the event channel; they surface here only as that stop signal.
func (f *Feed) PullInput(buf []byte) int {
	// A stopped feed ends the driver loop immediately, whatever the
	// source still holds.
	if f.state.IsStopped() {
		return 0
	}

	f.state.WaitWhilePaused()

	f.mu.Lock()
	source := f.source
	session := f.sessionID
	f.mu.Unlock()

	if source == nil {
		return 0
	}

	n, err := source.Read(buf)
	if n > 0 {
		return n
	}
	if err != nil && err != io.EOF {
		log.Printf("Failed to read encoded data, aborting session %s: %v", session, err)
		f.events.Send(Event{Type: EventError, Session: session, Err: err})
	}
	return 0
}

// PushOutput accepts decoded interleaved int16 samples from the driver
// and writes them to the sink, advancing the position counters. A no-op
// when the feed is not playing or no sink exists.
func (f *Feed) PushOutput(samples []int16) {
	// Block before taking the feed lock: a paused driver must not hold
	// mu, or the controlling side could never tear the session down.
	f.state.WaitWhilePaused()

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(samples) == 0 || f.sink == nil || !f.state.IsPlaying() {
		return
	}

	n, err := f.sink.Write(samples)
	if err != nil {
		log.Printf("Sink write failed, dropping %d samples: %v", len(samples), err)
		f.events.Send(Event{Type: EventError, Session: f.sessionID, Err: err})
		return
	}

	f.writtenSamples += int64(n)

	// Derive elapsed time from the cumulative sample count so repeated
	// per-buffer truncation cannot accumulate into drift.
	ms, err := audio.SamplesToMs(f.writtenSamples, f.info.SampleRate, f.info.Channels)
	if err == nil {
		f.writtenMillis = ms
	}

	f.events.Send(Event{
		Type:    EventPlayUpdate,
		Session: f.sessionID,
		Seconds: int(f.writtenMillis / 1000),
	})
}

// OnSessionEnd tears the session down: the source is closed, the sink is
// stopped and released, and the feed returns to Stopped. Safe to call from
// the controlling side while the driver is blocked in WaitWhilePaused (the
// Stopped transition wakes it), and idempotent once stopped.
func (f *Feed) OnSessionEnd() {
	f.mu.Lock()

	if !f.state.IsStopped() {
		if f.source != nil {
			if err := f.source.Close(); err != nil {
				log.Printf("Failed to close input source: %v", err)
			}
			f.source = nil
		}

		if f.sink != nil {
			f.sink.Stop()
			f.sink.Close()
			f.sink = nil
		}
	}

	f.mu.Unlock()

	f.state.Set(Stopped)
}

// OnIterationStart is invoked by the driver at the top of every decode
// loop iteration. It only counts; the counter feeds instrumentation.
func (f *Feed) OnIterationStart() {
	f.iterations.Add(1)
}

// Iterations returns how many decode loop iterations the driver has run.
func (f *Feed) Iterations() int64 {
	return f.iterations.Load()
}

// SessionID returns the ID of the current (or most recent) session.
func (f *Feed) SessionID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessionID
}

// StreamInfo returns the stream description reported by the header, and
// whether one has been reported this session.
func (f *Feed) StreamInfo() (audio.StreamInfo, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info, f.haveInfo
}

// WrittenSamples returns the number of samples delivered to the sink
// during the current session.
func (f *Feed) WrittenSamples() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writtenSamples
}

// WrittenMillis returns the accumulated playback time in milliseconds.
func (f *Feed) WrittenMillis() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writtenMillis
}
