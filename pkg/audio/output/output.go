// ABOUTME: Audio sink interface definition
// ABOUTME: Common contract for streaming playback backends
package output

import "github.com/CommonsLab/openplayer-go/pkg/audio"

// Sink represents a streaming audio output device. A sink is created per
// playback session, started once, written to repeatedly, and released once.
type Sink interface {
	// Start begins playback; writes before Start may be buffered or rejected
	Start() error

	// Write outputs interleaved 16-bit PCM samples (blocks until accepted)
	Write(samples []int16) (int, error)

	// Stop halts playback without releasing the device
	Stop() error

	// Close releases all device resources
	Close() error
}

// Factory creates a sink for the given stream format and buffer size in
// bytes. The decode feed calls it once per session at header-complete time.
type Factory func(sampleRate, channels, bufferSize int) (Sink, error)

// minBufferMs is the smallest amount of audio the device buffer must hold
// to survive scheduling hiccups on the decode thread.
const minBufferMs = 200

// MinBufferSize returns the device minimum buffer size in bytes for the
// given format at 16-bit PCM.
func MinBufferSize(sampleRate, channels int) (int, error) {
	bytes, err := audio.MsToBytes(minBufferMs, sampleRate, channels)
	if err != nil {
		return 0, err
	}
	return int(bytes), nil
}
