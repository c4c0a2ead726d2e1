// ABOUTME: Audio type definitions
// ABOUTME: Defines decoded stream descriptions and PCM sample helpers
package audio

import (
	"errors"
	"fmt"
)

// BytesPerSample is the output sample width (16-bit PCM).
const BytesPerSample = 2

// ErrInvalidFormat indicates an unusable sample rate or channel count.
var ErrInvalidFormat = errors.New("invalid audio format")

// StreamInfo describes a decoded stream as reported by its header.
// It is immutable: created once per session when header parsing completes.
type StreamInfo struct {
	SampleRate int    // samples per second, per channel
	Channels   int    // 1 (mono) or 2 (stereo)
	Vendor     string // opaque descriptive string from the stream header
}

// Validate checks that the stream info describes playable audio.
func (si StreamInfo) Validate() error {
	if si.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be above 0, got %d", ErrInvalidFormat, si.SampleRate)
	}
	if si.Channels != 1 && si.Channels != 2 {
		return fmt.Errorf("%w: channels can only be one or two, got %d", ErrInvalidFormat, si.Channels)
	}
	return nil
}

func (si StreamInfo) String() string {
	return fmt.Sprintf("%dHz %s", si.SampleRate, ChannelName(si.Channels))
}

// ChannelName returns a human-readable channel layout name
func ChannelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}

// SamplesToBytes converts an int16 sample count to its byte size.
func SamplesToBytes(samples int) int {
	return samples * BytesPerSample
}

// BytesToSamples converts a byte count to the int16 samples it holds.
func BytesToSamples(bytes int) int {
	return bytes / BytesPerSample
}
