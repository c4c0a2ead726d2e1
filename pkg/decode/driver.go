// ABOUTME: Decoder driver contract and helpers
// ABOUTME: Defines the pull-protocol loop that drives a decode feed
package decode

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
)

// Feed is the callback contract a decoder driver consumes. The driver
// loops on its own goroutine: pull encoded input, push decoded output,
// and treat a 0-length pull as the signal to terminate. The feed owns all
// synchronization; the driver never touches playback state directly.
type Feed interface {
	// PullInput fills buf with encoded data; 0 means stop decoding
	PullInput(buf []byte) int

	// PushOutput hands decoded interleaved int16 samples to the feed
	PushOutput(samples []int16)

	// OnHeaderComplete reports the stream format, exactly once, before
	// the first PushOutput
	OnHeaderComplete(info audio.StreamInfo) error

	// OnIterationStart marks the top of each decode loop iteration
	OnIterationStart()

	// OnSessionEnd winds the session down once the loop terminates
	OnSessionEnd()
}

// Driver decodes one encoded stream through a feed.
type Driver interface {
	// Codec names the encoded format this driver handles
	Codec() string

	// Run drives the feed until the input is exhausted or stopped. It
	// always ends the session before returning.
	Run(feed Feed) error
}

// ForCodec picks a driver by codec name.
func ForCodec(name string) (Driver, error) {
	switch strings.ToLower(name) {
	case "vorbis":
		return NewVorbis(), nil
	case "mp3":
		return NewMP3(), nil
	case "opus":
		return NewOpus(), nil
	default:
		return nil, fmt.Errorf("unsupported codec: %s", name)
	}
}

// ForPath picks a driver from a file extension.
func ForPath(path string) (Driver, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		return NewVorbis(), nil
	case ".mp3":
		return NewMP3(), nil
	case ".opus":
		return NewOpus(), nil
	default:
		return nil, fmt.Errorf("no driver for %q", path)
	}
}

// feedReader adapts the pull protocol to io.Reader so codec libraries can
// consume the feed directly. The universal 0-length stop signal becomes
// io.EOF.
type feedReader struct {
	feed Feed
}

func (r *feedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := r.feed.PullInput(p)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// floatToInt16 converts a normalized sample to 16-bit PCM with clamping
func floatToInt16(v float32) int16 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}
