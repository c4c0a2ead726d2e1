// ABOUTME: Tests for driver helpers
// ABOUTME: Tests the pull-protocol reader adapter, codec selection, and sample conversion
package decode

import (
	"io"
	"testing"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
)

// stubFeed replays scripted pull results and records pushed samples
type stubFeed struct {
	pulls      [][]byte
	pushed     []int16
	info       audio.StreamInfo
	iterations int
	ended      bool
}

func (f *stubFeed) PullInput(buf []byte) int {
	if len(f.pulls) == 0 {
		return 0
	}
	chunk := f.pulls[0]
	f.pulls = f.pulls[1:]
	return copy(buf, chunk)
}

func (f *stubFeed) PushOutput(samples []int16) {
	f.pushed = append(f.pushed, samples...)
}

func (f *stubFeed) OnHeaderComplete(info audio.StreamInfo) error {
	f.info = info
	return nil
}

func (f *stubFeed) OnIterationStart() { f.iterations++ }
func (f *stubFeed) OnSessionEnd()     { f.ended = true }

func TestFeedReaderMapsStopToEOF(t *testing.T) {
	feed := &stubFeed{pulls: [][]byte{{1, 2, 3}}}
	r := &feedReader{feed: feed}

	buf := make([]byte, 8)
	n, err := r.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("Read = (%d, %v), expected (3, nil)", n, err)
	}

	n, err = r.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read after stop = (%d, %v), expected (0, EOF)", n, err)
	}
}

func TestFeedReaderEmptyBuffer(t *testing.T) {
	r := &feedReader{feed: &stubFeed{}}

	n, err := r.Read(nil)
	if n != 0 || err != nil {
		t.Errorf("Read(nil) = (%d, %v), expected (0, nil)", n, err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path  string
		codec string
	}{
		{"track.ogg", "vorbis"},
		{"album/Track.OGA", "vorbis"},
		{"song.mp3", "mp3"},
		{"cast.opus", "opus"},
	}

	for _, tt := range tests {
		d, err := ForPath(tt.path)
		if err != nil {
			t.Fatalf("ForPath(%q): %v", tt.path, err)
		}
		if d.Codec() != tt.codec {
			t.Errorf("ForPath(%q) = %s driver, expected %s", tt.path, d.Codec(), tt.codec)
		}
	}

	if _, err := ForPath("notes.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestFloatToInt16(t *testing.T) {
	tests := []struct {
		in       float32
		expected int16
	}{
		{0.0, 0},
		{1.0, 32767},
		{-1.0, -32767},
		{2.5, 32767},   // clamped
		{-3.0, -32767}, // clamped
		{0.5, 16383},
	}

	for _, tt := range tests {
		if got := floatToInt16(tt.in); got != tt.expected {
			t.Errorf("floatToInt16(%f) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}
