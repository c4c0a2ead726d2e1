// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests status updates and rendering helpers
package ui

import (
	"testing"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil) // Control is optional for testing

	if model.phase != "stopped" {
		t.Errorf("expected initial phase 'stopped', got %q", model.phase)
	}

	if model.codec != "" {
		t.Errorf("expected no stream initially, got codec %q", model.codec)
	}
}

func TestStatusMsgPhase(t *testing.T) {
	model := NewModel(nil)

	model.applyStatus(StatusMsg{Phase: "playing"})

	if model.phase != "playing" {
		t.Errorf("expected phase 'playing', got %q", model.phase)
	}
}

func TestStatusMsgStreamInfo(t *testing.T) {
	model := NewModel(nil)

	model.applyStatus(StatusMsg{
		Codec:      "vorbis",
		SampleRate: 44100,
		Channels:   2,
		Vendor:     "Xiph.Org libVorbis",
	})

	if model.codec != "vorbis" {
		t.Errorf("expected codec 'vorbis', got %q", model.codec)
	}
	if model.sampleRate != 44100 {
		t.Errorf("expected sampleRate 44100, got %d", model.sampleRate)
	}
	if model.vendor != "Xiph.Org libVorbis" {
		t.Errorf("expected vendor to be stored, got %q", model.vendor)
	}
}

func TestStatusMsgElapsed(t *testing.T) {
	model := NewModel(nil)

	model.applyStatus(StatusMsg{Elapsed: 83})

	if model.elapsed != 83 {
		t.Errorf("expected elapsed 83, got %d", model.elapsed)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{83, "1:23"},
		{3600, "60:00"},
	}

	for _, tt := range tests {
		if got := formatElapsed(tt.seconds); got != tt.expected {
			t.Errorf("formatElapsed(%d) = %q, expected %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestChannelName(t *testing.T) {
	if channelName(1) != "mono" || channelName(2) != "stereo" {
		t.Error("unexpected channel names")
	}
	if channelName(6) != "6ch" {
		t.Errorf("channelName(6) = %q", channelName(6))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a very long vendor string", 10); len(got) > 13 {
		// the ellipsis rune is multi-byte
		t.Errorf("truncate did not shorten: %q", got)
	}
}
