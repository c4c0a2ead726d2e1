// ABOUTME: Tests for time/byte/sample conversions
// ABOUTME: Covers known constants, round-trip laws, and format validation
package audio

import (
	"errors"
	"testing"
)

func TestMsToSamplesKnownValues(t *testing.T) {
	tests := []struct {
		ms       int64
		rate     int
		channels int
		expected int64
	}{
		{1000, 44100, 2, 88200},
		{1000, 22050, 1, 22050},
		{500, 44100, 2, 44100},
		{0, 44100, 2, 0},
		{1, 44100, 2, 88},
	}

	for _, tt := range tests {
		got, err := MsToSamples(tt.ms, tt.rate, tt.channels)
		if err != nil {
			t.Fatalf("MsToSamples(%d, %d, %d): %v", tt.ms, tt.rate, tt.channels, err)
		}
		if got != tt.expected {
			t.Errorf("MsToSamples(%d, %d, %d) = %d, expected %d",
				tt.ms, tt.rate, tt.channels, got, tt.expected)
		}
	}
}

func TestMsToBytesKnownValues(t *testing.T) {
	// 88200 samples at 16-bit = 176400 bytes
	got, err := MsToBytes(1000, 44100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 176400 {
		t.Errorf("MsToBytes(1000, 44100, 2) = %d, expected 176400", got)
	}
}

func TestZeroMsAllConversionsZero(t *testing.T) {
	if v, _ := MsToBytes(0, 44100, 2); v != 0 {
		t.Errorf("MsToBytes(0) = %d", v)
	}
	if v, _ := MsToSamples(0, 44100, 2); v != 0 {
		t.Errorf("MsToSamples(0) = %d", v)
	}
	if v, _ := BytesToMs(0, 44100, 2); v != 0 {
		t.Errorf("BytesToMs(0) = %d", v)
	}
	if v, _ := SamplesToMs(0, 44100, 2); v != 0 {
		t.Errorf("SamplesToMs(0) = %d", v)
	}
}

func TestSamplesMsRoundTrip(t *testing.T) {
	// SamplesToMs(MsToSamples(ms)) == ms within one unit of truncation
	rates := []int{8000, 22050, 44100, 48000}
	channels := []int{1, 2}
	durations := []int64{0, 1, 20, 999, 1000, 3600000}

	for _, rate := range rates {
		for _, ch := range channels {
			for _, ms := range durations {
				samples, err := MsToSamples(ms, rate, ch)
				if err != nil {
					t.Fatal(err)
				}
				back, err := SamplesToMs(samples, rate, ch)
				if err != nil {
					t.Fatal(err)
				}
				if back > ms || ms-back > 1 {
					t.Errorf("round trip %dms at %dHz/%dch came back as %dms", ms, rate, ch, back)
				}
			}
		}
	}
}

func TestConversionsRejectBadFormat(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		channels int
	}{
		{"zero rate", 0, 2},
		{"negative rate", -44100, 2},
		{"zero channels", 44100, 0},
		{"three channels", 44100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MsToSamples(1000, tt.rate, tt.channels); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("MsToSamples: expected ErrInvalidFormat, got %v", err)
			}
			if _, err := BytesToMs(1000, tt.rate, tt.channels); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("BytesToMs: expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestStreamInfoValidate(t *testing.T) {
	valid := StreamInfo{SampleRate: 44100, Channels: 2, Vendor: "Xiph.Org libVorbis"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid info rejected: %v", err)
	}

	if err := (StreamInfo{SampleRate: 44100, Channels: 3}).Validate(); err == nil {
		t.Error("expected error for 3 channels")
	}
	if err := (StreamInfo{SampleRate: 0, Channels: 1}).Validate(); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestSampleByteSizing(t *testing.T) {
	if SamplesToBytes(88200) != 176400 {
		t.Errorf("SamplesToBytes(88200) = %d", SamplesToBytes(88200))
	}
	if BytesToSamples(176400) != 88200 {
		t.Errorf("BytesToSamples(176400) = %d", BytesToSamples(176400))
	}
}
