// ABOUTME: Time/byte/sample conversion arithmetic
// ABOUTME: Pure helpers that keep playback position accounting consistent
package audio

// The conversions below are deliberately integer-truncating. Position
// accounting accumulates whole milliseconds and accepts the resulting
// rounding drift over long sessions rather than correcting for it.

// MsToBytes returns the number of bytes used by a buffer of the given
// duration. The result is scaled by BytesPerSample to account for the
// 16-bit output width.
func MsToBytes(ms int64, sampleRate, channels int) (int64, error) {
	if err := validateRate(sampleRate, channels); err != nil {
		return 0, err
	}
	return ms * int64(sampleRate) * int64(channels) / 1000 * BytesPerSample, nil
}

// MsToSamples returns the number of samples (all channels interleaved)
// needed to hold a buffer of the given duration.
func MsToSamples(ms int64, sampleRate, channels int) (int64, error) {
	if err := validateRate(sampleRate, channels); err != nil {
		return 0, err
	}
	return ms * int64(sampleRate) * int64(channels) / 1000, nil
}

// BytesToMs returns the duration of a buffer of the given size. The size
// is measured in raw output units, not divided by the sample width; this
// matches the convention used for progress accounting.
func BytesToMs(bytes int64, sampleRate, channels int) (int64, error) {
	if err := validateRate(sampleRate, channels); err != nil {
		return 0, err
	}
	return 1000 * bytes / (int64(sampleRate) * int64(channels)), nil
}

// SamplesToMs returns the duration of a buffer holding the given number
// of samples (all channels interleaved).
func SamplesToMs(samples int64, sampleRate, channels int) (int64, error) {
	if err := validateRate(sampleRate, channels); err != nil {
		return 0, err
	}
	return 1000 * samples / (int64(sampleRate) * int64(channels)), nil
}

// validateRate rejects sample rates and channel counts the conversions
// cannot divide by
func validateRate(sampleRate, channels int) error {
	return StreamInfo{SampleRate: sampleRate, Channels: channels}.Validate()
}
