// ABOUTME: Package documentation for audio types
// ABOUTME: Describes stream descriptions and conversion arithmetic
// Package audio provides the shared audio types for OpenPlayer.
//
// It defines:
//   - StreamInfo: immutable description of a decoded stream's format
//   - Time conversions between milliseconds, samples, and bytes
//   - Helpers for 16-bit PCM sample/byte sizing
//
// All conversions truncate toward zero; callers that accumulate converted
// values must tolerate the resulting drift.
package audio
