// ABOUTME: Package documentation for audio output
// ABOUTME: Describes the sink contract and available backends
// Package output provides streaming audio sinks.
//
// The Sink interface covers the full device lifecycle (start, write, stop,
// release); a Factory creates one sink per playback session sized by
// MinBufferSize. NewOto is the default backend, built on ebitengine/oto.
package output
