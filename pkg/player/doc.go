// ABOUTME: Package documentation for the player core
// ABOUTME: Describes the decode feed, phase cell, and event contract
// Package player implements the synchronization and state-management core
// that sits between a pull-based audio decoder and a streaming sink.
//
// Three pieces cooperate:
//   - State: the playback phase cell, the only cross-goroutine shared state
//   - Feed: the decode feed driven by a decoder's pull/push loop
//   - Events: fire-and-forget playback notifications
//
// A decoder driver (see pkg/decode) loops on its own goroutine calling
// Feed.PullInput and Feed.PushOutput, treating a 0-length read as the stop
// signal. The controlling goroutine starts sessions, flips the phase
// between Playing and ReadyToPlay for play/pause, and ends sessions; every
// transition wakes any blocked driver so teardown never hangs.
package player
