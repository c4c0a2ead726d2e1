// ABOUTME: Package documentation for decoder drivers
// ABOUTME: Describes the driver loop and supported codecs
// Package decode provides decoder drivers that pump a player.Feed.
//
// A Driver owns the decode loop: it pulls encoded bytes from the feed,
// reports the stream header, pushes decoded PCM back, and ends the session
// when the input runs dry. Drivers exist for Ogg Vorbis, MP3, and
// length-prefixed Opus packets; ForPath picks one by file extension.
//
// Drivers hold no playback state of their own. Pausing, stopping, and
// position accounting all live behind the Feed contract, so a driver is a
// plain loop with no synchronization concerns.
package decode
