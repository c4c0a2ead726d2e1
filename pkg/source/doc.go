// ABOUTME: Package documentation for input sources
// ABOUTME: Describes the byte source boundary of the decode feed
// Package source provides input byte sources for the decode feed.
//
// The feed consumes any io.ReadCloser; this package supplies the two it
// ships with: local files and binary websocket streams. Open picks one
// from a location string.
package source
